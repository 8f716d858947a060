package annotate

import (
	"fmt"
	"image"
)

// Pixels lighter than this on every channel are treated as background and not
// counted toward the dominant color.
const nearWhite = 240

// Coverage of counted text pixels above this ratio marks the line as bold.
const boldCoverage = 0.30

// DetectStyle samples the pixels inside rect and estimates the text color and
// weight of the line it covers. The dominant color is the most frequent exact
// RGB triple among non-near-white, non-transparent pixels. Anti-aliasing
// spreads text over many close shades, so exact matching biases the result
// toward whichever single shade is most common. Italic is never detected.
func DetectStyle(img image.Image, rect image.Rectangle) (hexColor string, bold bool) {
	rect = rect.Intersect(img.Bounds())
	if rect.Empty() {
		return "#000000", false
	}

	counts := map[[3]uint8]int{}
	counted := 0
	total := 0
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			total++
			r, g, b, a := img.At(x, y).RGBA()
			if a == 0 {
				continue
			}
			r8, g8, b8 := uint8(r>>8), uint8(g>>8), uint8(b>>8)
			if r8 >= nearWhite && g8 >= nearWhite && b8 >= nearWhite {
				continue
			}
			counts[[3]uint8{r8, g8, b8}]++
			counted++
		}
	}

	if counted == 0 {
		return "#000000", false
	}

	best := [3]uint8{}
	bestCount := 0
	for triple, n := range counts {
		if n > bestCount {
			best = triple
			bestCount = n
		}
	}

	coverage := float64(counted) / float64(total)
	return fmt.Sprintf("#%02x%02x%02x", best[0], best[1], best[2]), coverage > boldCoverage
}
