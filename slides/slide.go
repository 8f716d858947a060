// Package slides implements the PDF-to-presentation converter: each PDF page
// becomes an editable slide, slides can be restyled and rearranged into one
// of five layouts, and the deck exports as a PowerPoint file.
package slides

import (
	"fmt"
)

// Layout selects the slide arrangement used by the preview and the export.
type Layout string

const (
	LayoutTitle      Layout = "title"
	LayoutContent    Layout = "content"
	LayoutTwoColumn  Layout = "twoColumn"
	LayoutImageLeft  Layout = "imageLeft"
	LayoutImageRight Layout = "imageRight"
)

// ParseLayout validates a layout keyword.
func ParseLayout(s string) (Layout, error) {
	switch Layout(s) {
	case LayoutTitle, LayoutContent, LayoutTwoColumn, LayoutImageLeft, LayoutImageRight:
		return Layout(s), nil
	}
	return "", fmt.Errorf("unknown slide layout %q", s)
}

// Image is a picture attached to a slide. URL/Thumb come from search results;
// Data is filled when the image is fetched for export.
type Image struct {
	ID    string
	URL   string
	Thumb string
	Alt   string
	Data  []byte
}

// Position is a drag offset applied to a slide element, in preview pixels.
type Position struct {
	Left, Top float64
}

// Slide is one editable slide.
type Slide struct {
	ID           int
	Title        string
	Content      string
	BGColor      string // hex
	Layout       Layout
	Background   []byte // PNG raster of the source PDF page, nil for new slides
	Images       []Image
	TitleColor   string
	ContentColor string
	TitleAlign   string
	ContentAlign string

	// Positions maps element names ("title", "content") to drag offsets.
	Positions map[string]Position
	// Groups maps element names to a group id; grouped elements move together.
	Groups map[string]int
}

// AddImage attaches an image unless one with the same id is already present.
// Returns false when suppressed as a duplicate.
func (s *Slide) AddImage(img Image) bool {
	for _, existing := range s.Images {
		if existing.ID == img.ID {
			return false
		}
	}
	s.Images = append(s.Images, img)
	return true
}

// RemoveImage detaches an image by id.
func (s *Slide) RemoveImage(id string) bool {
	for i, img := range s.Images {
		if img.ID == id {
			s.Images = append(s.Images[:i], s.Images[i+1:]...)
			return true
		}
	}
	return false
}

// SetPosition records a drag offset for an element.
func (s *Slide) SetPosition(element string, pos Position) {
	if s.Positions == nil {
		s.Positions = map[string]Position{}
	}
	s.Positions[element] = pos
}

// Deck is the ordered slide list plus the editing cursor.
type Deck struct {
	Slides []*Slide

	current   int
	nextID    int
	nextGroup int
}

// NewDeck creates an empty deck.
func NewDeck() *Deck {
	return &Deck{nextID: 1, nextGroup: 1}
}

// Len returns the slide count.
func (d *Deck) Len() int { return len(d.Slides) }

// CurrentIndex returns the editing cursor.
func (d *Deck) CurrentIndex() int { return d.current }

// Current returns the slide under the cursor, nil for an empty deck.
func (d *Deck) Current() *Slide {
	if len(d.Slides) == 0 {
		return nil
	}
	return d.Slides[d.current]
}

// Select moves the cursor. Out-of-range indexes are ignored.
func (d *Deck) Select(index int) bool {
	if index < 0 || index >= len(d.Slides) {
		return false
	}
	d.current = index
	return true
}

// Add appends a blank slide with default styling and selects it.
func (d *Deck) Add() *Slide {
	slide := &Slide{
		ID:           d.nextID,
		Title:        fmt.Sprintf("Slide %d", len(d.Slides)+1),
		Content:      "Enter your content here",
		BGColor:      "#ffffff",
		Layout:       LayoutContent,
		TitleColor:   "#333333",
		ContentColor: "#666666",
		TitleAlign:   "left",
		ContentAlign: "left",
	}
	d.nextID++
	d.Slides = append(d.Slides, slide)
	d.current = len(d.Slides) - 1
	return slide
}

// Delete removes the slide under the cursor. The cursor clamps to the new
// last slide when it pointed past the end.
func (d *Deck) Delete() bool {
	if len(d.Slides) == 0 {
		return false
	}
	d.Slides = append(d.Slides[:d.current], d.Slides[d.current+1:]...)
	if d.current >= len(d.Slides) && d.current > 0 {
		d.current = len(d.Slides) - 1
	}
	return true
}

// Group assigns the named elements of the current slide to a fresh group id.
// At least two elements are required.
func (d *Deck) Group(elements []string) (int, error) {
	slide := d.Current()
	if slide == nil {
		return 0, fmt.Errorf("no slide selected")
	}
	if len(elements) < 2 {
		return 0, fmt.Errorf("select at least 2 elements to group")
	}
	if slide.Groups == nil {
		slide.Groups = map[string]int{}
	}
	id := d.nextGroup
	d.nextGroup++
	for _, element := range elements {
		slide.Groups[element] = id
	}
	return id, nil
}
