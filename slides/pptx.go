package slides

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
	"time"
)

// The PowerPoint export writes the OOXML package directly: a presentation
// part, one slide part per deck slide, a minimal master/layout/theme chain,
// and the attached media. Slide geometry is a 10 x 7.5 inch canvas.

const emuPerInch = 914400

func inchEMU(v float64) int64 {
	return int64(v * emuPerInch)
}

// frame places a text or image element, in inches.
type frame struct {
	x, y, w, h float64
}

type textStyle struct {
	sizePt int
	bold   bool
	align  string // "", "ctr"
	color  string // RRGGBB
}

// Deck metadata stamped into docProps.
const (
	pptxAuthor  = "Doc Converter"
	pptxTitle   = "Generated Presentation"
	pptxSubject = "PDF to PPT Conversion"
)

// PresentationFilename returns the export file name.
func PresentationFilename() string {
	return fmt.Sprintf("presentation_%d.pptx", time.Now().UnixMilli())
}

// WritePPTX serializes the deck as a .pptx package. Images without fetched
// data are skipped; call ResolveImages first to embed search results.
func WritePPTX(deck *Deck) ([]byte, error) {
	if deck.Len() == 0 {
		return nil, fmt.Errorf("no slides to export")
	}

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	add := func(name, content string) error {
		f, err := w.Create(name)
		if err != nil {
			return err
		}
		_, err = f.Write([]byte(content))
		return err
	}

	if err := add("[Content_Types].xml", contentTypesXML(deck)); err != nil {
		return nil, err
	}
	if err := add("_rels/.rels", rootRelsXML); err != nil {
		return nil, err
	}
	if err := add("docProps/core.xml", corePropsXML()); err != nil {
		return nil, err
	}
	if err := add("docProps/app.xml", appPropsXML(deck)); err != nil {
		return nil, err
	}
	if err := add("ppt/presentation.xml", presentationXML(deck)); err != nil {
		return nil, err
	}
	if err := add("ppt/_rels/presentation.xml.rels", presentationRelsXML(deck)); err != nil {
		return nil, err
	}
	if err := add("ppt/theme/theme1.xml", themeXML); err != nil {
		return nil, err
	}
	if err := add("ppt/slideMasters/slideMaster1.xml", slideMasterXML); err != nil {
		return nil, err
	}
	if err := add("ppt/slideMasters/_rels/slideMaster1.xml.rels", slideMasterRelsXML); err != nil {
		return nil, err
	}
	if err := add("ppt/slideLayouts/slideLayout1.xml", slideLayoutXML); err != nil {
		return nil, err
	}
	if err := add("ppt/slideLayouts/_rels/slideLayout1.xml.rels", slideLayoutRelsXML); err != nil {
		return nil, err
	}

	for i, slide := range deck.Slides {
		media := slideMedia(slide)
		if err := add(fmt.Sprintf("ppt/slides/slide%d.xml", i+1), slideXML(slide, media)); err != nil {
			return nil, err
		}
		if err := add(fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", i+1), slideRelsXML(i+1, media)); err != nil {
			return nil, err
		}
		for _, m := range media {
			f, err := w.Create("ppt/media/" + m.filename)
			if err != nil {
				return nil, err
			}
			if _, err := f.Write(m.data); err != nil {
				return nil, err
			}
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize pptx package: %w", err)
	}
	return buf.Bytes(), nil
}

type mediaRef struct {
	relID      string
	filename   string
	data       []byte
	background bool
}

// slideMedia collects the embeddable images of one slide: the page raster
// (painted translucent behind everything) plus the first attached image with
// fetched bytes.
func slideMedia(slide *Slide) []mediaRef {
	media := []mediaRef{}
	rel := 2 // rId1 is the layout
	if slide.Background != nil {
		media = append(media, mediaRef{
			relID:      fmt.Sprintf("rId%d", rel),
			filename:   fmt.Sprintf("slide%dbg.png", slide.ID),
			data:       slide.Background,
			background: true,
		})
		rel++
	}
	for _, img := range slide.Images {
		if img.Data == nil {
			continue
		}
		media = append(media, mediaRef{
			relID:    fmt.Sprintf("rId%d", rel),
			filename: fmt.Sprintf("slide%dimg%s.%s", slide.ID, sanitizeID(img.ID), imageExt(img.Data)),
			data:     img.Data,
		})
		break // layouts place a single image
	}
	return media
}

func sanitizeID(id string) string {
	var b strings.Builder
	for _, r := range id {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func imageExt(data []byte) string {
	if len(data) > 3 && data[0] == 0xff && data[1] == 0xd8 {
		return "jpeg"
	}
	return "png"
}

// slideXML renders one slide part using the layout recipes.
func slideXML(slide *Slide, media []mediaRef) string {
	var shapes strings.Builder
	shapeID := 2

	var imageRef *mediaRef
	for i := range media {
		m := &media[i]
		if m.background {
			shapes.WriteString(pictureXML(shapeID, m.relID, frame{0, 0, 10, 7.5}, true))
			shapeID++
		} else {
			imageRef = m
		}
	}

	title := orPlaceholder(slide.Title, "Title")
	content := orPlaceholder(slide.Content, "Content")

	emitText := func(text string, f frame, style textStyle) {
		shapes.WriteString(textShapeXML(shapeID, text, f, style))
		shapeID++
	}
	emitImage := func(f frame) {
		if imageRef != nil {
			shapes.WriteString(pictureXML(shapeID, imageRef.relID, f, false))
			shapeID++
		}
	}

	switch slide.Layout {
	case LayoutTitle:
		emitText(title, frame{1, 2, 8, 1.5}, textStyle{sizePt: 44, bold: true, align: "ctr", color: "363636"})
		emitText(content, frame{1, 3.5, 8, 1}, textStyle{sizePt: 24, align: "ctr", color: "666666"})
	case LayoutTwoColumn:
		emitText(title, frame{0.5, 0.5, 9, 0.75}, textStyle{sizePt: 32, bold: true, color: "363636"})
		emitText(content, frame{0.5, 1.5, 4.25, 4}, textStyle{sizePt: 18, color: "666666"})
		emitImage(frame{5.25, 1.5, 4.25, 4})
	case LayoutImageLeft:
		emitText(title, frame{0.5, 0.5, 9, 0.75}, textStyle{sizePt: 32, bold: true, color: "363636"})
		emitImage(frame{0.5, 1.5, 4, 4})
		emitText(content, frame{5, 1.5, 4.5, 4}, textStyle{sizePt: 18, color: "666666"})
	case LayoutImageRight:
		emitText(title, frame{0.5, 0.5, 9, 0.75}, textStyle{sizePt: 32, bold: true, color: "363636"})
		emitImage(frame{5.5, 1.5, 4, 4})
		emitText(content, frame{0.5, 1.5, 4.5, 4}, textStyle{sizePt: 18, color: "666666"})
	default: // LayoutContent
		emitText(title, frame{0.5, 0.5, 9, 0.75}, textStyle{sizePt: 32, bold: true, color: "363636"})
		emitText(content, frame{0.5, 1.5, 9, 3}, textStyle{sizePt: 18, color: "666666"})
		emitImage(frame{6, 4.5, 3, 2})
	}

	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"><p:cSld><p:bg><p:bgPr><a:solidFill><a:srgbClr val="%s"/></a:solidFill><a:effectLst/></p:bgPr></p:bg><p:spTree><p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr><p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/><a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr>%s</p:spTree></p:cSld><p:clrMapOvr><a:overrideClrMapping bg1="lt1" tx1="dk1" bg2="lt2" tx2="dk2" accent1="accent1" accent2="accent2" accent3="accent3" accent4="accent4" accent5="accent5" accent6="accent6" hlink="hlink" folHlink="folHlink"/></p:clrMapOvr></p:sld>`,
		hexToOOXML(slide.BGColor), shapes.String())
}

func textShapeXML(id int, text string, f frame, style textStyle) string {
	bold := ""
	if style.bold {
		bold = ` b="1"`
	}
	algn := ""
	if style.align != "" {
		algn = fmt.Sprintf(` algn="%s"`, style.align)
	}

	var paragraphs strings.Builder
	for _, line := range strings.Split(text, "\n") {
		paragraphs.WriteString(fmt.Sprintf(`<a:p><a:pPr%s/><a:r><a:rPr lang="en-US" sz="%d"%s dirty="0"><a:solidFill><a:srgbClr val="%s"/></a:solidFill></a:rPr><a:t>%s</a:t></a:r></a:p>`,
			algn, style.sizePt*100, bold, style.color, escapeXML(line)))
	}

	return fmt.Sprintf(`<p:sp><p:nvSpPr><p:cNvPr id="%d" name="TextBox %d"/><p:cNvSpPr txBox="1"/><p:nvPr/></p:nvSpPr><p:spPr><a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm><a:prstGeom prst="rect"><a:avLst/></a:prstGeom><a:noFill/></p:spPr><p:txBody><a:bodyPr wrap="square" anchor="t"><a:normAutofit/></a:bodyPr><a:lstStyle/>%s</p:txBody></p:sp>`,
		id, id, inchEMU(f.x), inchEMU(f.y), inchEMU(f.w), inchEMU(f.h), paragraphs.String())
}

func pictureXML(id int, relID string, f frame, translucent bool) string {
	alpha := ""
	if translucent {
		alpha = `<a:alphaModFix amt="70000"/>`
	}
	return fmt.Sprintf(`<p:pic><p:nvPicPr><p:cNvPr id="%d" name="Picture %d"/><p:cNvPicPr/><p:nvPr/></p:nvPicPr><p:blipFill><a:blip r:embed="%s">%s</a:blip><a:stretch><a:fillRect/></a:stretch></p:blipFill><p:spPr><a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm><a:prstGeom prst="rect"><a:avLst/></a:prstGeom></p:spPr></p:pic>`,
		id, id, relID, alpha, inchEMU(f.x), inchEMU(f.y), inchEMU(f.w), inchEMU(f.h))
}

func slideRelsXML(n int, media []mediaRef) string {
	var rels strings.Builder
	rels.WriteString(`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout" Target="../slideLayouts/slideLayout1.xml"/>`)
	for _, m := range media {
		rels.WriteString(fmt.Sprintf(`<Relationship Id="%s" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/image" Target="../media/%s"/>`, m.relID, m.filename))
	}
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">%s</Relationships>`, rels.String())
}

func contentTypesXML(deck *Deck) string {
	var overrides strings.Builder
	for i := range deck.Slides {
		overrides.WriteString(fmt.Sprintf(`<Override PartName="/ppt/slides/slide%d.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slide+xml"/>`, i+1))
	}
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/><Default Extension="xml" ContentType="application/xml"/><Default Extension="png" ContentType="image/png"/><Default Extension="jpeg" ContentType="image/jpeg"/><Override PartName="/ppt/presentation.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"/><Override PartName="/ppt/slideMasters/slideMaster1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"/><Override PartName="/ppt/slideLayouts/slideLayout1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"/><Override PartName="/ppt/theme/theme1.xml" ContentType="application/vnd.openxmlformats-officedocument.theme+xml"/><Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/><Override PartName="/docProps/app.xml" ContentType="application/vnd.openxmlformats-officedocument.extended-properties+xml"/>%s</Types>`, overrides.String())
}

func presentationXML(deck *Deck) string {
	var slideIDs strings.Builder
	for i := range deck.Slides {
		slideIDs.WriteString(fmt.Sprintf(`<p:sldId id="%d" r:id="rId%d"/>`, 256+i, i+2))
	}
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:presentation xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"><p:sldMasterIdLst><p:sldMasterId id="2147483648" r:id="rId1"/></p:sldMasterIdLst><p:sldIdLst>%s</p:sldIdLst><p:sldSz cx="9144000" cy="6858000"/><p:notesSz cx="6858000" cy="9144000"/></p:presentation>`, slideIDs.String())
}

func presentationRelsXML(deck *Deck) string {
	var rels strings.Builder
	rels.WriteString(`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster" Target="slideMasters/slideMaster1.xml"/>`)
	for i := range deck.Slides {
		rels.WriteString(fmt.Sprintf(`<Relationship Id="rId%d" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide" Target="slides/slide%d.xml"/>`, i+2, i+1))
	}
	rels.WriteString(fmt.Sprintf(`<Relationship Id="rId%d" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme" Target="theme/theme1.xml"/>`, deck.Len()+2))
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">%s</Relationships>`, rels.String())
}

func corePropsXML() string {
	now := time.Now().UTC().Format(time.RFC3339)
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"><dc:title>%s</dc:title><dc:subject>%s</dc:subject><dc:creator>%s</dc:creator><dcterms:created xsi:type="dcterms:W3CDTF">%s</dcterms:created><dcterms:modified xsi:type="dcterms:W3CDTF">%s</dcterms:modified></cp:coreProperties>`,
		pptxTitle, pptxSubject, pptxAuthor, now, now)
}

func appPropsXML(deck *Deck) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties"><Application>docsmith</Application><Slides>%d</Slides></Properties>`, deck.Len())
}

func orPlaceholder(v, fallback string) string {
	if strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

func hexToOOXML(hex string) string {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return "FFFFFF"
	}
	return strings.ToUpper(hex)
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

const rootRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="ppt/presentation.xml"/><Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/><Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties" Target="docProps/app.xml"/></Relationships>`

const slideMasterXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sldMaster xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"><p:cSld><p:bg><p:bgPr><a:solidFill><a:srgbClr val="FFFFFF"/></a:solidFill><a:effectLst/></p:bgPr></p:bg><p:spTree><p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr><p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/><a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr></p:spTree></p:cSld><p:clrMap bg1="lt1" tx1="dk1" bg2="lt2" tx2="dk2" accent1="accent1" accent2="accent2" accent3="accent3" accent4="accent4" accent5="accent5" accent6="accent6" hlink="hlink" folHlink="folHlink"/><p:sldLayoutIdLst><p:sldLayoutId id="2147483649" r:id="rId1"/></p:sldLayoutIdLst></p:sldMaster>`

const slideMasterRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout" Target="../slideLayouts/slideLayout1.xml"/><Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme" Target="../theme/theme1.xml"/></Relationships>`

const slideLayoutXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sldLayout xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main" type="blank"><p:cSld name="Blank"><p:spTree><p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr><p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/><a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr></p:spTree></p:cSld><p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr></p:sldLayout>`

const slideLayoutRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster" Target="../slideMasters/slideMaster1.xml"/></Relationships>`

const themeXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<a:theme xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" name="Office"><a:themeElements><a:clrScheme name="Office"><a:dk1><a:sysClr val="windowText" lastClr="000000"/></a:dk1><a:lt1><a:sysClr val="window" lastClr="FFFFFF"/></a:lt1><a:dk2><a:srgbClr val="44546A"/></a:dk2><a:lt2><a:srgbClr val="E7E6E6"/></a:lt2><a:accent1><a:srgbClr val="4472C4"/></a:accent1><a:accent2><a:srgbClr val="ED7D31"/></a:accent2><a:accent3><a:srgbClr val="A5A5A5"/></a:accent3><a:accent4><a:srgbClr val="FFC000"/></a:accent4><a:accent5><a:srgbClr val="5B9BD5"/></a:accent5><a:accent6><a:srgbClr val="70AD47"/></a:accent6><a:hlink><a:srgbClr val="0563C1"/></a:hlink><a:folHlink><a:srgbClr val="954F72"/></a:folHlink></a:clrScheme><a:fontScheme name="Office"><a:majorFont><a:latin typeface="Calibri Light"/><a:ea typeface=""/><a:cs typeface=""/></a:majorFont><a:minorFont><a:latin typeface="Calibri"/><a:ea typeface=""/><a:cs typeface=""/></a:minorFont></a:fontScheme><a:fmtScheme name="Office"><a:fillStyleLst><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:fillStyleLst><a:lnStyleLst><a:ln w="6350"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln><a:ln w="12700"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln><a:ln w="19050"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln></a:lnStyleLst><a:effectStyleLst><a:effectStyle><a:effectLst/></a:effectStyle><a:effectStyle><a:effectLst/></a:effectStyle><a:effectStyle><a:effectLst/></a:effectStyle></a:effectStyleLst><a:bgFillStyleLst><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:bgFillStyleLst></a:fmtScheme></a:themeElements></a:theme>`
