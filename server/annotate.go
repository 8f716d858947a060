package server

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/flanksource/docsmith/annotate"
)

// Image uploads are capped to keep OCR memory bounded.
const maxImageUpload = 20 << 20

type boxView struct {
	ID        string  `json:"id"`
	Text      string  `json:"text"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	FontSize  float64 `json:"fontSize"`
	Color     string  `json:"color"`
	Bold      bool    `json:"bold"`
	Italic    bool    `json:"italic"`
	Underline bool    `json:"underline"`
}

func viewBoxes(boxes []*annotate.TextBox) []boxView {
	views := make([]boxView, 0, len(boxes))
	for _, b := range boxes {
		views = append(views, boxView{
			ID:        b.ID,
			Text:      b.Text,
			X:         b.Geometry.X,
			Y:         b.Geometry.Y,
			Width:     b.Geometry.Width,
			Height:    b.Geometry.Height,
			FontSize:  b.FontSize,
			Color:     b.Color,
			Bold:      b.Bold,
			Italic:    b.Italic,
			Underline: b.Underline,
		})
	}
	return views
}

func (s *Server) loadImage(c echo.Context) error {
	file, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "missing image upload")
	}
	src, err := file.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxImageUpload))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	editor := annotate.NewEditor(s.recognizer)
	if err := editor.Load(data); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	id := s.storeEditor(editor)
	width, height := editor.WorkingBounds()
	return c.JSON(http.StatusOK, map[string]any{
		"editor": id,
		"width":  width,
		"height": height,
	})
}

func (s *Server) extractText(c echo.Context) error {
	editor, ok := s.editor(c.Param("editor"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "unknown editor session")
	}
	if err := editor.Extract(c.Request().Context()); err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]any{
		"status": editor.Status(),
		"boxes":  viewBoxes(editor.Boxes()),
	})
}

type boxUpdate struct {
	Text   *string  `json:"text"`
	DragX  *float64 `json:"dragX"`
	DragY  *float64 `json:"dragY"`
	Corner string   `json:"corner"`
	DX     float64  `json:"dx"`
	DY     float64  `json:"dy"`
}

func (s *Server) updateBox(c echo.Context) error {
	editor, ok := s.editor(c.Param("editor"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "unknown editor session")
	}

	var update boxUpdate
	if err := c.Bind(&update); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id := c.Param("box")
	applied := false
	if update.Text != nil {
		applied = editor.SetText(id, *update.Text) || applied
	}
	if update.DragX != nil || update.DragY != nil {
		var dx, dy float64
		if update.DragX != nil {
			dx = *update.DragX
		}
		if update.DragY != nil {
			dy = *update.DragY
		}
		applied = editor.Drag(id, dx, dy) || applied
	}
	if update.Corner != "" {
		applied = editor.Resize(id, annotate.Corner(update.Corner), update.DX, update.DY) || applied
	}
	if !applied {
		return echo.NewHTTPError(http.StatusNotFound, "unknown box")
	}

	box, _ := editor.Select(id)
	return c.JSON(http.StatusOK, viewBoxes([]*annotate.TextBox{box})[0])
}

func (s *Server) deleteBox(c echo.Context) error {
	editor, ok := s.editor(c.Param("editor"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "unknown editor session")
	}
	if !editor.Delete(c.Param("box")) {
		return echo.NewHTTPError(http.StatusNotFound, "unknown box")
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) renderImage(c echo.Context) error {
	editor, ok := s.editor(c.Param("editor"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "unknown editor session")
	}
	data, err := editor.Render()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	c.Response().Header().Set(echo.HeaderContentDisposition,
		attachment(annotate.RenderedImageFilename))
	return c.Blob(http.StatusOK, "image/png", data)
}

func (s *Server) exportExtractedText(c echo.Context) error {
	editor, ok := s.editor(c.Param("editor"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "unknown editor session")
	}

	switch format := c.QueryParam("format"); format {
	case "", "docx":
		data, err := editor.ExportDocx()
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		c.Response().Header().Set(echo.HeaderContentDisposition,
			attachment(annotate.DocxFilename))
		return c.Blob(http.StatusOK,
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document", data)
	case "doc":
		c.Response().Header().Set(echo.HeaderContentDisposition,
			attachment(annotate.DocFilename))
		return c.Blob(http.StatusOK, "application/msword", editor.ExportDoc())
	case "txt":
		return c.String(http.StatusOK, editor.ExtractedText())
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "unsupported export format "+format)
	}
}
