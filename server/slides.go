package server

import (
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/flanksource/docsmith/slides"
)

// PDF uploads share the image cap.
const maxPDFUpload = maxImageUpload

type slideView struct {
	Index        int           `json:"index"`
	Title        string        `json:"title"`
	Content      string        `json:"content"`
	BGColor      string        `json:"bgColor"`
	Layout       slides.Layout `json:"layout"`
	TitleColor   string        `json:"titleColor"`
	ContentColor string        `json:"contentColor"`
	Images       []string      `json:"images"`
	HasBackdrop  bool          `json:"hasBackdrop"`
}

func viewDeck(deck *slides.Deck) []slideView {
	views := make([]slideView, 0, deck.Len())
	for i, slide := range deck.Slides {
		view := slideView{
			Index:        i,
			Title:        slide.Title,
			Content:      slide.Content,
			BGColor:      slide.BGColor,
			Layout:       slide.Layout,
			TitleColor:   slide.TitleColor,
			ContentColor: slide.ContentColor,
			HasBackdrop:  len(slide.Background) > 0,
		}
		for _, img := range slide.Images {
			view.Images = append(view.Images, img.ID)
		}
		views = append(views, view)
	}
	return views
}

func (s *Server) convertPDF(c echo.Context) error {
	file, err := c.FormFile("pdf")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "missing pdf upload")
	}
	src, err := file.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxPDFUpload))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	deck, err := slides.FromPDF(data)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	id := s.storeDeck(deck)
	return c.JSON(http.StatusOK, map[string]any{
		"deck":   id,
		"slides": viewDeck(deck),
	})
}

func (s *Server) getDeck(c echo.Context) error {
	deck, ok := s.deck(c.Param("deck"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "unknown deck")
	}
	return c.JSON(http.StatusOK, viewDeck(deck))
}

type slideUpdate struct {
	Title        *string       `json:"title"`
	Content      *string       `json:"content"`
	BGColor      *string       `json:"bgColor"`
	Layout       *string       `json:"layout"`
	TitleColor   *string       `json:"titleColor"`
	ContentColor *string       `json:"contentColor"`
	AddImage     *slides.Image `json:"addImage"`
	RemoveImage  *string       `json:"removeImage"`
}

func (s *Server) updateSlide(c echo.Context) error {
	deck, ok := s.deck(c.Param("deck"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "unknown deck")
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || !deck.Select(index) {
		return echo.NewHTTPError(http.StatusNotFound, "unknown slide index")
	}
	slide := deck.Current()

	var update slideUpdate
	if err := c.Bind(&update); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if update.Layout != nil {
		layout, err := slides.ParseLayout(*update.Layout)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		slide.Layout = layout
	}
	if update.Title != nil {
		slide.Title = *update.Title
	}
	if update.Content != nil {
		slide.Content = *update.Content
	}
	if update.BGColor != nil {
		slide.BGColor = *update.BGColor
	}
	if update.TitleColor != nil {
		slide.TitleColor = *update.TitleColor
	}
	if update.ContentColor != nil {
		slide.ContentColor = *update.ContentColor
	}
	if update.AddImage != nil {
		slide.AddImage(*update.AddImage)
	}
	if update.RemoveImage != nil {
		slide.RemoveImage(*update.RemoveImage)
	}

	return c.JSON(http.StatusOK, viewDeck(deck)[index])
}

func (s *Server) exportDeck(c echo.Context) error {
	deck, ok := s.deck(c.Param("deck"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "unknown deck")
	}

	deck.ResolveImages(c.Request().Context(), nil)
	data, err := slides.WritePPTX(deck)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		attachment(slides.PresentationFilename()))
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.presentationml.presentation", data)
}

func (s *Server) searchImages(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing query")
	}
	results, err := s.searcher.Search(c.Request().Context(), query)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	return c.JSON(http.StatusOK, results)
}

type grammarRequest struct {
	Text string `json:"text"`
}

func (s *Server) checkGrammar(c echo.Context) error {
	var req grammarRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	issues, err := s.grammar.Check(c.Request().Context(), req.Text)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]any{"issues": issues})
}
