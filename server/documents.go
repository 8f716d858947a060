package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/flanksource/docsmith/document"
	"github.com/flanksource/docsmith/registry"
)

type templateGroup struct {
	Type      registry.DocumentType `json:"type"`
	Title     string                `json:"title"`
	Templates []registry.Template   `json:"templates"`
}

func (s *Server) listTemplates(c echo.Context) error {
	groups := make([]templateGroup, 0, len(registry.DocumentTypes()))
	for _, docType := range registry.DocumentTypes() {
		groups = append(groups, templateGroup{
			Type:      docType,
			Title:     registry.PreviewTitle(docType),
			Templates: registry.Templates(docType),
		})
	}
	return c.JSON(http.StatusOK, groups)
}

func (s *Server) templatesForType(c echo.Context) error {
	docType, err := registry.ParseDocumentType(c.Param("type"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.JSON(http.StatusOK, templateGroup{
		Type:      docType,
		Title:     registry.PreviewTitle(docType),
		Templates: registry.Templates(docType),
	})
}

func (s *Server) suggestField(c echo.Context) error {
	docType, err := registry.ParseDocumentType(c.QueryParam("type"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	field := c.QueryParam("field")
	value, ok := registry.Suggest(docType, field)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound,
			fmt.Sprintf("no suggestions for field %q", field))
	}
	return c.JSON(http.StatusOK, map[string]string{"field": field, "value": value})
}

type documentRequest struct {
	Type     string            `json:"type"`
	Template string            `json:"template"`
	Fields   map[string]string `json:"fields"`
	Accent   string            `json:"accent"`
	Font     string            `json:"font"`
}

func (s *Server) buildSession(req documentRequest) (*document.Session, error) {
	docType, err := registry.ParseDocumentType(req.Type)
	if err != nil {
		return nil, err
	}
	template, ok := registry.TemplateByID(docType, req.Template)
	if !ok {
		return nil, fmt.Errorf("unknown template %q for type %s", req.Template, docType)
	}
	session := document.NewSession(docType, template)
	for field, value := range req.Fields {
		session.Set(field, value)
	}
	if req.Accent != "" {
		session.Accent = req.Accent
	}
	if req.Font != "" {
		session.Font = req.Font
	}
	return session, nil
}

func (s *Server) previewDocument(c echo.Context) error {
	var req documentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	session, err := s.buildSession(req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]any{
		"form":    session.Form(),
		"preview": session.Preview(),
	})
}

func (s *Server) exportDocument(c echo.Context) error {
	var req documentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	session, err := s.buildSession(req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	data, err := session.Export()
	if err != nil {
		var missing *document.MissingFieldsError
		if errors.As(err, &missing) {
			return echo.NewHTTPError(http.StatusUnprocessableEntity, missing.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, attachment(session.Filename()))
	return c.Blob(http.StatusOK, "application/pdf", data)
}
