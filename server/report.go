package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/flanksource/docsmith/webreport"
)

type reportRequest struct {
	URL     string `json:"url"`
	Author  string `json:"author"`
	Company string `json:"company"`
	Purpose string `json:"purpose"`

	// Optional edits applied to the fabricated usage guide before export.
	UsageEdits map[string]string `json:"usageEdits"`
}

func (s *Server) analyzeRequest(req reportRequest) (*webreport.Analysis, error) {
	analysis, err := s.analyzer.Analyze(webreport.Request{
		URL:     req.URL,
		Author:  req.Author,
		Company: req.Company,
		Purpose: req.Purpose,
	})
	if err != nil {
		return nil, err
	}
	for key, text := range req.UsageEdits {
		if err := analysis.ApplyUsageEdit(key, text); err != nil {
			return nil, err
		}
	}
	return analysis, nil
}

func (s *Server) generateReport(c echo.Context) error {
	var req reportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	analysis, err := s.analyzeRequest(req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, analysis)
}

func (s *Server) exportReport(c echo.Context) error {
	var req reportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	analysis, err := s.analyzeRequest(req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	data, err := webreport.ExportPDF(analysis, s.capture)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, attachment(analysis.Filename()))
	return c.Blob(http.StatusOK, "application/pdf", data)
}
