package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/flanksource/docsmith/theme"
)

const themeSessionKey = "theme"

// currentTheme resolves the visitor's mode: the browser session wins, then
// the persisted server default, then light.
func (s *Server) currentTheme(c echo.Context) theme.Mode {
	session, err := s.sessions.Get(c.Request(), sessionName)
	if err == nil {
		if raw, ok := session.Values[themeSessionKey].(string); ok {
			if mode := theme.Mode(raw); mode == theme.Light || mode == theme.Dark {
				return mode
			}
		}
	}
	if s.themes != nil {
		return s.themes.Load()
	}
	return theme.Light
}

func (s *Server) getTheme(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]theme.Mode{"mode": s.currentTheme(c)})
}

func (s *Server) toggleTheme(c echo.Context) error {
	next := theme.Dark
	if s.currentTheme(c) == theme.Dark {
		next = theme.Light
	}

	session, err := s.sessions.Get(c.Request(), sessionName)
	if err != nil {
		session, err = s.sessions.New(c.Request(), sessionName)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	session.Values[themeSessionKey] = string(next)
	if err := session.Save(c.Request(), c.Response()); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	// Persisting the server default is best effort.
	if s.themes != nil {
		_ = s.themes.Save(next)
	}
	return c.JSON(http.StatusOK, map[string]theme.Mode{"mode": next})
}
