package server

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mazilong/tui.chart/internal/chart"
	"github.com/mazilong/tui.chart/internal/definition"
	"github.com/mazilong/tui.chart/internal/render"
	"github.com/mazilong/tui.chart/internal/reports"
	"github.com/mazilong/tui.chart/internal/storage"
)

// MIMEApplicationMsgpack is the content type of msgpack plans
const MIMEApplicationMsgpack = "application/msgpack"

// HandleHealth reports service status
func (s *Server) HandleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"version":   s.Version,
		"storage":   s.Orchestrator != nil,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HandlePlan builds the posted definition and returns the drawn frame as
// JSON, or msgpack when the client accepts it
func (s *Server) HandlePlan(c echo.Context) error {
	def, hidden, err := readDefinition(c)
	if err != nil {
		return err
	}

	built, err := s.Generator.Build(def, hidden)
	if err != nil {
		return buildError(err)
	}

	if strings.Contains(c.Request().Header.Get(echo.HeaderAccept), MIMEApplicationMsgpack) {
		data, err := reports.EncodeFrame(built.Frame, reports.EncodingMsgpack)
		if err != nil {
			return NewInternalError("failed to encode plan", err)
		}
		return c.Blob(http.StatusOK, MIMEApplicationMsgpack, data)
	}
	return c.JSON(http.StatusOK, built.Frame)
}

// HandleRender renders the posted definition as html or png. With save=true
// the chart and its plan are stored and their keys returned in headers.
func (s *Server) HandleRender(c echo.Context) error {
	def, hidden, err := readDefinition(c)
	if err != nil {
		return err
	}

	format := c.QueryParam("format")
	if format == "" {
		format = s.Config.RenderFormat
	}

	rendered, err := s.Generator.Render(def, format, hidden)
	if err != nil {
		if errors.Is(err, render.ErrUnsupportedFormat) {
			return NewBadRequestError("unsupported render format", err)
		}
		return buildError(err)
	}

	if save, _ := strconv.ParseBool(c.QueryParam("save")); save {
		if s.Orchestrator == nil {
			return NewBadRequestError("storage is not configured", nil)
		}
		keys, err := s.Orchestrator.StoreChart(c.Request().Context(), rendered)
		if err != nil {
			return NewInternalError("failed to store chart", err)
		}
		c.Response().Header().Set("X-Chart-Key", keys[0])
		c.Response().Header().Set("X-Chart-Location", s.Orchestrator.Location(keys[0]))
	}

	c.Response().Header().Set("X-Chart-ID", rendered.ChartID)
	return c.Blob(http.StatusOK, rendered.ContentType, rendered.Data)
}

// HandleListCharts lists stored artifacts, newest first
func (s *Server) HandleListCharts(c echo.Context) error {
	store, err := s.store()
	if err != nil {
		return err
	}

	limit := 20
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return NewBadRequestError("limit must be a positive integer", err)
		}
		limit = min(parsed, 100)
	}

	keys, err := store.List(c.Request().Context(), c.QueryParam("prefix"), limit)
	if err != nil {
		return NewInternalError("failed to list charts", err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"charts": keys,
		"count":  len(keys),
	})
}

// HandleChartFile serves one stored artifact
func (s *Server) HandleChartFile(c echo.Context) error {
	store, err := s.store()
	if err != nil {
		return err
	}

	key := c.Param("*")
	if key == "" || strings.Contains(key, "..") {
		return NewBadRequestError("invalid chart path", nil)
	}

	ctx := c.Request().Context()
	ok, err := store.Exists(ctx, key)
	if err != nil {
		return NewInternalError("failed to look up chart", err)
	}
	if !ok {
		return NewNotFoundError("chart file", key)
	}

	data, err := store.Get(ctx, key)
	if err != nil {
		return NewInternalError("failed to read chart", err)
	}
	return c.Blob(http.StatusOK, storage.GetContentType(key), data)
}

func (s *Server) store() (storage.Store, error) {
	if s.Orchestrator == nil {
		return nil, &APIError{Status: http.StatusServiceUnavailable, Code: "STORAGE_DISABLED", Message: "storage is not configured"}
	}
	return s.Orchestrator.Store(), nil
}

// readDefinition decodes the request body as JSON or YAML, chosen by
// Content-Type, and the hide query parameters as legend visibility
func readDefinition(c echo.Context) (chart.Definition, map[string][]bool, error) {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return chart.Definition{}, nil, NewBadRequestError("failed to read request body", err)
	}
	if len(body) == 0 {
		return chart.Definition{}, nil, NewBadRequestError("request body is empty", nil)
	}

	format := ""
	contentType := c.Request().Header.Get(echo.HeaderContentType)
	switch {
	case strings.Contains(contentType, "json"):
		format = definition.FormatJSON
	case strings.Contains(contentType, "yaml"):
		format = definition.FormatYAML
	}

	def, err := definition.Parse(body, format)
	if err != nil {
		return chart.Definition{}, nil, NewBadRequestError("invalid chart definition", err)
	}

	hidden, err := reports.ParseHidden(c.QueryParams()["hide"])
	if err != nil {
		return chart.Definition{}, nil, NewBadRequestError("invalid hide parameter", err)
	}
	return def, hidden, nil
}
