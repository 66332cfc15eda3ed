package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mazilong/tui.chart/internal/planner"
)

// APIError is the JSON body of every failed request
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewBadRequestError creates a 400 error
func NewBadRequestError(message string, cause error) *APIError {
	err := &APIError{
		Status:  http.StatusBadRequest,
		Code:    "BAD_REQUEST",
		Message: message,
	}
	if cause != nil {
		err.Details = cause.Error()
	}
	return err
}

// NewNotFoundError creates a 404 error
func NewNotFoundError(resource, id string) *APIError {
	return &APIError{
		Status:  http.StatusNotFound,
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found: %s", resource, id),
	}
}

// NewInternalError creates a 500 error
func NewInternalError(message string, cause error) *APIError {
	err := &APIError{
		Status:  http.StatusInternalServerError,
		Code:    "INTERNAL_ERROR",
		Message: message,
	}
	if cause != nil {
		err.Details = cause.Error()
	}
	return err
}

// buildError maps a chart build failure to an API error. Configuration
// problems in the definition are the caller's fault.
func buildError(err error) *APIError {
	var cfgErr *planner.ConfigError
	switch {
	case errors.Is(err, planner.ErrUnknownChartType):
		return &APIError{Status: http.StatusUnprocessableEntity, Code: "UNKNOWN_CHART_TYPE", Message: "unsupported chart type", Details: err.Error()}
	case errors.Is(err, planner.ErrTooManyFamilies):
		return &APIError{Status: http.StatusUnprocessableEntity, Code: "TOO_MANY_FAMILIES", Message: "a combo chart takes at most two chart types", Details: err.Error()}
	case errors.Is(err, planner.ErrNoSeries):
		return &APIError{Status: http.StatusUnprocessableEntity, Code: "NO_SERIES", Message: "the definition has no series", Details: err.Error()}
	case errors.As(err, &cfgErr), errors.Is(err, planner.ErrUnknownFamily):
		return &APIError{Status: http.StatusUnprocessableEntity, Code: "INVALID_CONFIGURATION", Message: "invalid chart configuration", Details: err.Error()}
	default:
		return NewInternalError("failed to build chart", err)
	}
}

// ErrorHandler writes errors as JSON. Use as e.HTTPErrorHandler.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var apiErr *APIError
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &apiErr):
	case errors.As(err, &httpErr):
		apiErr = &APIError{
			Status:  httpErr.Code,
			Code:    "HTTP_ERROR",
			Message: fmt.Sprintf("%v", httpErr.Message),
		}
	default:
		apiErr = NewInternalError("an unexpected error occurred", err)
	}

	if c.Request().Method == http.MethodHead {
		c.NoContent(apiErr.Status)
		return
	}
	c.JSON(apiErr.Status, apiErr)
}
