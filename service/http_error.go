package service

import (
	"errors"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
)

// RegisterErrorHandler register custom error handler.
func RegisterErrorHandler(e *echo.Echo, logger log.Logger) {
	e.HTTPErrorHandler = NewHTTPErrorHandler(NewErrorCodeToStatusCodeMaps(), logger).Handler
}

// NewErrorCodeToStatusCodeMaps creates an error code to http status mapping.
func NewErrorCodeToStatusCodeMaps() map[string]int {
	var errorCodeToStatusCodeMaps = make(map[string]int)
	errorCodeToStatusCodeMaps[ErrBadParameter] = http.StatusBadRequest
	errorCodeToStatusCodeMaps[ErrEntityNotFound] = http.StatusNotFound
	errorCodeToStatusCodeMaps[ErrInternalServerError] = http.StatusInternalServerError
	errorCodeToStatusCodeMaps[ErrUserNotFound] = http.StatusNotFound
	errorCodeToStatusCodeMaps[ErrInvalidCredentials] = http.StatusUnauthorized
	errorCodeToStatusCodeMaps[ErrSessionAlreadyActive] = http.StatusConflict
	errorCodeToStatusCodeMaps[ErrSessionNotFound] = http.StatusNotFound
	errorCodeToStatusCodeMaps[ErrSessionCreationFailed] = http.StatusInternalServerError

	return errorCodeToStatusCodeMaps
}

// HTTPErrorHandler is an error handler.
type HTTPErrorHandler struct {
	errorCodeToHTTPStatusCodeMap map[string]int
	logger                       log.Logger
}

// NewHTTPErrorHandler creates a new instance of the HTTPErrorHandler.
func NewHTTPErrorHandler(errorCodeToStatusCodeMaps map[string]int, logger log.Logger) *HTTPErrorHandler {
	return &HTTPErrorHandler{
		errorCodeToHTTPStatusCodeMap: errorCodeToStatusCodeMaps,
		logger:                       logger,
	}
}

func (h *HTTPErrorHandler) getStatusCode(errorCode string) int {
	status, ok := h.errorCodeToHTTPStatusCodeMap[errorCode]
	if ok {
		return status
	}

	return http.StatusInternalServerError
}

// Handler handles error returned by echo Handlers.
func (h *HTTPErrorHandler) Handler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	sessErr, ok := ToSessionError(err)
	if !ok {
		sessErr = NewInternalServerError("an internal server error has occurred", err)
	}

	var statusCode int
	var he *echo.HTTPError
	if errors.As(err, &he) {
		codeStr := ErrInternalServerError
		if he.Code < http.StatusInternalServerError {
			codeStr = ErrBadParameter
		}
		if he.Code == http.StatusNotFound || he.Code == http.StatusMethodNotAllowed {
			codeStr = ErrEntityNotFound
		}
		if he.Internal != nil {
			if herr, ok := he.Internal.(*echo.HTTPError); ok {
				he = herr
			}
			var requestError *openapi3filter.RequestError
			if errors.As(he.Internal, &requestError) {
				codeStr = ErrBadParameter
			}
		}

		m, _ := he.Message.(string)
		sessErr = SessionError{Code: codeStr, Message: m, Inner: err}
		statusCode = he.Code
	} else {
		statusCode = h.getStatusCode(sessErr.Code)
	}

	if statusCode >= http.StatusInternalServerError {
		level.Error(h.logger).Log(
			"msg", "HTTP request error",
			"path", c.Request().URL.Path,
			"err", err,
		)
	} else {
		level.Info(h.logger).Log(
			"msg", "HTTP request error",
			"path", c.Request().URL.Path,
			"error_code", sessErr.Code,
			"err", err,
		)
	}

	// Send response
	if !c.Response().Committed {
		if c.Request().Method == http.MethodHead && he != nil {
			_ = c.NoContent(he.Code)
		} else {
			_ = c.JSON(statusCode, ErrResponse{Error: &sessErr})
		}
	}
}

// ErrResponse from server.
type ErrResponse struct {
	Error *SessionError `json:"error,omitempty"`
}
