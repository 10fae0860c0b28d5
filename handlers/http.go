// Package handlers contains the HTTP and gRPC handlers of mysession.
package handlers

import (
	"net/http"

	"mysession/helpers"
	"mysession/interfaces"
	"mysession/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
)

// HTTPServer implements ServerInterface on top of the session manager.
type HTTPServer struct {
	manager interfaces.SessionManager
	logger  log.Logger
}

// NewHTTPServer creates a new HTTPServer.
func NewHTTPServer(manager interfaces.SessionManager, logger log.Logger) *HTTPServer {
	logger = log.WithPrefix(logger, "component", "HTTPServer")
	return &HTTPServer{
		manager: helpers.NilPanic(manager, "handlers.http.go: session manager is required"),
		logger:  logger,
	}
}

// Login (POST /login) authenticates the user and returns the new session key.
func (h *HTTPServer) Login(ectx echo.Context) error {
	var req LoginRequest
	if err := ectx.Bind(&req); err != nil {
		return service.NewBadParameterError("invalid request body", err)
	}

	userID, password, err := fromLoginRequest(req)
	if err != nil {
		return err
	}

	res, err := h.manager.Login(ectx.Request().Context(), userID, password)
	if err != nil {
		return err
	}

	return ectx.JSON(http.StatusOK, toLoginResponse(res))
}

// Logout (PATCH /logout?key=) ends the session holding key.
func (h *HTTPServer) Logout(ectx echo.Context, params LogoutParams) error {
	conf, err := h.manager.Logout(ectx.Request().Context(), params.Key)
	if err != nil {
		return err
	}
	return ectx.JSON(http.StatusOK, toConfirmationResponse(conf))
}

// ForceLogout (POST /admin/sessions/{user_id}/force-logout) ends the user's session if one exists.
func (h *HTTPServer) ForceLogout(ectx echo.Context, userId int64) error {
	if userId <= 0 {
		return service.NewBadParameterError("user_id must be positive", nil)
	}
	conf, err := h.manager.ForceLogout(ectx.Request().Context(), userId)
	if err != nil {
		return err
	}
	level.Info(h.logger).Log("msg", "force logout requested", "user_id", userId, "removed", conf.Removed)
	return ectx.JSON(http.StatusOK, toConfirmationResponse(conf))
}

// Health (GET /health).
func (h *HTTPServer) Health(ectx echo.Context) error {
	return ectx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
