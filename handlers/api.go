package handlers

import (
	"fmt"
	"strconv"
	"time"

	"mysession/service"

	"github.com/labstack/echo/v4"
)

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	UserId   *int64 `json:"userId"`
	Password string `json:"password"`
}

// LoginResponse is returned by POST /login.
type LoginResponse struct {
	Message    string    `json:"message"`
	UserId     int64     `json:"userId"`
	Username   string    `json:"username"`
	Role       string    `json:"role"`
	SessionKey string    `json:"sessionKey"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ConfirmationResponse is returned by logout and force-logout.
type ConfirmationResponse struct {
	Message string `json:"message"`
	UserId  int64  `json:"userId"`
	Removed bool   `json:"removed"`
}

// LogoutParams defines parameters for Logout.
type LogoutParams struct {
	Key string `form:"key" json:"key"`
}

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (POST /login)
	Login(ctx echo.Context) error
	// (PATCH /logout)
	Logout(ctx echo.Context, params LogoutParams) error
	// (POST /admin/sessions/{user_id}/force-logout)
	ForceLogout(ctx echo.Context, userId int64) error
	// (GET /health)
	Health(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) Login(ctx echo.Context) error {
	return w.Handler.Login(ctx)
}

func (w *ServerInterfaceWrapper) Logout(ctx echo.Context) error {
	params := LogoutParams{Key: ctx.QueryParam("key")}
	return w.Handler.Logout(ctx, params)
}

func (w *ServerInterfaceWrapper) ForceLogout(ctx echo.Context) error {
	userId, err := strconv.ParseInt(ctx.Param("user_id"), 10, 64)
	if err != nil {
		return service.NewBadParameterError(fmt.Sprintf("invalid format for parameter user_id: %s", ctx.Param("user_id")), err)
	}
	return w.Handler.ForceLogout(ctx, userId)
}

func (w *ServerInterfaceWrapper) Health(ctx echo.Context) error {
	return w.Handler.Health(ctx)
}

// EchoRouter is the subset of echo.Echo and echo.Group used for registration.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.POST("/login", wrapper.Login)
	router.PATCH("/logout", wrapper.Logout)
	router.POST("/admin/sessions/:user_id/force-logout", wrapper.ForceLogout)
	router.GET("/health", wrapper.Health)
}

