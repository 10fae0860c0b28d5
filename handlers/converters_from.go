package handlers

import (
	"mysession/service"
)

const (
	minPasswordLength = 6
	maxPasswordLength = 20
)

// fromLoginRequest validates LoginRequest.
// Returns service.BadParameterError on validation failure.
func fromLoginRequest(req LoginRequest) (int64, string, error) {
	if req.UserId == nil {
		return 0, "", service.NewBadParameterError("userId is required", nil)
	}
	if *req.UserId <= 0 {
		return 0, "", service.NewBadParameterError("userId must be positive", nil)
	}
	if req.Password == "" {
		return 0, "", service.NewBadParameterError("password is required", nil)
	}
	if n := len([]rune(req.Password)); n < minPasswordLength || n > maxPasswordLength {
		return 0, "", service.NewBadParameterError("password must be between 6 and 20 characters", nil)
	}
	return *req.UserId, req.Password, nil
}
