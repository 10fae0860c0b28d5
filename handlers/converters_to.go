package handlers

import (
	"mysession/domain"
)

func toLoginResponse(res domain.LoginResult) LoginResponse {
	return LoginResponse{
		Message:    res.String(),
		UserId:     res.UserID,
		Username:   res.Username,
		Role:       string(res.Role),
		SessionKey: res.Key,
		CreatedAt:  res.CreatedAt,
	}
}

func toConfirmationResponse(conf domain.Confirmation) ConfirmationResponse {
	return ConfirmationResponse{
		Message: conf.Message,
		UserId:  conf.UserID,
		Removed: conf.Removed,
	}
}
