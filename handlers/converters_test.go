package handlers

import (
	"testing"

	"mysession/domain"
	"mysession/helpers"
	"mysession/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }

func TestFromLoginRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     LoginRequest
		wantErr bool
	}{
		{"ok", LoginRequest{UserId: int64Ptr(101), Password: "secret123"}, false},
		{"six characters", LoginRequest{UserId: int64Ptr(1), Password: "abcdef"}, false},
		{"twenty characters", LoginRequest{UserId: int64Ptr(1), Password: "abcdefghijklmnopqrst"}, false},
		{"missing user id", LoginRequest{Password: "secret123"}, true},
		{"negative user id", LoginRequest{UserId: int64Ptr(-4), Password: "secret123"}, true},
		{"empty password", LoginRequest{UserId: int64Ptr(101)}, true},
		{"five characters", LoginRequest{UserId: int64Ptr(101), Password: "abcde"}, true},
		{"twenty one characters", LoginRequest{UserId: int64Ptr(101), Password: "abcdefghijklmnopqrstu"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, pw, err := fromLoginRequest(tt.req)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, service.IsBadParameter(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, *tt.req.UserId, id)
			assert.Equal(t, tt.req.Password, pw)
		})
	}
}

func TestToLoginResponse(t *testing.T) {
	got := toLoginResponse(domain.LoginResult{
		UserID: 303, Username: "root", Role: domain.RoleAdmin, Key: "Zx81Qa", CreatedAt: helpers.TestNow(),
	})
	assert.Equal(t, LoginResponse{
		Message:    "Login successful. UserId: 303, Username: root, SessionKey: Zx81Qa",
		UserId:     303,
		Username:   "root",
		Role:       "admin",
		SessionKey: "Zx81Qa",
		CreatedAt:  helpers.TestNow(),
	}, got)
}

func TestToConfirmationResponse(t *testing.T) {
	got := toConfirmationResponse(domain.Confirmation{UserID: 5, Message: "No active session for user 5."})
	assert.Equal(t, ConfirmationResponse{Message: "No active session for user 5.", UserId: 5}, got)
}
