package handlers_test

import (
	"testing"

	"github.com/nathan/user-management-api/internal/api/handlers"
	"github.com/stretchr/testify/assert"
)

func ptr(s string) *string {
	return &s
}

func TestUpdateUserRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		request handlers.UpdateUserRequest
		wantErr bool
	}{
		{name: "all fields absent", request: handlers.UpdateUserRequest{}},
		{name: "valid name", request: handlers.UpdateUserRequest{Name: ptr("Alice")}},
		{name: "valid email", request: handlers.UpdateUserRequest{Email: ptr("alice@x.com")}},
		{name: "valid password", request: handlers.UpdateUserRequest{Password: ptr("secret1")}},
		{name: "empty name", request: handlers.UpdateUserRequest{Name: ptr("")}, wantErr: true},
		{name: "empty email", request: handlers.UpdateUserRequest{Email: ptr("")}, wantErr: true},
		{name: "empty password", request: handlers.UpdateUserRequest{Password: ptr("")}, wantErr: true},
		{name: "name too short", request: handlers.UpdateUserRequest{Name: ptr("Al")}, wantErr: true},
		{name: "invalid email", request: handlers.UpdateUserRequest{Email: ptr("not-an-email")}, wantErr: true},
		{name: "password too short", request: handlers.UpdateUserRequest{Password: ptr("12345")}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
