package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/nathan/user-management-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(raw))
	require.NoError(t, err)

	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestAuthHandler_Signup(t *testing.T) {
	ts := testutil.NewTestServer(t)

	tests := []struct {
		name            string
		request         map[string]string
		setup           func()
		expectedStatus  int
		expectedMessage string
	}{
		{
			name: "successful signup",
			request: map[string]string{
				"name":     "Alice",
				"email":    "alice@x.com",
				"password": "secret1",
			},
			expectedStatus:  http.StatusOK,
			expectedMessage: "User registered successfully!",
		},
		{
			name: "duplicate email",
			request: map[string]string{
				"name":     "Other",
				"email":    "taken@x.com",
				"password": "secret1",
			},
			setup: func() {
				testutil.NewUserBuilder().
					WithEmail("taken@x.com").
					Build(t, ts.DB.DB)
			},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Error: Email is already in use!",
		},
		{
			name: "name too short",
			request: map[string]string{
				"name":     "Al",
				"email":    "short@x.com",
				"password": "secret1",
			},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "name",
		},
		{
			name: "invalid email",
			request: map[string]string{
				"name":     "Alice",
				"email":    "not-an-email",
				"password": "secret1",
			},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "email",
		},
		{
			name: "password too short",
			request: map[string]string{
				"name":     "Alice",
				"email":    "pw@x.com",
				"password": "12345",
			},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "password",
		},
		{
			name: "missing fields",
			request: map[string]string{
				"email": "only@x.com",
			},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "cannot be blank",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts.DB.Truncate(t)

			if tt.setup != nil {
				tt.setup()
			}

			resp := postJSON(t, ts.APIURL("/auth/signup"), tt.request)
			testutil.AssertMessageResponse(t, resp, tt.expectedStatus, tt.expectedMessage)
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	ts := testutil.NewTestServer(t)

	user, rawPassword := testutil.NewUserBuilder().
		WithName("Login User").
		WithEmail("login@x.com").
		Build(t, ts.DB.DB)

	t.Run("successful login", func(t *testing.T) {
		resp := postJSON(t, ts.APIURL("/auth/login"), map[string]string{
			"email":    user.Email,
			"password": rawPassword,
		})

		testutil.AssertStatusCode(t, resp, http.StatusOK)

		var result testutil.JwtResponse
		testutil.AssertJSONResponse(t, resp, &result)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, "Bearer", result.Type)
		assert.Equal(t, user.ID, result.ID)
		assert.Equal(t, user.Name, result.Name)
		assert.Equal(t, user.Email, result.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		resp := postJSON(t, ts.APIURL("/auth/login"), map[string]string{
			"email":    user.Email,
			"password": "wrongpassword",
		})
		testutil.AssertMessageResponse(t, resp, http.StatusUnauthorized, "Error: Invalid email or password!")
	})

	t.Run("unknown email", func(t *testing.T) {
		resp := postJSON(t, ts.APIURL("/auth/login"), map[string]string{
			"email":    "ghost@x.com",
			"password": "anypassword",
		})
		testutil.AssertMessageResponse(t, resp, http.StatusUnauthorized, "Error: Invalid email or password!")
	})

	t.Run("missing fields", func(t *testing.T) {
		resp := postJSON(t, ts.APIURL("/auth/login"), map[string]string{
			"email": user.Email,
		})
		testutil.AssertStatusCode(t, resp, http.StatusBadRequest)
	})
}
