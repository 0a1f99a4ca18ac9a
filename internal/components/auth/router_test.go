package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	registerErr error
	loginToken  string
	loginErr    error
}

func (f *fakeService) Register(_ context.Context, req RegisterRequest) (*User, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return &User{Username: req.Username}, nil
}

func (f *fakeService) Login(_ context.Context, _ LoginRequest) (string, error) {
	return f.loginToken, f.loginErr
}

func postJSON(t *testing.T, handler http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Register(t *testing.T) {
	router := NewRouter(&fakeService{})

	rec := postJSON(t, router, "/register", `{"username":"alice","password":"secret-pass"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp MessageResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.NotEmpty(t, resp.Message)
}

func TestRouter_RegisterValidation(t *testing.T) {
	router := NewRouter(&fakeService{})

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"username":`},
		{"blank username", `{"username":"","password":"secret-pass"}`},
		{"blank password", `{"username":"alice","password":""}`},
		{"short password", `{"username":"alice","password":"abc"}`},
		{"padded short username", `{"username":"  ab  ","password":"secret-pass"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, router, "/register", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestRouter_RegisterConflict(t *testing.T) {
	router := NewRouter(&fakeService{registerErr: ErrUsernameTaken})

	rec := postJSON(t, router, "/register", `{"username":"alice","password":"secret-pass"}`)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "username already exists")
}

func TestRouter_RegisterStoreError(t *testing.T) {
	router := NewRouter(&fakeService{registerErr: context.DeadlineExceeded})

	rec := postJSON(t, router, "/register", `{"username":"alice","password":"secret-pass"}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	// The underlying store error must not be echoed to the client.
	assert.NotContains(t, rec.Body.String(), context.DeadlineExceeded.Error())
}

func TestRouter_Login(t *testing.T) {
	router := NewRouter(&fakeService{loginToken: "signed-token"})

	rec := postJSON(t, router, "/login", `{"username":"alice","password":"secret-pass"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp LoginResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "signed-token", resp.Token)
}

func TestRouter_LoginInvalidCredentials(t *testing.T) {
	router := NewRouter(&fakeService{loginErr: ErrInvalidCredentials})

	rec := postJSON(t, router, "/login", `{"username":"alice","password":"wrong-pass"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid credentials")
}

func TestRouter_LoginBlankFields(t *testing.T) {
	// Blank credentials get the same response as failed ones.
	router := NewRouter(&fakeService{loginToken: "should-not-be-issued"})

	rec := postJSON(t, router, "/login", `{"username":"","password":""}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid credentials")
	assert.NotContains(t, rec.Body.String(), "should-not-be-issued")
}
