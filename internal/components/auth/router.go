package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"
)

type (
	Router struct {
		service servicer
	}
)

func NewRouter(service servicer) chi.Router {
	router := &Router{service: service}
	return router.Routes()
}

func (r *Router) Routes() chi.Router {
	router := chi.NewRouter()
	router.Post("/register", r.Register)
	router.Post("/login", r.Login)
	return router
}

// Register creates a new credential from {username, password}.
func (r *Router) Register(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	logger := hlog.FromRequest(req)

	var body RegisterRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := body.Validate(); err != nil {
		logger.Debug().Err(err).Msg("Registration payload rejected")
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := r.service.Register(ctx, body); err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			writeMessage(w, http.StatusConflict, "username already exists")
			return
		}
		// Store failures stay server-side; the client gets a generic error.
		logger.Error().Err(err).Msg("Error registering user")
		writeMessage(w, http.StatusInternalServerError, "error registering user")
		return
	}

	writeMessage(w, http.StatusCreated, "user registered successfully")
}

// Login verifies credentials and returns a bearer token.
func (r *Router) Login(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	logger := hlog.FromRequest(req)

	var body LoginRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// Blank fields can never match a credential; reject them with the same
	// response as a failed lookup to keep the error surface uniform.
	if err := body.Validate(); err != nil {
		writeMessage(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := r.service.Login(ctx, body)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			logger.Warn().Str("username", body.Username).Msg("Login failed: invalid credentials")
			writeMessage(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		logger.Error().Err(err).Msg("Error logging in")
		writeMessage(w, http.StatusInternalServerError, "error logging in")
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{Token: token, Message: "login successful"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, MessageResponse{Message: message})
}
