package recipe

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/hlog"

	"github.com/recipebook-dev/recipebook/internal/shared/config"
	"github.com/recipebook-dev/recipebook/internal/shared/middleware"
	"github.com/recipebook-dev/recipebook/internal/shared/upload"
)

// maxUploadSize bounds the in-memory portion of multipart parsing.
const maxUploadSize = 32 << 20

type (
	Router struct {
		service       servicer
		uploads       upload.Store
		authGate      func(http.Handler) http.Handler
		publicListing bool
	}
)

func NewRouter(service servicer, uploads upload.Store, authGate func(http.Handler) http.Handler, cfg *config.Config) chi.Router {
	router := &Router{
		service:       service,
		uploads:       uploads,
		authGate:      authGate,
		publicListing: cfg.PublicListing,
	}
	return router.Routes()
}

func (r *Router) Routes() chi.Router {
	router := chi.NewRouter()

	if r.publicListing {
		router.Get("/", r.ListRecipes)
		router.Get("/category/{category}", r.ListByCategory)
	}

	// Mutations always sit behind the auth gate; listing joins them when
	// PUBLIC_LISTING is off.
	router.Group(func(protected chi.Router) {
		protected.Use(r.authGate)
		if !r.publicListing {
			protected.Get("/", r.ListRecipes)
			protected.Get("/category/{category}", r.ListByCategory)
		}
		protected.Post("/", r.CreateRecipe)
		protected.Put("/{id}", r.UpdateRecipe)
		protected.Delete("/{id}", r.DeleteRecipe)
	})

	return router
}

func (r *Router) ListRecipes(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	logger := hlog.FromRequest(req)

	recipes, err := r.service.ListRecipes(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error fetching recipes")
		writeMessage(w, http.StatusInternalServerError, "error fetching recipes")
		return
	}

	if recipes == nil {
		recipes = []Recipe{}
	}
	writeJSON(w, http.StatusOK, recipes)
}

func (r *Router) ListByCategory(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	logger := hlog.FromRequest(req)

	category := chi.URLParam(req, "category")
	recipes, err := r.service.ListByCategory(ctx, category)
	if err != nil {
		logger.Error().Err(err).Str("category", category).Msg("Error fetching recipes by category")
		writeMessage(w, http.StatusInternalServerError, "error fetching recipes")
		return
	}

	if recipes == nil {
		recipes = []Recipe{}
	}
	writeJSON(w, http.StatusOK, recipes)
}

func (r *Router) CreateRecipe(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	logger := hlog.FromRequest(req)

	userID := middleware.GetUserID(ctx)

	form, ok := r.parseForm(w, req)
	if !ok {
		return
	}

	if _, err := r.service.CreateRecipe(ctx, userID, *form); err != nil {
		logger.Error().Err(err).Msg("Error adding recipe")
		writeMessage(w, http.StatusInternalServerError, "error adding recipe")
		return
	}

	writeMessage(w, http.StatusCreated, "recipe added successfully")
}

func (r *Router) UpdateRecipe(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	logger := hlog.FromRequest(req)

	userID := middleware.GetUserID(ctx)

	id, err := uuid.Parse(chi.URLParam(req, "id"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid recipe id")
		return
	}

	form, ok := r.parseForm(w, req)
	if !ok {
		return
	}

	if _, err := r.service.UpdateRecipe(ctx, userID, id, *form); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			writeMessage(w, http.StatusNotFound, "recipe not found")
		case errors.Is(err, ErrNotOwner):
			writeMessage(w, http.StatusForbidden, "not authorized")
		default:
			logger.Error().Err(err).Str("id", id.String()).Msg("Error updating recipe")
			writeMessage(w, http.StatusInternalServerError, "error updating recipe")
		}
		return
	}

	writeMessage(w, http.StatusOK, "recipe updated successfully")
}

func (r *Router) DeleteRecipe(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	logger := hlog.FromRequest(req)

	userID := middleware.GetUserID(ctx)

	id, err := uuid.Parse(chi.URLParam(req, "id"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid recipe id")
		return
	}

	if err := r.service.DeleteRecipe(ctx, userID, id); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			writeMessage(w, http.StatusNotFound, "recipe not found")
		case errors.Is(err, ErrNotOwner):
			writeMessage(w, http.StatusForbidden, "not authorized")
		default:
			logger.Error().Err(err).Str("id", id.String()).Msg("Error deleting recipe")
			writeMessage(w, http.StatusInternalServerError, "error deleting recipe")
		}
		return
	}

	writeMessage(w, http.StatusOK, "recipe removed successfully")
}

// parseForm reads the multipart payload, stores an attached image if one is
// present, and validates the resulting form. It writes the error response
// itself and returns ok=false when the request is bad.
func (r *Router) parseForm(w http.ResponseWriter, req *http.Request) (*RecipeForm, bool) {
	logger := hlog.FromRequest(req)

	if err := req.ParseMultipartForm(maxUploadSize); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid form data")
		return nil, false
	}

	form := &RecipeForm{
		Title:        req.FormValue("title"),
		Ingredients:  req.FormValue("ingredients"),
		Instructions: req.FormValue("instructions"),
		Category:     req.FormValue("category"),
	}

	// Validate the text fields before touching the upload so a rejected
	// request never leaves a stored file behind.
	if err := form.Validate(); err != nil {
		logger.Debug().Err(err).Msg("Recipe payload rejected")
		writeMessage(w, http.StatusBadRequest, err.Error())
		return nil, false
	}

	file, header, err := req.FormFile("image")
	switch {
	case err == nil:
		defer file.Close()
		path, err := r.uploads.Save(header.Filename, file)
		if err != nil {
			logger.Error().Err(err).Msg("Error storing uploaded image")
			writeMessage(w, http.StatusInternalServerError, "error storing image")
			return nil, false
		}
		form.ImagePath = &path
	case errors.Is(err, http.ErrMissingFile):
		// Image is optional.
	default:
		writeMessage(w, http.StatusBadRequest, "invalid image upload")
		return nil, false
	}

	return form, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, MessageResponse{Message: message})
}
