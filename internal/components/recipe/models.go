package recipe

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/google/uuid"
)

type (
	Recipe struct {
		ID           uuid.UUID `json:"id"`
		Title        string    `json:"title"`
		Ingredients  string    `json:"ingredients"`
		Instructions string    `json:"instructions"`
		Category     string    `json:"category"`
		ImagePath    *string   `json:"image,omitempty"`
		OwnerID      uuid.UUID `json:"owner_id"`
		OwnerName    string    `json:"owner_username,omitempty"`
		CreatedAt    time.Time `json:"created_at"`
		UpdatedAt    time.Time `json:"updated_at"`
	}

	// RecipeForm carries the multipart fields of create and update
	// requests. ImagePath is set by the router once the uploaded file has
	// been stored; nil means the request carried no image.
	RecipeForm struct {
		Title        string
		Ingredients  string
		Instructions string
		Category     string
		ImagePath    *string
	}

	MessageResponse struct {
		Message string `json:"message"`
	}
)

func (f RecipeForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&f.Ingredients, validation.Required),
		validation.Field(&f.Instructions, validation.Required),
		validation.Field(&f.Category, validation.Required, validation.Length(1, 100)),
	)
}
