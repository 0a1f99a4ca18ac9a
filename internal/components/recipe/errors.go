package recipe

import "errors"

var (
	// ErrNotFound is returned for unknown recipe ids, including repeat
	// deletes of an already removed recipe.
	ErrNotFound = errors.New("recipe not found")

	// ErrNotOwner is returned when an authenticated user tries to mutate a
	// recipe created by someone else.
	ErrNotOwner = errors.New("not the recipe owner")
)
