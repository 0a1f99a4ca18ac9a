package recipe

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type (
	servicer interface {
		ListRecipes(ctx context.Context) ([]Recipe, error)
		ListByCategory(ctx context.Context, category string) ([]Recipe, error)
		CreateRecipe(ctx context.Context, ownerID uuid.UUID, form RecipeForm) (*Recipe, error)
		UpdateRecipe(ctx context.Context, userID, id uuid.UUID, form RecipeForm) (*Recipe, error)
		DeleteRecipe(ctx context.Context, userID, id uuid.UUID) error
	}

	service struct {
		repo   repoer
		logger zerolog.Logger
	}
)

func NewService(repo repoer, logger zerolog.Logger) servicer {
	return &service{
		repo:   repo,
		logger: logger.With().Str("component", "recipe").Logger(),
	}
}

func (s *service) ListRecipes(ctx context.Context) ([]Recipe, error) {
	return s.repo.List(ctx)
}

func (s *service) ListByCategory(ctx context.Context, category string) ([]Recipe, error) {
	return s.repo.ListByCategory(ctx, category)
}

// CreateRecipe persists a new recipe owned by the authenticated user. The
// owner is fixed here, at creation, and never reassigned.
func (s *service) CreateRecipe(ctx context.Context, ownerID uuid.UUID, form RecipeForm) (*Recipe, error) {
	recipe := &Recipe{
		ID:           uuid.New(),
		Title:        form.Title,
		Ingredients:  form.Ingredients,
		Instructions: form.Instructions,
		Category:     form.Category,
		ImagePath:    form.ImagePath,
		OwnerID:      ownerID,
	}

	if err := s.repo.Create(ctx, recipe); err != nil {
		return nil, err
	}

	s.logger.Debug().Str("recipe_id", recipe.ID.String()).Str("owner_id", ownerID.String()).Msg("Recipe created")
	return recipe, nil
}

// UpdateRecipe loads the recipe, runs the ownership check against the live
// row, and applies the form. A missing recipe short-circuits with
// ErrNotFound before ownership is even considered; a foreign owner yields
// ErrNotOwner.
func (s *service) UpdateRecipe(ctx context.Context, userID, id uuid.UUID, form RecipeForm) (*Recipe, error) {
	recipe, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !canMutate(recipe, userID) {
		s.logger.Warn().
			Str("recipe_id", id.String()).
			Str("user_id", userID.String()).
			Msg("Update rejected: not the owner")
		return nil, ErrNotOwner
	}

	recipe.Title = form.Title
	recipe.Ingredients = form.Ingredients
	recipe.Instructions = form.Instructions
	recipe.Category = form.Category
	if form.ImagePath != nil {
		recipe.ImagePath = form.ImagePath
	}

	if err := s.repo.Update(ctx, recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}

// DeleteRecipe applies the same not-found-then-ownership sequence as
// UpdateRecipe before removing the row.
func (s *service) DeleteRecipe(ctx context.Context, userID, id uuid.UUID) error {
	recipe, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !canMutate(recipe, userID) {
		s.logger.Warn().
			Str("recipe_id", id.String()).
			Str("user_id", userID.String()).
			Msg("Delete rejected: not the owner")
		return ErrNotOwner
	}

	return s.repo.Delete(ctx, id)
}
