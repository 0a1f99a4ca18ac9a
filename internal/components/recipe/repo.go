package recipe

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	repoer interface {
		Create(ctx context.Context, recipe *Recipe) error
		List(ctx context.Context) ([]Recipe, error)
		ListByCategory(ctx context.Context, category string) ([]Recipe, error)
		GetByID(ctx context.Context, id uuid.UUID) (*Recipe, error)
		Update(ctx context.Context, recipe *Recipe) error
		Delete(ctx context.Context, id uuid.UUID) error
	}

	repo struct {
		pool *pgxpool.Pool
	}
)

func NewRepo(pool *pgxpool.Pool) repoer {
	return &repo{pool: pool}
}

func (r *repo) Create(ctx context.Context, recipe *Recipe) error {
	stmt := `
	INSERT INTO recipes (
		id, owner_id, title, ingredients, instructions, category, image_path
	)
	VALUES (
		$1, $2, $3, $4, $5, $6, $7
	)
	RETURNING created_at, updated_at`

	return r.pool.QueryRow(
		ctx,
		stmt,
		recipe.ID,
		recipe.OwnerID,
		recipe.Title,
		recipe.Ingredients,
		recipe.Instructions,
		recipe.Category,
		recipe.ImagePath,
	).Scan(&recipe.CreatedAt, &recipe.UpdatedAt)
}

// List returns every recipe joined with its owner's username, newest first.
func (r *repo) List(ctx context.Context) ([]Recipe, error) {
	stmt := `
	SELECT r.id, r.title, r.ingredients, r.instructions, r.category,
	       r.image_path, r.owner_id, u.username, r.created_at, r.updated_at
	FROM recipes r
	JOIN users u ON u.id = r.owner_id
	ORDER BY r.created_at DESC`

	rows, err := r.pool.Query(ctx, stmt)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRecipes(rows)
}

func (r *repo) ListByCategory(ctx context.Context, category string) ([]Recipe, error) {
	stmt := `
	SELECT r.id, r.title, r.ingredients, r.instructions, r.category,
	       r.image_path, r.owner_id, u.username, r.created_at, r.updated_at
	FROM recipes r
	JOIN users u ON u.id = r.owner_id
	WHERE r.category = $1
	ORDER BY r.created_at DESC`

	rows, err := r.pool.Query(ctx, stmt, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRecipes(rows)
}

// GetByID loads a recipe without scoping to an owner; the service needs the
// row regardless of who owns it to tell "not found" apart from "not yours".
func (r *repo) GetByID(ctx context.Context, id uuid.UUID) (*Recipe, error) {
	stmt := `
	SELECT id, title, ingredients, instructions, category,
	       image_path, owner_id, created_at, updated_at
	FROM recipes
	WHERE id = $1`

	var recipe Recipe
	err := r.pool.QueryRow(ctx, stmt, id).Scan(
		&recipe.ID,
		&recipe.Title,
		&recipe.Ingredients,
		&recipe.Instructions,
		&recipe.Category,
		&recipe.ImagePath,
		&recipe.OwnerID,
		&recipe.CreatedAt,
		&recipe.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// Update rewrites the mutable recipe fields. The owner_id column is never
// part of the SET list.
func (r *repo) Update(ctx context.Context, recipe *Recipe) error {
	stmt := `
	UPDATE recipes
	SET title = $2, ingredients = $3, instructions = $4, category = $5,
	    image_path = $6, updated_at = NOW()
	WHERE id = $1
	RETURNING updated_at`

	err := r.pool.QueryRow(
		ctx,
		stmt,
		recipe.ID,
		recipe.Title,
		recipe.Ingredients,
		recipe.Instructions,
		recipe.Category,
		recipe.ImagePath,
	).Scan(&recipe.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	stmt := `DELETE FROM recipes WHERE id = $1`

	result, err := r.pool.Exec(ctx, stmt, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanRecipes(rows pgx.Rows) ([]Recipe, error) {
	var recipes []Recipe
	for rows.Next() {
		var recipe Recipe
		err := rows.Scan(
			&recipe.ID,
			&recipe.Title,
			&recipe.Ingredients,
			&recipe.Instructions,
			&recipe.Category,
			&recipe.ImagePath,
			&recipe.OwnerID,
			&recipe.OwnerName,
			&recipe.CreatedAt,
			&recipe.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, recipe)
	}
	return recipes, rows.Err()
}
