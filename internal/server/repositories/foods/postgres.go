// Package foods implements food-item persistence against PostgreSQL.
package foods

import (
	"context"
	"fmt"

	"github.com/ymatsuzawa/foodkeeper/internal/common"
	"github.com/ymatsuzawa/foodkeeper/internal/dbx"
	"github.com/ymatsuzawa/foodkeeper/internal/server/models"
	"github.com/ymatsuzawa/foodkeeper/internal/server/repositories"
	"github.com/ymatsuzawa/foodkeeper/internal/sqlerr"
)

// Repository is the capability set the food entity supports: full writes,
// reads by FoodID, and owner-scoped reads keyed by the owning UserID.
type Repository interface {
	repositories.Writer[models.FoodID, *models.Food, *models.Food]
	repositories.AllReader[models.UserID, *models.AllFoods]
}

// PostgresRepository implements food storage over a dbx.DBTX
// (*sql.DB or *sql.Tx). The handle is provisioned by the caller.
type PostgresRepository struct {
	db dbx.DBTX
}

var _ Repository = (*PostgresRepository)(nil)

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Read returns the food item with the given id.
func (r *PostgresRepository) Read(ctx context.Context, id models.FoodID) (*models.Food, error) {
	query := `
		SELECT food_id, food_name, exp, user_id
		FROM food_table
		WHERE food_id = $1
	`
	food := &models.Food{}
	if err := r.db.QueryRowContext(ctx, query, id.String()).
		Scan(&food.FoodID, &food.FoodName, &food.Exp, &food.UserID); err != nil {
		return nil, sqlerr.Classify(err)
	}
	return food, nil
}

// ReadAll returns every food item owned by ownerID, in storage order.
// An owner without items gets an empty collection, not an error.
func (r *PostgresRepository) ReadAll(ctx context.Context, ownerID models.UserID) (*models.AllFoods, error) {
	query := `
		SELECT food_id, food_name, exp, user_id
		FROM food_table
		WHERE user_id = $1
	`
	rows, err := r.db.QueryContext(ctx, query, ownerID.String())
	if err != nil {
		return nil, sqlerr.Classify(err)
	}
	defer rows.Close()

	foods := make([]*models.Food, 0)
	for rows.Next() {
		food := &models.Food{}
		if err := rows.Scan(&food.FoodID, &food.FoodName, &food.Exp, &food.UserID); err != nil {
			return nil, sqlerr.Classify(err)
		}
		foods = append(foods, food)
	}
	if err := rows.Err(); err != nil {
		return nil, sqlerr.Classify(err)
	}
	return &models.AllFoods{Foods: foods}, nil
}

// Insert stores the item and reads the row back, so the returned value is
// the authoritative stored state.
func (r *PostgresRepository) Insert(ctx context.Context, food *models.Food) (*models.Food, error) {
	query := `
		INSERT INTO food_table (food_id, food_name, exp, user_id)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := r.db.ExecContext(ctx, query,
		food.FoodID.String(), food.FoodName.String(), food.Exp, food.UserID.String()); err != nil {
		return nil, sqlerr.Classify(err)
	}
	return r.Read(ctx, food.FoodID)
}

// Update replaces the mutable fields (name and expiry) of the row
// identified by id. Ownership and the id itself are immutable.
func (r *PostgresRepository) Update(ctx context.Context, id models.FoodID, food *models.Food) (*models.Food, error) {
	query := `
		UPDATE food_table
		SET food_name = $1, exp = $2
		WHERE food_id = $3
	`
	res, err := r.db.ExecContext(ctx, query, food.FoodName.String(), food.Exp, id.String())
	if err != nil {
		return nil, sqlerr.Classify(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return nil, common.ErrNotFound
	}
	return r.Read(ctx, id)
}

// Delete removes the row. Deleting an absent row reports ErrNotFound.
func (r *PostgresRepository) Delete(ctx context.Context, id models.FoodID) error {
	query := `
		DELETE FROM food_table
		WHERE food_id = $1
	`
	res, err := r.db.ExecContext(ctx, query, id.String())
	if err != nil {
		return sqlerr.Classify(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}
