// Package users implements user persistence against PostgreSQL.
package users

import (
	"context"
	"fmt"

	"github.com/ymatsuzawa/foodkeeper/internal/common"
	"github.com/ymatsuzawa/foodkeeper/internal/dbx"
	"github.com/ymatsuzawa/foodkeeper/internal/server/models"
	"github.com/ymatsuzawa/foodkeeper/internal/server/repositories"
	"github.com/ymatsuzawa/foodkeeper/internal/sqlerr"
)

// Repository is the capability set the user entity supports. Reads return
// the redacted PubUserInfo, never the full row: the mail address and the
// password hash do not leave this package. Users deliberately expose no
// AllReader; nothing enumerates accounts by an owner key.
type Repository interface {
	repositories.Writer[models.UserID, *models.User, *models.PubUserInfo]
}

// PostgresRepository implements user storage over a dbx.DBTX
// (*sql.DB or *sql.Tx). The handle is provisioned by the caller.
type PostgresRepository struct {
	db dbx.DBTX
}

var _ Repository = (*PostgresRepository)(nil)

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Read returns the redacted projection of the user with the given id.
func (r *PostgresRepository) Read(ctx context.Context, id models.UserID) (*models.PubUserInfo, error) {
	query := `
		SELECT user_id, user_name
		FROM user_table
		WHERE user_id = $1
	`
	info := &models.PubUserInfo{}
	if err := r.db.QueryRowContext(ctx, query, id.String()).Scan(&info.UserID, &info.UserName); err != nil {
		return nil, sqlerr.Classify(err)
	}
	return info, nil
}

// Insert stores the user and reads the row back, so the returned value is
// the authoritative stored state.
func (r *PostgresRepository) Insert(ctx context.Context, user *models.User) (*models.PubUserInfo, error) {
	query := `
		INSERT INTO user_table (user_id, user_name, mail, password)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := r.db.ExecContext(ctx, query,
		user.UserID.String(), user.UserName.String(), user.Mail.String(), user.Password.String()); err != nil {
		return nil, sqlerr.Classify(err)
	}
	return r.Read(ctx, user.UserID)
}

// Update replaces all mutable fields of the row identified by id. The id
// itself is immutable. Updating an absent row reports ErrNotFound.
func (r *PostgresRepository) Update(ctx context.Context, id models.UserID, user *models.User) (*models.PubUserInfo, error) {
	query := `
		UPDATE user_table
		SET user_name = $1, mail = $2, password = $3
		WHERE user_id = $4
	`
	res, err := r.db.ExecContext(ctx, query,
		user.UserName.String(), user.Mail.String(), user.Password.String(), id.String())
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

// Delete removes the row. All further reads for the id fail with
// ErrNotFound, as does deleting an already absent row.
func (r *PostgresRepository) Delete(ctx context.Context, id models.UserID) error {
	query := `
		DELETE FROM user_table
		WHERE user_id = $1
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
