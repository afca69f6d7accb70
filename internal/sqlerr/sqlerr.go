// Package sqlerr translates driver-level errors into the domain sentinels
// defined in common. Repositories call Classify instead of inspecting
// SQLSTATEs themselves, so the mapping lives in exactly one place.
package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ymatsuzawa/foodkeeper/internal/common"
)

// SQLSTATE class 23 covers integrity constraint violations (unique,
// foreign key, not null).
const integrityViolationClass = "23"

// Classify maps err onto one of the common sentinels:
//
//   - sql.ErrNoRows                -> common.ErrNotFound
//   - SQLSTATE class 23            -> common.ErrConflict
//   - anything else (connection,
//     timeout, syntax, ...)        -> common.ErrUnavailable
//
// The original driver error stays visible in the message but callers are
// expected to branch with errors.Is on the sentinel only.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return common.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, integrityViolationClass) {
		return fmt.Errorf("%w: %s (%s)", common.ErrConflict, pgErr.Message, pgErr.Code)
	}
	return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
}
