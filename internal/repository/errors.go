package repository

import (
	"errors"
	"fmt"
	"strings"

	"aratrack/internal/apierror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// storeErr translates driver errors into the domain taxonomy so nothing
// above the repository layer depends on SQL or driver types.
func storeErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, apierror.ErrNotFound) || errors.Is(err, apierror.ErrDuplicateKey) ||
		errors.Is(err, apierror.ErrValidation) || errors.Is(err, apierror.ErrStore) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apierror.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apierror.ErrDuplicateKey
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return apierror.ErrDuplicateKey
		case "55P03", "40P01": // lock_not_available, deadlock_detected
			return fmt.Errorf("%w (%s)", apierror.ErrBusy, pgErr.Message)
		}
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return apierror.ErrDuplicateKey
	case strings.Contains(msg, "database is locked"), strings.Contains(msg, "SQLITE_BUSY"):
		return fmt.Errorf("%w (%s)", apierror.ErrBusy, msg)
	}
	return fmt.Errorf("%w: %v", apierror.ErrStore, err)
}
