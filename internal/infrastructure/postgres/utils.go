package postgres

import (
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jortegav/retailos-api/internal/domain"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// mapUniqueViolation traduce una violación de constraint único al error de
// dominio correspondiente según el índice nombrado. Devuelve nil si el error
// no es un 23505.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return nil
	}
	switch pgErr.ConstraintName {
	case "products_user_name_key":
		return domain.ErrDuplicateName
	case "products_sku_key":
		return domain.ErrDuplicateSKU
	case "users_email_key":
		return domain.ErrEmailAlreadyExists
	}
	return domain.ErrConflict
}

// nullableTime convierte el zero value de time.Time a NULL.
func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
