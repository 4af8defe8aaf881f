package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation detecta la violación de un índice único (SQLSTATE 23505).
// Los repositorios la traducen a domain.ErrDuplicate: código de producto o
// nombre de categoría ya registrados.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
