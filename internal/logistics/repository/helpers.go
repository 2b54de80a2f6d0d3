package repository

import (
	"database/sql"

	apperrors "github.com/cargoconnect/api/internal/errors"
)

// requireRowAffected returns notFound when an UPDATE matched no rows.
func requireRowAffected(result sql.Result, notFound error) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to read affected rows")
	}
	if rows == 0 {
		return notFound
	}
	return nil
}
