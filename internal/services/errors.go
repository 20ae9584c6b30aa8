package services

import "errors"

var (
	// ErrNotFound is returned when an update or delete matches no row.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput is wrapped by errors caused by bad caller input.
	ErrInvalidInput = errors.New("invalid input")
)

// affected maps a zero affected-row count to ErrNotFound.
func affected(rows int64, err error) error {
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
