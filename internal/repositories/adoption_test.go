package repositories

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sbilibin2017/animal-shelter/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdoptionRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAdoptionRepository(db, nil)

	cols := []string{"adoption_id", "pet_id", "first_name", "last_name", "address", "email", "phone", "adoption_date", "date_returned"}
	mock.ExpectQuery(`SELECT adoption_id, pet_id`).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(1, 5, "Ann", "Lee", "Main st", nil, nil, "2024-04-01", nil))

	adoptions, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, adoptions, 1)
	assert.Equal(t, "Ann", adoptions[0].FirstName)
	assert.Equal(t, "Main st", *adoptions[0].Address)
	assert.Nil(t, adoptions[0].Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdoptionRepository_SaveUpdateDelete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAdoptionRepository(db, nil)

	in := models.AdoptionInput{
		PetID:        5,
		FirstName:    "Ann",
		LastName:     "Lee",
		Email:        strPtr("ann@example.com"),
		AdoptionDate: strPtr("2024-04-01"),
	}

	mock.ExpectQuery(`INSERT INTO adoptions`).
		WithArgs(5, "Ann", "Lee", nil, "ann@example.com", nil, "2024-04-01", nil).
		WillReturnRows(sqlmock.NewRows([]string{"adoption_id"}).AddRow(3))
	mock.ExpectExec(`UPDATE adoptions`).
		WithArgs("Ann", "Lee", nil, "ann@example.com", nil, "2024-04-01", nil, 3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM adoptions WHERE adoption_id = \?`).
		WithArgs(3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	id, err := repo.Save(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)

	rows, err := repo.Update(context.Background(), 3, in)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	rows, err = repo.Delete(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	assert.NoError(t, mock.ExpectationsWereMet())
}
