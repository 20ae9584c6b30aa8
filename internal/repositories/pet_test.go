package repositories

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sbilibin2017/animal-shelter/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func int64Ptr(i int64) *int64 { return &i }

func TestPetRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPetRepository(db, nil)

	cols := []string{"pet_id", "name", "species_id", "breed_name", "age", "color", "gender", "adopted", "date_arrived", "date_adopted"}
	mock.ExpectQuery(`SELECT pet_id, name, species_id`).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(1, "Rex", 1, "Beagle", 3, "brown", "male", false, "2024-01-10", nil).
			AddRow(2, "Tom", 2, "Siamese", 5, "white", "male", true, "2023-05-02", "2024-02-01"))

	pets, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, pets, 2)
	assert.Equal(t, "Rex", pets[0].Name)
	assert.Nil(t, pets[0].DateAdopted)
	assert.True(t, pets[1].Adopted)
	assert.Equal(t, "2024-02-01", *pets[1].DateAdopted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPetRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPetRepository(db, nil)

	in := models.PetInput{
		Name:        strPtr("Rex"),
		SpeciesID:   int64Ptr(1),
		BreedName:   strPtr("Beagle"),
		Age:         int64Ptr(3),
		Color:       strPtr("brown"),
		Gender:      strPtr("male"),
		DateArrived: strPtr("2024-01-10"),
	}

	mock.ExpectQuery(`INSERT INTO pets`).
		WithArgs("Rex", 1, "Beagle", 3, "brown", "male", "2024-01-10").
		WillReturnRows(sqlmock.NewRows([]string{"pet_id"}).AddRow(11))

	id, err := repo.Save(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, int64(11), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPetRepository_SaveSendsNullForMissingFields(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPetRepository(db, nil)

	mock.ExpectQuery(`INSERT INTO pets`).
		WithArgs("Rex", nil, nil, nil, nil, nil, nil).
		WillReturnError(assert.AnError)

	_, err := repo.Save(context.Background(), models.PetInput{Name: strPtr("Rex")})
	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPetRepository_UpdateDelete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPetRepository(db, nil)

	in := models.PetInput{
		Name:      strPtr("Rex"),
		SpeciesID: int64Ptr(1),
		BreedName: strPtr("Beagle"),
		Age:       int64Ptr(4),
		Color:     strPtr("brown"),
		Gender:    strPtr("male"),
	}

	mock.ExpectExec(`UPDATE pets`).
		WithArgs("Rex", 1, "Beagle", 4, "brown", "male", 11).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM pets WHERE pet_id = \?`).
		WithArgs(12).
		WillReturnResult(sqlmock.NewResult(0, 0))

	rows, err := repo.Update(context.Background(), 11, in)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	rows, err = repo.Delete(context.Background(), 12)
	require.NoError(t, err)
	assert.Equal(t, int64(0), rows)

	assert.NoError(t, mock.ExpectationsWereMet())
}
