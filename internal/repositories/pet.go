package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/animal-shelter/internal/models"
)

// PetRepository reads and writes the pets table.
type PetRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewPetRepository(db *sqlx.DB, txGetter TxGetter) *PetRepository {
	return &PetRepository{db: db, txGetter: txGetter}
}

// List returns every pet ordered by id. Dates come back as YYYY-MM-DD text.
func (r *PetRepository) List(ctx context.Context) ([]models.Pet, error) {
	const query = `
		SELECT pet_id, name, species_id, breed_name, age, color, gender, adopted,
		       CAST(date_arrived AS TEXT) AS date_arrived,
		       CAST(date_adopted AS TEXT) AS date_adopted
		FROM pets
		ORDER BY pet_id
	`

	pets := []models.Pet{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &pets, query)

	logQuery(query, nil, len(pets), err)

	if err != nil {
		return nil, err
	}
	return pets, nil
}

// Save inserts a pet and returns the generated id. Missing fields are sent as
// NULL and rejected by the table constraints.
func (r *PetRepository) Save(ctx context.Context, in models.PetInput) (int64, error) {
	const query = `
		INSERT INTO pets (name, species_id, breed_name, age, color, gender, date_arrived)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING pet_id
	`
	return insertReturningID(ctx, executor(ctx, r.db, r.txGetter), query,
		in.Name, in.SpeciesID, in.BreedName, in.Age, in.Color, in.Gender, in.DateArrived)
}

// Update replaces the descriptive pet columns and returns the number of affected rows.
// date_arrived and the adoption columns are left untouched.
func (r *PetRepository) Update(ctx context.Context, id int64, in models.PetInput) (int64, error) {
	const query = `
		UPDATE pets
		SET name = ?, species_id = ?, breed_name = ?, age = ?, color = ?, gender = ?
		WHERE pet_id = ?
	`
	return execAffected(ctx, executor(ctx, r.db, r.txGetter), query,
		in.Name, in.SpeciesID, in.BreedName, in.Age, in.Color, in.Gender, id)
}

// Delete removes a pet and returns the number of affected rows.
func (r *PetRepository) Delete(ctx context.Context, id int64) (int64, error) {
	const query = `DELETE FROM pets WHERE pet_id = ?`
	return execAffected(ctx, executor(ctx, r.db, r.txGetter), query, id)
}
