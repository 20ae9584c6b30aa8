package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/animal-shelter/internal/models"
)

// SpeciesRepository reads and writes the species table.
type SpeciesRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewSpeciesRepository(db *sqlx.DB, txGetter TxGetter) *SpeciesRepository {
	return &SpeciesRepository{db: db, txGetter: txGetter}
}

// List returns every species ordered by id.
func (r *SpeciesRepository) List(ctx context.Context) ([]models.Species, error) {
	const query = `SELECT species_id, species_name FROM species ORDER BY species_id`

	species := []models.Species{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &species, query)

	logQuery(query, nil, len(species), err)

	if err != nil {
		return nil, err
	}
	return species, nil
}

// Save inserts a species and returns the generated id.
func (r *SpeciesRepository) Save(ctx context.Context, name string) (int64, error) {
	const query = `INSERT INTO species (species_name) VALUES (?) RETURNING species_id`
	return insertReturningID(ctx, executor(ctx, r.db, r.txGetter), query, name)
}

// Update renames a species and returns the number of affected rows.
func (r *SpeciesRepository) Update(ctx context.Context, id int64, name string) (int64, error) {
	const query = `UPDATE species SET species_name = ? WHERE species_id = ?`
	return execAffected(ctx, executor(ctx, r.db, r.txGetter), query, name, id)
}

// Delete removes a species and returns the number of affected rows.
func (r *SpeciesRepository) Delete(ctx context.Context, id int64) (int64, error) {
	const query = `DELETE FROM species WHERE species_id = ?`
	return execAffected(ctx, executor(ctx, r.db, r.txGetter), query, id)
}
