package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/animal-shelter/internal/models"
)

// AdoptionRepository reads and writes the adoptions table.
type AdoptionRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewAdoptionRepository(db *sqlx.DB, txGetter TxGetter) *AdoptionRepository {
	return &AdoptionRepository{db: db, txGetter: txGetter}
}

func (r *AdoptionRepository) List(ctx context.Context) ([]models.Adoption, error) {
	const query = `
		SELECT adoption_id, pet_id, first_name, last_name, address, email, phone,
		       CAST(adoption_date AS TEXT) AS adoption_date,
		       CAST(date_returned AS TEXT) AS date_returned
		FROM adoptions
		ORDER BY adoption_id
	`

	adoptions := []models.Adoption{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &adoptions, query)

	logQuery(query, nil, len(adoptions), err)

	if err != nil {
		return nil, err
	}
	return adoptions, nil
}

func (r *AdoptionRepository) Save(ctx context.Context, in models.AdoptionInput) (int64, error) {
	const query = `
		INSERT INTO adoptions (pet_id, first_name, last_name, address, email, phone, adoption_date, date_returned)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING adoption_id
	`
	return insertReturningID(ctx, executor(ctx, r.db, r.txGetter), query,
		in.PetID, in.FirstName, in.LastName, in.Address, in.Email, in.Phone, in.AdoptionDate, in.DateReturned)
}

// Update replaces the adopter columns. An omitted adoption date keeps the stored one.
func (r *AdoptionRepository) Update(ctx context.Context, id int64, in models.AdoptionInput) (int64, error) {
	const query = `
		UPDATE adoptions
		SET first_name = ?, last_name = ?, address = ?, email = ?, phone = ?,
		    adoption_date = COALESCE(?, adoption_date), date_returned = ?
		WHERE adoption_id = ?
	`
	return execAffected(ctx, executor(ctx, r.db, r.txGetter), query,
		in.FirstName, in.LastName, in.Address, in.Email, in.Phone, in.AdoptionDate, in.DateReturned, id)
}

func (r *AdoptionRepository) Delete(ctx context.Context, id int64) (int64, error) {
	const query = `DELETE FROM adoptions WHERE adoption_id = ?`
	return execAffected(ctx, executor(ctx, r.db, r.txGetter), query, id)
}
