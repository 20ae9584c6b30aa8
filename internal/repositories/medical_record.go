package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/animal-shelter/internal/models"
)

// MedicalRecordRepository reads and writes the medical_records table.
type MedicalRecordRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewMedicalRecordRepository(db *sqlx.DB, txGetter TxGetter) *MedicalRecordRepository {
	return &MedicalRecordRepository{db: db, txGetter: txGetter}
}

func (r *MedicalRecordRepository) List(ctx context.Context) ([]models.MedicalRecord, error) {
	const query = `
		SELECT treatment_id, pet_id, CAST(treatment_date AS TEXT) AS treatment_date,
		       treatment_details, veterinarian
		FROM medical_records
		ORDER BY treatment_id
	`

	records := []models.MedicalRecord{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &records, query)

	logQuery(query, nil, len(records), err)

	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *MedicalRecordRepository) Save(ctx context.Context, in models.MedicalRecordInput) (int64, error) {
	const query = `
		INSERT INTO medical_records (pet_id, treatment_date, treatment_details, veterinarian)
		VALUES (?, ?, ?, ?)
		RETURNING treatment_id
	`
	return insertReturningID(ctx, executor(ctx, r.db, r.txGetter), query,
		in.PetID, in.TreatmentDate, in.TreatmentDetails, in.Veterinarian)
}

// Update replaces the treatment columns; the pet reference is immutable.
func (r *MedicalRecordRepository) Update(ctx context.Context, id int64, in models.MedicalRecordInput) (int64, error) {
	const query = `
		UPDATE medical_records
		SET treatment_date = ?, treatment_details = ?, veterinarian = ?
		WHERE treatment_id = ?
	`
	return execAffected(ctx, executor(ctx, r.db, r.txGetter), query,
		in.TreatmentDate, in.TreatmentDetails, in.Veterinarian, id)
}

func (r *MedicalRecordRepository) Delete(ctx context.Context, id int64) (int64, error) {
	const query = `DELETE FROM medical_records WHERE treatment_id = ?`
	return execAffected(ctx, executor(ctx, r.db, r.txGetter), query, id)
}
