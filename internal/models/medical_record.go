package models

// MedicalRecord represents a row of the medical_records table.
type MedicalRecord struct {
	TreatmentID      int64  `json:"treatment_id" db:"treatment_id"`
	PetID            int64  `json:"pet_id" db:"pet_id"`
	TreatmentDate    string `json:"treatment_date" db:"treatment_date"`
	TreatmentDetails string `json:"treatment_details" db:"treatment_details"`
	Veterinarian     string `json:"veterinarian" db:"veterinarian"`
}

// MedicalRecordInput carries the writable medical record columns after validation.
// PetID is ignored on update.
type MedicalRecordInput struct {
	PetID            int64
	TreatmentDate    string
	TreatmentDetails string
	Veterinarian     string
}
