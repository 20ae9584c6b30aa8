package models

// Pet represents a row of the pets table.
// Adopted and DateAdopted are read-only: no handler writes them.
type Pet struct {
	PetID       int64   `json:"pet_id" db:"pet_id"`
	Name        string  `json:"name" db:"name"`
	SpeciesID   int64   `json:"species_id" db:"species_id"`
	BreedName   string  `json:"breed_name" db:"breed_name"`
	Age         int64   `json:"age" db:"age"`
	Color       string  `json:"color" db:"color"`
	Gender      string  `json:"gender" db:"gender"`
	Adopted     bool    `json:"adopted" db:"adopted"`
	DateArrived string  `json:"date_arrived" db:"date_arrived"`
	DateAdopted *string `json:"date_adopted" db:"date_adopted"`
}

// PetInput carries the writable pet columns. Nil fields are written as NULL,
// which lets the store reject incomplete rows.
type PetInput struct {
	Name        *string `json:"name"`
	SpeciesID   *int64  `json:"species_id"`
	BreedName   *string `json:"breed_name"`
	Age         *int64  `json:"age"`
	Color       *string `json:"color"`
	Gender      *string `json:"gender"`
	DateArrived *string `json:"date_arrived"`
}
