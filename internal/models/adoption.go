package models

// Adoption represents a row of the adoptions table.
type Adoption struct {
	AdoptionID   int64   `json:"adoption_id" db:"adoption_id"`
	PetID        int64   `json:"pet_id" db:"pet_id"`
	FirstName    string  `json:"first_name" db:"first_name"`
	LastName     string  `json:"last_name" db:"last_name"`
	Address      *string `json:"address" db:"address"`
	Email        *string `json:"email" db:"email"`
	Phone        *string `json:"phone" db:"phone"`
	AdoptionDate string  `json:"adoption_date" db:"adoption_date"`
	DateReturned *string `json:"date_returned" db:"date_returned"`
}

// AdoptionInput carries the writable adoption columns after validation.
type AdoptionInput struct {
	PetID        int64
	FirstName    string
	LastName     string
	Address      *string
	Email        *string
	Phone        *string
	AdoptionDate *string
	DateReturned *string
}
