package models

// Species represents a row of the species table.
type Species struct {
	SpeciesID   int64  `json:"species_id" db:"species_id"`
	SpeciesName string `json:"species_name" db:"species_name"`
}
