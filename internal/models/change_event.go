package models

// Resource kinds reported in change events.
const (
	ResourceSpecies       = "species"
	ResourcePet           = "pet"
	ResourceAdoption      = "adoption"
	ResourceMedicalRecord = "medical_record"
)

// Operations reported in change events.
const (
	OperationCreate = "create"
	OperationUpdate = "update"
	OperationDelete = "delete"
)

// ChangeEvent describes a successful write to one of the shelter resources.
type ChangeEvent struct {
	EventID    string `json:"event_id"`    // EventID is a unique identifier for the event.
	Resource   string `json:"resource"`    // Resource is the kind of record that changed, e.g. "pet".
	Operation  string `json:"operation"`   // Operation is "create", "update" or "delete".
	ResourceID int64  `json:"resource_id"` // ResourceID is the store-generated identifier of the record.
	Timestamp  int64  `json:"timestamp"`   // Timestamp is the Unix time (seconds) of the change.
}
