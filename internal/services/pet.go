package services

import (
	"context"

	"github.com/sbilibin2017/animal-shelter/internal/logger"
	"github.com/sbilibin2017/animal-shelter/internal/models"
)

//go:generate mockgen -source=pet.go -destination=pet_mock.go -package=services

// PetReader lists pets.
type PetReader interface {
	List(ctx context.Context) ([]models.Pet, error)
}

// PetWriter writes pets. Update and Delete return the affected row count.
type PetWriter interface {
	Save(ctx context.Context, in models.PetInput) (int64, error)
	Update(ctx context.Context, id int64, in models.PetInput) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// PetService handles pet CRUD.
type PetService struct {
	reader    PetReader
	writer    PetWriter
	publisher *ChangePublisher
}

// NewPetService creates a new PetService.
func NewPetService(reader PetReader, writer PetWriter, publisher *ChangePublisher) *PetService {
	return &PetService{reader: reader, writer: writer, publisher: publisher}
}

func (s *PetService) List(ctx context.Context) ([]models.Pet, error) {
	pets, err := s.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list pets", "error", err)
		return nil, err
	}
	return pets, nil
}

// Create stores a pet and returns its generated id.
func (s *PetService) Create(ctx context.Context, in models.PetInput) (int64, error) {
	id, err := s.writer.Save(ctx, in)
	if err != nil {
		logger.Log.Errorw("failed to save pet", "error", err)
		return 0, err
	}
	s.publisher.Publish(ctx, models.ResourcePet, models.OperationCreate, id)
	return id, nil
}

func (s *PetService) Update(ctx context.Context, id int64, in models.PetInput) error {
	if err := affected(s.writer.Update(ctx, id, in)); err != nil {
		logger.Log.Errorw("failed to update pet", "pet_id", id, "error", err)
		return err
	}
	s.publisher.Publish(ctx, models.ResourcePet, models.OperationUpdate, id)
	return nil
}

func (s *PetService) Delete(ctx context.Context, id int64) error {
	if err := affected(s.writer.Delete(ctx, id)); err != nil {
		logger.Log.Errorw("failed to delete pet", "pet_id", id, "error", err)
		return err
	}
	s.publisher.Publish(ctx, models.ResourcePet, models.OperationDelete, id)
	return nil
}
