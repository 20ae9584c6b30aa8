package services

import (
	"context"

	"github.com/sbilibin2017/animal-shelter/internal/logger"
	"github.com/sbilibin2017/animal-shelter/internal/models"
)

//go:generate mockgen -source=adoption.go -destination=adoption_mock.go -package=services

// AdoptionReader lists adoptions.
type AdoptionReader interface {
	List(ctx context.Context) ([]models.Adoption, error)
}

// AdoptionWriter writes adoptions. Update and Delete return the affected row count.
type AdoptionWriter interface {
	Save(ctx context.Context, in models.AdoptionInput) (int64, error)
	Update(ctx context.Context, id int64, in models.AdoptionInput) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// AdoptionService handles adoption CRUD.
type AdoptionService struct {
	reader    AdoptionReader
	writer    AdoptionWriter
	publisher *ChangePublisher
}

// NewAdoptionService creates a new AdoptionService.
func NewAdoptionService(reader AdoptionReader, writer AdoptionWriter, publisher *ChangePublisher) *AdoptionService {
	return &AdoptionService{reader: reader, writer: writer, publisher: publisher}
}

func (s *AdoptionService) List(ctx context.Context) ([]models.Adoption, error) {
	adoptions, err := s.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list adoptions", "error", err)
		return nil, err
	}
	return adoptions, nil
}

// Create stores an adoption and returns its generated id. The pet is not
// checked for existence and its adopted flag is left as is.
func (s *AdoptionService) Create(ctx context.Context, in models.AdoptionInput) (int64, error) {
	id, err := s.writer.Save(ctx, in)
	if err != nil {
		logger.Log.Errorw("failed to save adoption", "pet_id", in.PetID, "error", err)
		return 0, err
	}
	s.publisher.Publish(ctx, models.ResourceAdoption, models.OperationCreate, id)
	return id, nil
}

func (s *AdoptionService) Update(ctx context.Context, id int64, in models.AdoptionInput) error {
	if err := affected(s.writer.Update(ctx, id, in)); err != nil {
		logger.Log.Errorw("failed to update adoption", "adoption_id", id, "error", err)
		return err
	}
	s.publisher.Publish(ctx, models.ResourceAdoption, models.OperationUpdate, id)
	return nil
}

func (s *AdoptionService) Delete(ctx context.Context, id int64) error {
	if err := affected(s.writer.Delete(ctx, id)); err != nil {
		logger.Log.Errorw("failed to delete adoption", "adoption_id", id, "error", err)
		return err
	}
	s.publisher.Publish(ctx, models.ResourceAdoption, models.OperationDelete, id)
	return nil
}
