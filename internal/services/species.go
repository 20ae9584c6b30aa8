package services

import (
	"context"

	"github.com/sbilibin2017/animal-shelter/internal/logger"
	"github.com/sbilibin2017/animal-shelter/internal/models"
)

//go:generate mockgen -source=species.go -destination=species_mock.go -package=services

// SpeciesReader lists species.
type SpeciesReader interface {
	List(ctx context.Context) ([]models.Species, error)
}

// SpeciesWriter writes species. Update and Delete return the affected row count.
type SpeciesWriter interface {
	Save(ctx context.Context, name string) (int64, error)
	Update(ctx context.Context, id int64, name string) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// SpeciesService handles species CRUD.
type SpeciesService struct {
	reader    SpeciesReader
	writer    SpeciesWriter
	publisher *ChangePublisher
}

// NewSpeciesService creates a new SpeciesService.
func NewSpeciesService(reader SpeciesReader, writer SpeciesWriter, publisher *ChangePublisher) *SpeciesService {
	return &SpeciesService{reader: reader, writer: writer, publisher: publisher}
}

func (s *SpeciesService) List(ctx context.Context) ([]models.Species, error) {
	species, err := s.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list species", "error", err)
		return nil, err
	}
	return species, nil
}

// Create stores a species and returns it with its generated id.
func (s *SpeciesService) Create(ctx context.Context, name string) (models.Species, error) {
	id, err := s.writer.Save(ctx, name)
	if err != nil {
		logger.Log.Errorw("failed to save species", "name", name, "error", err)
		return models.Species{}, err
	}
	s.publisher.Publish(ctx, models.ResourceSpecies, models.OperationCreate, id)
	return models.Species{SpeciesID: id, SpeciesName: name}, nil
}

func (s *SpeciesService) Update(ctx context.Context, id int64, name string) error {
	if err := affected(s.writer.Update(ctx, id, name)); err != nil {
		logger.Log.Errorw("failed to update species", "species_id", id, "error", err)
		return err
	}
	s.publisher.Publish(ctx, models.ResourceSpecies, models.OperationUpdate, id)
	return nil
}

func (s *SpeciesService) Delete(ctx context.Context, id int64) error {
	if err := affected(s.writer.Delete(ctx, id)); err != nil {
		logger.Log.Errorw("failed to delete species", "species_id", id, "error", err)
		return err
	}
	s.publisher.Publish(ctx, models.ResourceSpecies, models.OperationDelete, id)
	return nil
}
