package services

import (
	"context"

	"github.com/sbilibin2017/animal-shelter/internal/logger"
	"github.com/sbilibin2017/animal-shelter/internal/models"
)

//go:generate mockgen -source=medical_record.go -destination=medical_record_mock.go -package=services

// MedicalRecordReader lists medical records.
type MedicalRecordReader interface {
	List(ctx context.Context) ([]models.MedicalRecord, error)
}

// MedicalRecordWriter writes medical records. Update and Delete return the affected row count.
type MedicalRecordWriter interface {
	Save(ctx context.Context, in models.MedicalRecordInput) (int64, error)
	Update(ctx context.Context, id int64, in models.MedicalRecordInput) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// MedicalRecordService handles medical record CRUD.
type MedicalRecordService struct {
	reader    MedicalRecordReader
	writer    MedicalRecordWriter
	publisher *ChangePublisher
}

// NewMedicalRecordService creates a new MedicalRecordService.
func NewMedicalRecordService(reader MedicalRecordReader, writer MedicalRecordWriter, publisher *ChangePublisher) *MedicalRecordService {
	return &MedicalRecordService{reader: reader, writer: writer, publisher: publisher}
}

func (s *MedicalRecordService) List(ctx context.Context) ([]models.MedicalRecord, error) {
	records, err := s.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list medical records", "error", err)
		return nil, err
	}
	return records, nil
}

func (s *MedicalRecordService) Create(ctx context.Context, in models.MedicalRecordInput) (int64, error) {
	id, err := s.writer.Save(ctx, in)
	if err != nil {
		logger.Log.Errorw("failed to save medical record", "pet_id", in.PetID, "error", err)
		return 0, err
	}
	s.publisher.Publish(ctx, models.ResourceMedicalRecord, models.OperationCreate, id)
	return id, nil
}

func (s *MedicalRecordService) Update(ctx context.Context, id int64, in models.MedicalRecordInput) error {
	if err := affected(s.writer.Update(ctx, id, in)); err != nil {
		logger.Log.Errorw("failed to update medical record", "treatment_id", id, "error", err)
		return err
	}
	s.publisher.Publish(ctx, models.ResourceMedicalRecord, models.OperationUpdate, id)
	return nil
}

func (s *MedicalRecordService) Delete(ctx context.Context, id int64) error {
	if err := affected(s.writer.Delete(ctx, id)); err != nil {
		logger.Log.Errorw("failed to delete medical record", "treatment_id", id, "error", err)
		return err
	}
	s.publisher.Publish(ctx, models.ResourceMedicalRecord, models.OperationDelete, id)
	return nil
}
