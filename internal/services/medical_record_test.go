package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/animal-shelter/internal/models"
	"github.com/sbilibin2017/animal-shelter/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMedicalRecordService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := services.NewMockMedicalRecordReader(ctrl)
	writer := services.NewMockMedicalRecordWriter(ctrl)
	kafka := services.NewMockKafkaWriter(ctrl)
	svc := services.NewMedicalRecordService(reader, writer, services.NewChangePublisher(kafka))

	ctx := context.Background()
	in := models.MedicalRecordInput{
		PetID:            2,
		TreatmentDate:    "2024-05-05",
		TreatmentDetails: "Vaccination",
		Veterinarian:     "Dr. Who",
	}

	t.Run("list error", func(t *testing.T) {
		reader.EXPECT().List(ctx).Return(nil, errors.New("db error"))
		_, err := svc.List(ctx)
		assert.EqualError(t, err, "db error")
	})

	t.Run("create", func(t *testing.T) {
		writer.EXPECT().Save(ctx, in).Return(int64(11), nil)
		kafka.EXPECT().WriteMessages(ctx, gomock.Any()).Return(errors.New("broker down"))
		id, err := svc.Create(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, int64(11), id)
	})

	t.Run("update", func(t *testing.T) {
		writer.EXPECT().Update(ctx, int64(11), in).Return(int64(1), nil)
		kafka.EXPECT().WriteMessages(ctx, gomock.Any()).Return(nil)
		assert.NoError(t, svc.Update(ctx, 11, in))
	})

	t.Run("delete missing", func(t *testing.T) {
		writer.EXPECT().Delete(ctx, int64(12)).Return(int64(0), nil)
		assert.ErrorIs(t, svc.Delete(ctx, 12), services.ErrNotFound)
	})
}
