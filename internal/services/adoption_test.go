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

func TestAdoptionService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := services.NewMockAdoptionReader(ctrl)
	writer := services.NewMockAdoptionWriter(ctrl)
	svc := services.NewAdoptionService(reader, writer, nil)

	ctx := context.Background()
	in := models.AdoptionInput{
		PetID:        1,
		FirstName:    "Ann",
		LastName:     "Lee",
		AdoptionDate: strPtr("2024-03-01"),
	}

	t.Run("list", func(t *testing.T) {
		want := []models.Adoption{{AdoptionID: 1, PetID: 1, FirstName: "Ann", LastName: "Lee", AdoptionDate: "2024-03-01"}}
		reader.EXPECT().List(ctx).Return(want, nil)
		got, err := svc.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("create", func(t *testing.T) {
		writer.EXPECT().Save(ctx, in).Return(int64(4), nil)
		id, err := svc.Create(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, int64(4), id)
	})

	t.Run("update missing", func(t *testing.T) {
		writer.EXPECT().Update(ctx, int64(999), in).Return(int64(0), nil)
		assert.ErrorIs(t, svc.Update(ctx, 999, in), services.ErrNotFound)
	})

	t.Run("delete store error", func(t *testing.T) {
		writer.EXPECT().Delete(ctx, int64(4)).Return(int64(0), errors.New("locked"))
		assert.EqualError(t, svc.Delete(ctx, 4), "locked")
	})

	t.Run("delete", func(t *testing.T) {
		writer.EXPECT().Delete(ctx, int64(4)).Return(int64(1), nil)
		assert.NoError(t, svc.Delete(ctx, 4))
	})
}
