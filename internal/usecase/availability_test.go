//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"resort-booking/internal/domain/booking"
	"resort-booking/internal/domain/service"
	"resort-booking/internal/infra/db"
	"resort-booking/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeServiceRepo records the last availability query it saw.
type fakeServiceRepo struct {
	lastType  service.Type
	lastSlot  booking.Slot
	lastParty int
	result    []*service.Service
}

func (f *fakeServiceRepo) FindByID(_ context.Context, _ db.DBTX, _ int64) (*service.Service, error) {
	return nil, nil
}

func (f *fakeServiceRepo) LockByID(_ context.Context, _ db.DBTX, _ int64) (*service.Service, error) {
	return nil, nil
}

func (f *fakeServiceRepo) FindAvailable(_ context.Context, _ db.DBTX, typ service.Type, slot booking.Slot, partySize int) ([]*service.Service, error) {
	f.lastType = typ
	f.lastSlot = slot
	f.lastParty = partySize
	return f.result, nil
}

func (f *fakeServiceRepo) FindAllByType(_ context.Context, _ db.DBTX, _ service.Type) ([]*service.Service, error) {
	return f.result, nil
}

func TestAvailabilitySearch(t *testing.T) {
	ctx := context.Background()

	t.Run("room query builds the stay slot", func(t *testing.T) {
		repo := &fakeServiceRepo{}
		uc := usecase.NewAvailabilityUseCase(nil, repo)

		_, err := uc.Search(ctx, usecase.AvailabilityQuery{
			Type:      service.TypeRoom,
			PartySize: 2,
			CheckIn:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			CheckOut:  time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)

		assert.Equal(t, service.TypeRoom, repo.lastType)
		assert.Equal(t, 2, repo.lastParty)
		assert.Equal(t, 14, repo.lastSlot.Start().Hour())
		assert.Equal(t, 10, repo.lastSlot.End().Hour())
		assert.Equal(t, 2, repo.lastSlot.Nights())
	})

	t.Run("restaurant query builds the meal window", func(t *testing.T) {
		repo := &fakeServiceRepo{}
		uc := usecase.NewAvailabilityUseCase(nil, repo)

		_, err := uc.Search(ctx, usecase.AvailabilityQuery{
			Type:      service.TypeRestaurant,
			PartySize: 4,
			Date:      time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			Meal:      "dinner",
		})
		require.NoError(t, err)

		assert.Equal(t, 19, repo.lastSlot.Start().Hour())
		assert.Equal(t, 2*time.Hour, repo.lastSlot.End().Sub(repo.lastSlot.Start()))
	})

	t.Run("rejects walk-in types", func(t *testing.T) {
		uc := usecase.NewAvailabilityUseCase(nil, &fakeServiceRepo{})

		_, err := uc.Search(ctx, usecase.AvailabilityQuery{Type: service.TypePool, PartySize: 1})
		assert.ErrorIs(t, err, usecase.ErrInvalidAvailabilityQuery)
	})

	t.Run("rejects non-positive party size", func(t *testing.T) {
		uc := usecase.NewAvailabilityUseCase(nil, &fakeServiceRepo{})

		_, err := uc.Search(ctx, usecase.AvailabilityQuery{Type: service.TypeRoom, PartySize: 0})
		assert.ErrorIs(t, err, booking.ErrInvalidPartySize)
	})

	t.Run("rejects unknown meal slot", func(t *testing.T) {
		uc := usecase.NewAvailabilityUseCase(nil, &fakeServiceRepo{})

		_, err := uc.Search(ctx, usecase.AvailabilityQuery{
			Type:      service.TypeRestaurant,
			PartySize: 2,
			Date:      time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			Meal:      "brunch",
		})
		assert.ErrorIs(t, err, booking.ErrInvalidMealSlot)
	})
}
