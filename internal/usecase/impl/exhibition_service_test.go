package impl

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"musea/internal/domain/errors"
	"musea/internal/infra/persistence/memory"
	"musea/internal/usecase"
)

func newExhibitionService(t *testing.T) usecase.ExhibitionUsecase {
	t.Helper()

	store := memory.NewStore()
	require.NoError(t, store.InitializeData(context.Background()))

	return NewExhibitionService(ExhibitionServiceParams{ExhibitionRepo: store})
}

func TestListExhibitions_Seeded(t *testing.T) {
	t.Parallel()

	svc := newExhibitionService(t)
	ctx := context.Background()

	all, err := svc.ListExhibitions(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	// Sorted by start date.
	assert.Equal(t, "Ancient Egypt: The Eternal Life", all[0].Title)

	featured, err := svc.ListFeaturedExhibitions(ctx)
	require.NoError(t, err)
	assert.Len(t, featured, 2)
}

func TestExhibitionCRUD(t *testing.T) {
	t.Parallel()

	svc := newExhibitionService(t)
	ctx := context.Background()

	created, err := svc.CreateExhibition(ctx, &usecase.ExhibitionInput{
		Title:       "Impressionists in Light",
		Description: "A seasonal loan exhibition.",
		StartDate:   time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2027, 1, 31, 0, 0, 0, 0, time.UTC),
		IsFeatured:  true,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	fetched, err := svc.GetExhibition(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Impressionists in Light", fetched.Title)

	updated, err := svc.UpdateExhibition(ctx, created.ID, &usecase.ExhibitionInput{
		Title:       "Impressionists in Light, Extended",
		Description: fetched.Description,
		StartDate:   fetched.StartDate,
		EndDate:     fetched.EndDate.AddDate(0, 1, 0),
	})
	require.NoError(t, err)
	assert.Equal(t, "Impressionists in Light, Extended", updated.Title)
	assert.False(t, updated.IsFeatured)

	require.NoError(t, svc.DeleteExhibition(ctx, created.ID))

	_, err = svc.GetExhibition(ctx, created.ID)
	assert.ErrorIs(t, err, errors.ErrExhibitionNotFound)
}

func TestExhibitionNotFoundPaths(t *testing.T) {
	t.Parallel()

	svc := newExhibitionService(t)
	ctx := context.Background()

	_, err := svc.GetExhibition(ctx, 999)
	assert.ErrorIs(t, err, errors.ErrExhibitionNotFound)

	_, err = svc.UpdateExhibition(ctx, 999, &usecase.ExhibitionInput{Title: "x", Description: "y"})
	assert.ErrorIs(t, err, errors.ErrExhibitionNotFound)

	err = svc.DeleteExhibition(ctx, 999)
	assert.ErrorIs(t, err, errors.ErrExhibitionNotFound)
}
