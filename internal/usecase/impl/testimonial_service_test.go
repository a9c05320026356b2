package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"musea/internal/domain/errors"
	"musea/internal/infra/persistence/memory"
	"musea/internal/usecase"
)

func TestSubmitTestimonial_HiddenUntilApproved(t *testing.T) {
	t.Parallel()

	store := memory.NewStore()
	svc := NewTestimonialService(TestimonialServiceParams{TestimonialRepo: store})
	ctx := context.Background()

	submitted, err := svc.SubmitTestimonial(ctx, &usecase.TestimonialInput{
		Name:    "A Visitor",
		Content: "Wonderful collection",
		Rating:  5,
	})
	require.NoError(t, err)
	assert.False(t, submitted.IsApproved)

	approved, err := svc.ListApprovedTestimonials(ctx)
	require.NoError(t, err)
	assert.Empty(t, approved)

	published, err := svc.ApproveTestimonial(ctx, submitted.ID)
	require.NoError(t, err)
	assert.True(t, published.IsApproved)

	approved, err = svc.ListApprovedTestimonials(ctx)
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, "A Visitor", approved[0].Name)
}

func TestApproveTestimonial_Unknown(t *testing.T) {
	t.Parallel()

	svc := NewTestimonialService(TestimonialServiceParams{TestimonialRepo: memory.NewStore()})
	_, err := svc.ApproveTestimonial(context.Background(), 999)
	assert.ErrorIs(t, err, errors.ErrTestimonialNotFound)
}

func TestApproveTestimonial_Idempotent(t *testing.T) {
	t.Parallel()

	store := memory.NewStore()
	svc := NewTestimonialService(TestimonialServiceParams{TestimonialRepo: store})
	ctx := context.Background()

	submitted, err := svc.SubmitTestimonial(ctx, &usecase.TestimonialInput{Name: "B", Content: "Nice", Rating: 4})
	require.NoError(t, err)

	_, err = svc.ApproveTestimonial(ctx, submitted.ID)
	require.NoError(t, err)
	again, err := svc.ApproveTestimonial(ctx, submitted.ID)
	require.NoError(t, err)
	assert.True(t, again.IsApproved)
}
