package usecase

import (
	"context"
	"time"

	"musea/internal/domain/entity"
)

// ExhibitionInput carries the fields for creating or updating an exhibition.
type ExhibitionInput struct {
	Title       string
	Description string
	ImageURL    *string
	StartDate   time.Time
	EndDate     time.Time
	IsFeatured  bool
	IsNew       bool
}

// ExhibitionUsecase defines the interface for exhibition catalog use cases.
type ExhibitionUsecase interface {
	// ListExhibitions returns all exhibitions ordered by start date.
	ListExhibitions(ctx context.Context) ([]*entity.Exhibition, error)

	// ListFeaturedExhibitions returns exhibitions flagged as featured.
	ListFeaturedExhibitions(ctx context.Context) ([]*entity.Exhibition, error)

	// GetExhibition returns one exhibition by ID.
	GetExhibition(ctx context.Context, id int64) (*entity.Exhibition, error)

	// CreateExhibition adds an exhibition to the catalog. Admin only.
	CreateExhibition(ctx context.Context, input *ExhibitionInput) (*entity.Exhibition, error)

	// UpdateExhibition replaces an exhibition's fields. Admin only.
	UpdateExhibition(ctx context.Context, id int64, input *ExhibitionInput) (*entity.Exhibition, error)

	// DeleteExhibition removes an exhibition. Admin only. Existing tickets
	// referencing it are kept and fall back to general admission display.
	DeleteExhibition(ctx context.Context, id int64) error
}
