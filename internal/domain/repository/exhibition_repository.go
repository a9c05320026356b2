package repository

import (
	"context"

	"musea/internal/domain/entity"
	"musea/internal/errors"
)

// ErrExhibitionNotFound is returned when an exhibition is not found.
var ErrExhibitionNotFound = errors.New("exhibition not found")

// ExhibitionRepository defines the interface for exhibition-related database operations.
type ExhibitionRepository interface {
	// CreateExhibition persists a new exhibition and assigns its identifier
	// and creation timestamp.
	CreateExhibition(ctx context.Context, exhibition *entity.Exhibition) error

	// FindExhibitionByID retrieves an exhibition by its unique ID.
	FindExhibitionByID(ctx context.Context, id int64) (*entity.Exhibition, error)

	// ListExhibitions retrieves all exhibitions ordered by start date.
	ListExhibitions(ctx context.Context) ([]*entity.Exhibition, error)

	// ListFeaturedExhibitions retrieves exhibitions with the featured flag set.
	ListFeaturedExhibitions(ctx context.Context) ([]*entity.Exhibition, error)

	// UpdateExhibition replaces all mutable fields of an existing exhibition.
	// Returns ErrExhibitionNotFound when the id does not exist.
	UpdateExhibition(ctx context.Context, exhibition *entity.Exhibition) error

	// DeleteExhibition removes an exhibition. Returns ErrExhibitionNotFound
	// when nothing was deleted. Referencing tickets are not cascaded.
	DeleteExhibition(ctx context.Context, id int64) error
}
