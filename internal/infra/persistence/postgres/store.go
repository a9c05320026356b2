package postgres

import (
	"context"
	"log/slog"

	"gorm.io/gorm"

	"musea/internal/domain/repository"
	"musea/internal/errors"
	"musea/internal/infra/persistence/fixture"
	"musea/internal/infra/persistence/model"
)

// Store implements the aggregate persistence port on PostgreSQL.
type Store struct {
	db     *gorm.DB
	logger *slog.Logger
}

var _ repository.Store = (*Store)(nil)

// NewStore is the constructor for the PostgreSQL store.
func NewStore(db *gorm.DB, logger *slog.Logger) *Store {
	return &Store{db: db, logger: logger}
}

// InitializeData migrates the schema and seeds the fixture catalog when the
// users table is empty.
func (s *Store) InitializeData(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(
		&model.UserModel{},
		&model.ExhibitionModel{},
		&model.TicketTypeModel{},
		&model.TicketModel{},
		&model.ConversationModel{},
		&model.MessageModel{},
		&model.AnalyticsModel{},
		&model.TestimonialModel{},
	); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	var userCount int64
	if err := s.db.WithContext(ctx).Model(&model.UserModel{}).Count(&userCount).Error; err != nil {
		return errors.Wrap(err, "failed to count users")
	}
	if userCount > 0 {
		return nil
	}

	s.logger.Info("seeding fixture catalog into PostgreSQL")

	if err := s.CreateUser(ctx, fixture.AdminUser()); err != nil {
		return err
	}
	for _, exhibition := range fixture.Exhibitions() {
		if err := s.CreateExhibition(ctx, exhibition); err != nil {
			return err
		}
	}
	for _, ticketType := range fixture.TicketTypes() {
		if err := s.CreateTicketType(ctx, ticketType); err != nil {
			return err
		}
	}
	for _, testimonial := range fixture.Testimonials() {
		if err := s.CreateTestimonial(ctx, testimonial); err != nil {
			return err
		}
	}

	return nil
}
