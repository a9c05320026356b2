package postgres

import (
	"context"

	"gorm.io/gorm"

	"musea/internal/domain/entity"
	"musea/internal/domain/repository"
	"musea/internal/errors"
	"musea/internal/infra/persistence/model"
)

// CreateTicket persists a new ticket.
func (s *Store) CreateTicket(ctx context.Context, ticket *entity.Ticket) error {
	ticketM := fromTicketDomain(ticket)

	if err := s.db.WithContext(ctx).Create(ticketM).Error; err != nil {
		return errors.Wrap(err, "failed to create ticket")
	}

	ticket.ID = ticketM.ID
	ticket.CreatedAt = ticketM.CreatedAt

	return nil
}

// FindTicketByID retrieves a ticket by its unique ID.
func (s *Store) FindTicketByID(ctx context.Context, id int64) (*entity.Ticket, error) {
	var ticketM model.TicketModel

	if err := s.db.WithContext(ctx).
		Where("id = ?", id).
		First(&ticketM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTicketNotFound
		}

		return nil, errors.Wrap(err, "failed to find ticket by ID")
	}

	return toTicketDomain(&ticketM), nil
}

// ListTickets retrieves all tickets, newest first.
func (s *Store) ListTickets(ctx context.Context) ([]*entity.Ticket, error) {
	var ticketModels []*model.TicketModel

	if err := s.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&ticketModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tickets")
	}

	return toTicketDomainList(ticketModels), nil
}

// ListTicketsByUser retrieves all tickets owned by a user, newest first.
func (s *Store) ListTicketsByUser(ctx context.Context, userID int64) ([]*entity.Ticket, error) {
	var ticketModels []*model.TicketModel

	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&ticketModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tickets by user")
	}

	return toTicketDomainList(ticketModels), nil
}

// MarkTicketPaid sets the paid flag and payment reference, and returns the
// updated ticket.
func (s *Store) MarkTicketPaid(ctx context.Context, id int64, paymentIntentID string) (*entity.Ticket, error) {
	result := s.db.WithContext(ctx).
		Model(&model.TicketModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_paid":           true,
			"payment_intent_id": paymentIntentID,
		})

	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to mark ticket paid")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrTicketNotFound
	}

	return s.FindTicketByID(ctx, id)
}

// SetTicketQRCode stores the QR payload, overwriting any previous value.
func (s *Store) SetTicketQRCode(ctx context.Context, id int64, qrCodeData string) error {
	result := s.db.WithContext(ctx).
		Model(&model.TicketModel{}).
		Where("id = ?", id).
		Update("qr_code_data", qrCodeData)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set ticket QR code")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTicketNotFound
	}

	return nil
}

// MarkTicketUsed sets the used flag and returns the updated ticket.
func (s *Store) MarkTicketUsed(ctx context.Context, id int64) (*entity.Ticket, error) {
	result := s.db.WithContext(ctx).
		Model(&model.TicketModel{}).
		Where("id = ?", id).
		Update("is_used", true)

	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to mark ticket used")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrTicketNotFound
	}

	return s.FindTicketByID(ctx, id)
}

// DeleteTicket removes a ticket by its ID.
func (s *Store) DeleteTicket(ctx context.Context, id int64) error {
	result := s.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.TicketModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete ticket")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTicketNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toTicketDomain(data *model.TicketModel) *entity.Ticket {
	if data == nil {
		return nil
	}

	return &entity.Ticket{
		ID:              data.ID,
		UserID:          data.UserID,
		TicketTypeID:    data.TicketTypeID,
		ExhibitionID:    data.ExhibitionID,
		Quantity:        data.Quantity,
		VisitDate:       data.VisitDate,
		TotalPrice:      data.TotalPrice,
		IsPaid:          data.IsPaid,
		PaymentIntentID: data.PaymentIntentID,
		QRCodeData:      data.QRCodeData,
		IsUsed:          data.IsUsed,
		CreatedAt:       data.CreatedAt,
	}
}

func toTicketDomainList(models []*model.TicketModel) []*entity.Ticket {
	tickets := make([]*entity.Ticket, 0, len(models))
	for _, ticketM := range models {
		tickets = append(tickets, toTicketDomain(ticketM))
	}

	return tickets
}

func fromTicketDomain(data *entity.Ticket) *model.TicketModel {
	if data == nil {
		return nil
	}

	return &model.TicketModel{
		ID:              data.ID,
		UserID:          data.UserID,
		TicketTypeID:    data.TicketTypeID,
		ExhibitionID:    data.ExhibitionID,
		Quantity:        data.Quantity,
		VisitDate:       data.VisitDate,
		TotalPrice:      data.TotalPrice,
		IsPaid:          data.IsPaid,
		PaymentIntentID: data.PaymentIntentID,
		QRCodeData:      data.QRCodeData,
		IsUsed:          data.IsUsed,
		CreatedAt:       data.CreatedAt,
	}
}
