// Package memory implements the persistence port with in-process maps.
//
// It is the default backend for development and tests, and the runtime
// fallback when the document backend is unreachable at startup. All data is
// lost when the process exits.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"musea/internal/domain/entity"
	"musea/internal/domain/repository"
	"musea/internal/infra/persistence/fixture"
)

// Store keeps every entity in a map keyed by its identifier. A single
// RWMutex guards all maps; contention is irrelevant at this backend's scale.
type Store struct {
	mu sync.RWMutex

	users         map[int64]*entity.User
	exhibitions   map[int64]*entity.Exhibition
	ticketTypes   map[int64]*entity.TicketType
	tickets       map[int64]*entity.Ticket
	conversations map[int64]*entity.Conversation
	messages      map[int64]*entity.Message
	analytics     map[int64]*entity.AnalyticsEntry
	testimonials  map[int64]*entity.Testimonial

	nextUserID         int64
	nextExhibitionID   int64
	nextTicketTypeID   int64
	nextTicketID       int64
	nextConversationID int64
	nextMessageID      int64
	nextAnalyticsID    int64
	nextTestimonialID  int64
}

var _ repository.Store = (*Store)(nil)

// NewStore is the constructor for the in-memory store.
func NewStore() *Store {
	return &Store{
		users:         make(map[int64]*entity.User),
		exhibitions:   make(map[int64]*entity.Exhibition),
		ticketTypes:   make(map[int64]*entity.TicketType),
		tickets:       make(map[int64]*entity.Ticket),
		conversations: make(map[int64]*entity.Conversation),
		messages:      make(map[int64]*entity.Message),
		analytics:     make(map[int64]*entity.AnalyticsEntry),
		testimonials:  make(map[int64]*entity.Testimonial),
	}
}

// InitializeData seeds the fixture catalog when no users exist yet.
func (s *Store) InitializeData(ctx context.Context) error {
	s.mu.RLock()
	seeded := len(s.users) > 0
	s.mu.RUnlock()
	if seeded {
		return nil
	}

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

// User operations

func (s *Store) CreateUser(_ context.Context, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if strings.EqualFold(existing.Username, user.Username) || strings.EqualFold(existing.Email, user.Email) {
			return repository.ErrDuplicateUser
		}
	}

	s.nextUserID++
	user.ID = s.nextUserID
	if user.LanguagePreference == "" {
		user.LanguagePreference = "en"
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	copied := *user
	s.users[user.ID] = &copied

	return nil
}

func (s *Store) FindUserByID(_ context.Context, id int64) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	copied := *user

	return &copied, nil
}

func (s *Store) FindUserByUsername(_ context.Context, username string) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if strings.EqualFold(user.Username, username) {
			copied := *user

			return &copied, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (s *Store) FindUserByEmail(_ context.Context, email string) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if strings.EqualFold(user.Email, email) {
			copied := *user

			return &copied, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (s *Store) ListUsers(_ context.Context) ([]*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]*entity.User, 0, len(s.users))
	for _, user := range s.users {
		copied := *user
		users = append(users, &copied)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID > users[j].ID })

	return users, nil
}

// Exhibition operations

func (s *Store) CreateExhibition(_ context.Context, exhibition *entity.Exhibition) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextExhibitionID++
	exhibition.ID = s.nextExhibitionID
	if exhibition.CreatedAt.IsZero() {
		exhibition.CreatedAt = time.Now()
	}

	copied := *exhibition
	s.exhibitions[exhibition.ID] = &copied

	return nil
}

func (s *Store) FindExhibitionByID(_ context.Context, id int64) (*entity.Exhibition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	exhibition, ok := s.exhibitions[id]
	if !ok {
		return nil, repository.ErrExhibitionNotFound
	}
	copied := *exhibition

	return &copied, nil
}

func (s *Store) ListExhibitions(_ context.Context) ([]*entity.Exhibition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	exhibitions := make([]*entity.Exhibition, 0, len(s.exhibitions))
	for _, exhibition := range s.exhibitions {
		copied := *exhibition
		exhibitions = append(exhibitions, &copied)
	}
	sort.Slice(exhibitions, func(i, j int) bool {
		return exhibitions[i].StartDate.Before(exhibitions[j].StartDate)
	})

	return exhibitions, nil
}

func (s *Store) ListFeaturedExhibitions(ctx context.Context) ([]*entity.Exhibition, error) {
	all, err := s.ListExhibitions(ctx)
	if err != nil {
		return nil, err
	}

	featured := make([]*entity.Exhibition, 0, len(all))
	for _, exhibition := range all {
		if exhibition.IsFeatured {
			featured = append(featured, exhibition)
		}
	}

	return featured, nil
}

func (s *Store) UpdateExhibition(_ context.Context, exhibition *entity.Exhibition) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.exhibitions[exhibition.ID]
	if !ok {
		return repository.ErrExhibitionNotFound
	}

	exhibition.CreatedAt = existing.CreatedAt
	copied := *exhibition
	s.exhibitions[exhibition.ID] = &copied

	return nil
}

func (s *Store) DeleteExhibition(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.exhibitions[id]; !ok {
		return repository.ErrExhibitionNotFound
	}
	delete(s.exhibitions, id)

	return nil
}

// Ticket type operations

func (s *Store) CreateTicketType(_ context.Context, ticketType *entity.TicketType) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextTicketTypeID++
	ticketType.ID = s.nextTicketTypeID
	if ticketType.Color == "" {
		ticketType.Color = "primary"
	}
	if ticketType.CreatedAt.IsZero() {
		ticketType.CreatedAt = time.Now()
	}

	copied := *ticketType
	copied.Includes = append([]string(nil), ticketType.Includes...)
	s.ticketTypes[ticketType.ID] = &copied

	return nil
}

func (s *Store) FindTicketTypeByID(_ context.Context, id int64) (*entity.TicketType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ticketType, ok := s.ticketTypes[id]
	if !ok {
		return nil, repository.ErrTicketTypeNotFound
	}
	copied := *ticketType
	copied.Includes = append([]string(nil), ticketType.Includes...)

	return &copied, nil
}

func (s *Store) ListTicketTypes(_ context.Context) ([]*entity.TicketType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ticketTypes := make([]*entity.TicketType, 0, len(s.ticketTypes))
	for _, ticketType := range s.ticketTypes {
		copied := *ticketType
		copied.Includes = append([]string(nil), ticketType.Includes...)
		ticketTypes = append(ticketTypes, &copied)
	}
	sort.Slice(ticketTypes, func(i, j int) bool {
		return ticketTypes[i].Price < ticketTypes[j].Price
	})

	return ticketTypes, nil
}

func (s *Store) UpdateTicketType(_ context.Context, ticketType *entity.TicketType) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.ticketTypes[ticketType.ID]
	if !ok {
		return repository.ErrTicketTypeNotFound
	}

	ticketType.CreatedAt = existing.CreatedAt
	copied := *ticketType
	copied.Includes = append([]string(nil), ticketType.Includes...)
	s.ticketTypes[ticketType.ID] = &copied

	return nil
}

func (s *Store) DeleteTicketType(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.ticketTypes[id]; !ok {
		return repository.ErrTicketTypeNotFound
	}
	delete(s.ticketTypes, id)

	return nil
}

// Ticket operations

func (s *Store) CreateTicket(_ context.Context, ticket *entity.Ticket) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextTicketID++
	ticket.ID = s.nextTicketID
	if ticket.CreatedAt.IsZero() {
		ticket.CreatedAt = time.Now()
	}

	copied := *ticket
	s.tickets[ticket.ID] = &copied

	return nil
}

func (s *Store) FindTicketByID(_ context.Context, id int64) (*entity.Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ticket, ok := s.tickets[id]
	if !ok {
		return nil, repository.ErrTicketNotFound
	}
	copied := *ticket

	return &copied, nil
}

func (s *Store) ListTickets(_ context.Context) ([]*entity.Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tickets := make([]*entity.Ticket, 0, len(s.tickets))
	for _, ticket := range s.tickets {
		copied := *ticket
		tickets = append(tickets, &copied)
	}
	sortTicketsNewestFirst(tickets)

	return tickets, nil
}

func (s *Store) ListTicketsByUser(_ context.Context, userID int64) ([]*entity.Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tickets := make([]*entity.Ticket, 0)
	for _, ticket := range s.tickets {
		if ticket.UserID == userID {
			copied := *ticket
			tickets = append(tickets, &copied)
		}
	}
	sortTicketsNewestFirst(tickets)

	return tickets, nil
}

func sortTicketsNewestFirst(tickets []*entity.Ticket) {
	sort.Slice(tickets, func(i, j int) bool {
		if tickets[i].CreatedAt.Equal(tickets[j].CreatedAt) {
			return tickets[i].ID > tickets[j].ID
		}

		return tickets[i].CreatedAt.After(tickets[j].CreatedAt)
	})
}

func (s *Store) MarkTicketPaid(_ context.Context, id int64, paymentIntentID string) (*entity.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ticket, ok := s.tickets[id]
	if !ok {
		return nil, repository.ErrTicketNotFound
	}

	ticket.IsPaid = true
	ticket.PaymentIntentID = &paymentIntentID
	copied := *ticket

	return &copied, nil
}

func (s *Store) SetTicketQRCode(_ context.Context, id int64, qrCodeData string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ticket, ok := s.tickets[id]
	if !ok {
		return repository.ErrTicketNotFound
	}
	ticket.QRCodeData = &qrCodeData

	return nil
}

func (s *Store) MarkTicketUsed(_ context.Context, id int64) (*entity.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ticket, ok := s.tickets[id]
	if !ok {
		return nil, repository.ErrTicketNotFound
	}

	ticket.IsUsed = true
	copied := *ticket

	return &copied, nil
}

func (s *Store) DeleteTicket(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tickets[id]; !ok {
		return repository.ErrTicketNotFound
	}
	delete(s.tickets, id)

	return nil
}

// Conversation operations

func (s *Store) CreateConversation(_ context.Context, conversation *entity.Conversation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextConversationID++
	conversation.ID = s.nextConversationID
	if conversation.Language == "" {
		conversation.Language = "en"
	}
	if conversation.CreatedAt.IsZero() {
		conversation.CreatedAt = time.Now()
	}

	copied := *conversation
	s.conversations[conversation.ID] = &copied

	return nil
}

func (s *Store) FindConversationByID(_ context.Context, id int64) (*entity.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	conversation, ok := s.conversations[id]
	if !ok {
		return nil, repository.ErrConversationNotFound
	}
	copied := *conversation

	return &copied, nil
}

func (s *Store) CreateMessage(_ context.Context, message *entity.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextMessageID++
	message.ID = s.nextMessageID
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}

	copied := *message
	s.messages[message.ID] = &copied

	return nil
}

func (s *Store) ListMessagesByConversation(_ context.Context, conversationID int64) ([]*entity.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	messages := make([]*entity.Message, 0)
	for _, message := range s.messages {
		if message.ConversationID == conversationID {
			copied := *message
			messages = append(messages, &copied)
		}
	}
	sort.Slice(messages, func(i, j int) bool {
		if messages[i].CreatedAt.Equal(messages[j].CreatedAt) {
			return messages[i].ID < messages[j].ID
		}

		return messages[i].CreatedAt.Before(messages[j].CreatedAt)
	})

	return messages, nil
}

// Analytics operations

func (s *Store) CreateAnalyticsEntry(_ context.Context, entry *entity.AnalyticsEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextAnalyticsID++
	entry.ID = s.nextAnalyticsID
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	copied := *entry
	s.analytics[entry.ID] = &copied

	return nil
}

func (s *Store) ListAnalyticsEntries(_ context.Context) ([]*entity.AnalyticsEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]*entity.AnalyticsEntry, 0, len(s.analytics))
	for _, entry := range s.analytics {
		copied := *entry
		entries = append(entries, &copied)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Date.Equal(entries[j].Date) {
			return entries[i].ID > entries[j].ID
		}

		return entries[i].Date.After(entries[j].Date)
	})

	return entries, nil
}

// Testimonial operations

func (s *Store) CreateTestimonial(_ context.Context, testimonial *entity.Testimonial) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextTestimonialID++
	testimonial.ID = s.nextTestimonialID
	if testimonial.CreatedAt.IsZero() {
		testimonial.CreatedAt = time.Now()
	}

	copied := *testimonial
	s.testimonials[testimonial.ID] = &copied

	return nil
}

func (s *Store) ListApprovedTestimonials(_ context.Context) ([]*entity.Testimonial, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	testimonials := make([]*entity.Testimonial, 0)
	for _, testimonial := range s.testimonials {
		if testimonial.IsApproved {
			copied := *testimonial
			testimonials = append(testimonials, &copied)
		}
	}
	sort.Slice(testimonials, func(i, j int) bool {
		if testimonials[i].CreatedAt.Equal(testimonials[j].CreatedAt) {
			return testimonials[i].ID > testimonials[j].ID
		}

		return testimonials[i].CreatedAt.After(testimonials[j].CreatedAt)
	})

	return testimonials, nil
}

func (s *Store) ApproveTestimonial(_ context.Context, id int64) (*entity.Testimonial, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	testimonial, ok := s.testimonials[id]
	if !ok {
		return nil, repository.ErrTestimonialNotFound
	}

	testimonial.IsApproved = true
	copied := *testimonial

	return &copied, nil
}
