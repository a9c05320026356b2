package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"musea/internal/domain/entity"
	"musea/internal/domain/repository"
)

func seededStore(t *testing.T) *Store {
	t.Helper()

	store := NewStore()
	require.NoError(t, store.InitializeData(context.Background()))

	return store
}

func TestInitializeData_Idempotent(t *testing.T) {
	t.Parallel()

	store := seededStore(t)
	ctx := context.Background()

	// A second pass must not duplicate the catalog.
	require.NoError(t, store.InitializeData(ctx))

	users, err := store.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)

	exhibitions, err := store.ListExhibitions(ctx)
	require.NoError(t, err)
	assert.Len(t, exhibitions, 3)

	ticketTypes, err := store.ListTicketTypes(ctx)
	require.NoError(t, err)
	assert.Len(t, ticketTypes, 3)

	testimonials, err := store.ListApprovedTestimonials(ctx)
	require.NoError(t, err)
	assert.Len(t, testimonials, 3)
}

func TestSeedCatalog(t *testing.T) {
	t.Parallel()

	store := seededStore(t)
	ctx := context.Background()

	admin, err := store.FindUserByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin)
	assert.Equal(t, "admin@museum.com", admin.Email)

	ticketTypes, err := store.ListTicketTypes(ctx)
	require.NoError(t, err)
	// Ordered by price ascending.
	assert.Equal(t, "General Admission", ticketTypes[0].Name)
	assert.InEpsilon(t, 18.0, ticketTypes[0].Price, 1e-9)
	assert.Equal(t, "Premium Pass", ticketTypes[2].Name)

	featured, err := store.ListFeaturedExhibitions(ctx)
	require.NoError(t, err)
	require.Len(t, featured, 2)
	for _, exhibition := range featured {
		assert.True(t, exhibition.IsFeatured)
	}
}

func TestCreateUser_DuplicateRejected(t *testing.T) {
	t.Parallel()

	store := seededStore(t)
	ctx := context.Background()

	err := store.CreateUser(ctx, &entity.User{Username: "ADMIN", Email: "other@museum.com", Password: "x"})
	assert.ErrorIs(t, err, repository.ErrDuplicateUser)

	err = store.CreateUser(ctx, &entity.User{Username: "visitor", Email: "Admin@Museum.com", Password: "x"})
	assert.ErrorIs(t, err, repository.ErrDuplicateUser)

	err = store.CreateUser(ctx, &entity.User{Username: "visitor", Email: "visitor@museum.com", Password: "x"})
	require.NoError(t, err)
}

func TestCreateUser_DefaultsLanguage(t *testing.T) {
	t.Parallel()

	store := NewStore()
	user := &entity.User{Username: "a", Email: "a@b.c", Password: "x"}
	require.NoError(t, store.CreateUser(context.Background(), user))
	assert.Equal(t, "en", user.LanguagePreference)
	assert.EqualValues(t, 1, user.ID)
}

func TestTicketLifecycleWrites(t *testing.T) {
	t.Parallel()

	store := seededStore(t)
	ctx := context.Background()

	ticket := &entity.Ticket{
		UserID:       1,
		TicketTypeID: 1,
		Quantity:     2,
		VisitDate:    time.Now().Add(48 * time.Hour),
		TotalPrice:   36.0,
	}
	require.NoError(t, store.CreateTicket(ctx, ticket))
	require.NotZero(t, ticket.ID)

	paid, err := store.MarkTicketPaid(ctx, ticket.ID, "pi_123_abc")
	require.NoError(t, err)
	assert.True(t, paid.IsPaid)
	require.NotNil(t, paid.PaymentIntentID)
	assert.Equal(t, "pi_123_abc", *paid.PaymentIntentID)

	require.NoError(t, store.SetTicketQRCode(ctx, ticket.ID, "data:image/png;base64,xxx"))

	found, err := store.FindTicketByID(ctx, ticket.ID)
	require.NoError(t, err)
	require.NotNil(t, found.QRCodeData)

	used, err := store.MarkTicketUsed(ctx, ticket.ID)
	require.NoError(t, err)
	assert.True(t, used.IsUsed)

	_, err = store.MarkTicketPaid(ctx, 9999, "pi_x")
	assert.ErrorIs(t, err, repository.ErrTicketNotFound)
}

func TestListTicketsByUser_NewestFirst(t *testing.T) {
	t.Parallel()

	store := NewStore()
	ctx := context.Background()

	base := time.Now()
	for i := 0; i < 3; i++ {
		require.NoError(t, store.CreateTicket(ctx, &entity.Ticket{
			UserID:       7,
			TicketTypeID: 1,
			Quantity:     1,
			VisitDate:    base.Add(24 * time.Hour),
			CreatedAt:    base.Add(time.Duration(i) * time.Minute),
		}))
	}
	require.NoError(t, store.CreateTicket(ctx, &entity.Ticket{UserID: 8, TicketTypeID: 1, Quantity: 1, VisitDate: base}))

	tickets, err := store.ListTicketsByUser(ctx, 7)
	require.NoError(t, err)
	require.Len(t, tickets, 3)
	assert.True(t, tickets[0].CreatedAt.After(tickets[2].CreatedAt))
}

func TestDeleteTicket(t *testing.T) {
	t.Parallel()

	store := NewStore()
	ctx := context.Background()

	ticket := &entity.Ticket{UserID: 1, TicketTypeID: 1, Quantity: 1, VisitDate: time.Now()}
	require.NoError(t, store.CreateTicket(ctx, ticket))
	require.NoError(t, store.DeleteTicket(ctx, ticket.ID))
	assert.ErrorIs(t, store.DeleteTicket(ctx, ticket.ID), repository.ErrTicketNotFound)
}

func TestExhibitionUpdatePreservesCreatedAt(t *testing.T) {
	t.Parallel()

	store := seededStore(t)
	ctx := context.Background()

	original, err := store.FindExhibitionByID(ctx, 1)
	require.NoError(t, err)

	updated := *original
	updated.Title = "Renamed Exhibition"
	updated.CreatedAt = time.Time{}
	require.NoError(t, store.UpdateExhibition(ctx, &updated))

	found, err := store.FindExhibitionByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Renamed Exhibition", found.Title)
	assert.Equal(t, original.CreatedAt, found.CreatedAt)

	missing := *original
	missing.ID = 9999
	assert.ErrorIs(t, store.UpdateExhibition(ctx, &missing), repository.ErrExhibitionNotFound)
}

func TestConversationAndMessages(t *testing.T) {
	t.Parallel()

	store := NewStore()
	ctx := context.Background()

	conversation := &entity.Conversation{SessionID: "sess-1"}
	require.NoError(t, store.CreateConversation(ctx, conversation))
	assert.Equal(t, "en", conversation.Language)

	base := time.Now()
	for i, content := range []string{"hello", "hi there", "thanks"} {
		require.NoError(t, store.CreateMessage(ctx, &entity.Message{
			ConversationID: conversation.ID,
			IsFromUser:     i%2 == 0,
			Content:        content,
			CreatedAt:      base.Add(time.Duration(i) * time.Second),
		}))
	}

	messages, err := store.ListMessagesByConversation(ctx, conversation.ID)
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, "hello", messages[0].Content)
	assert.Equal(t, "thanks", messages[2].Content)

	_, err = store.FindConversationByID(ctx, 9999)
	assert.ErrorIs(t, err, repository.ErrConversationNotFound)
}

func TestAnalyticsNewestFirst(t *testing.T) {
	t.Parallel()

	store := NewStore()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, store.CreateAnalyticsEntry(ctx, &entity.AnalyticsEntry{
			Date:         time.Date(2026, 8, 1+i, 0, 0, 0, 0, time.UTC),
			VisitorCount: 100 * (i + 1),
		}))
	}

	entries, err := store.ListAnalyticsEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, 300, entries[0].VisitorCount)
}

func TestApproveTestimonial(t *testing.T) {
	t.Parallel()

	store := NewStore()
	ctx := context.Background()

	testimonial := &entity.Testimonial{Name: "Visitor", Content: "Great museum", Rating: 5}
	require.NoError(t, store.CreateTestimonial(ctx, testimonial))

	approved, err := store.ListApprovedTestimonials(ctx)
	require.NoError(t, err)
	assert.Empty(t, approved)

	updated, err := store.ApproveTestimonial(ctx, testimonial.ID)
	require.NoError(t, err)
	assert.True(t, updated.IsApproved)

	approved, err = store.ListApprovedTestimonials(ctx)
	require.NoError(t, err)
	assert.Len(t, approved, 1)

	_, err = store.ApproveTestimonial(ctx, 9999)
	assert.ErrorIs(t, err, repository.ErrTestimonialNotFound)
}
