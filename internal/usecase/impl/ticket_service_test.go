package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"musea/config"
	domainerrors "musea/internal/domain/errors"
	"musea/internal/infra/metrics"
	"musea/internal/infra/persistence/memory"
	"musea/internal/infra/qrcode"
	"musea/internal/usecase"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTicketService(t *testing.T) (usecase.TicketUsecase, *memory.Store) {
	t.Helper()

	store := memory.NewStore()
	require.NoError(t, store.InitializeData(context.Background()))

	svc := NewTicketService(TicketServiceParams{
		TicketRepo:     store,
		TicketTypeRepo: store,
		ExhibitionRepo: store,
		QRCodeService:  qrcode.NewQRCodeService(&config.Config{}),
		Metrics:        metrics.New(),
		Logger:         discardLogger(),
	})

	return svc, store
}

func purchaseInput() *usecase.PurchaseTicketInput {
	return &usecase.PurchaseTicketInput{
		TicketTypeID: 1,
		Quantity:     2,
		VisitDate:    time.Now().Add(72 * time.Hour),
	}
}

func TestPurchaseTicket_ComputesTotalPrice(t *testing.T) {
	t.Parallel()

	svc, _ := newTicketService(t)

	ticket, err := svc.PurchaseTicket(context.Background(), 1, purchaseInput())
	require.NoError(t, err)
	assert.InEpsilon(t, 36.0, ticket.TotalPrice, 1e-9) // General Admission $18 x 2
	assert.False(t, ticket.IsPaid)
	assert.False(t, ticket.IsUsed)
	assert.Nil(t, ticket.QRCodeData)
}

func TestPurchaseTicket_PriceImmuneToLaterTypeChanges(t *testing.T) {
	t.Parallel()

	svc, store := newTicketService(t)
	ctx := context.Background()

	ticket, err := svc.PurchaseTicket(ctx, 1, purchaseInput())
	require.NoError(t, err)

	// Double the product price after purchase; the ticket keeps its total.
	ticketType, err := store.FindTicketTypeByID(ctx, 1)
	require.NoError(t, err)
	ticketType.Price *= 2
	require.NoError(t, store.UpdateTicketType(ctx, ticketType))

	details, err := svc.GetTicket(ctx, 1, false, ticket.ID)
	require.NoError(t, err)
	assert.InEpsilon(t, 36.0, details.TotalPrice, 1e-9)
}

func TestPurchaseTicket_UnknownType(t *testing.T) {
	t.Parallel()

	svc, _ := newTicketService(t)

	input := purchaseInput()
	input.TicketTypeID = 999
	_, err := svc.PurchaseTicket(context.Background(), 1, input)
	assert.ErrorIs(t, err, domainerrors.ErrTicketTypeNotFound)
}

func TestPurchaseTicket_UnknownExhibition(t *testing.T) {
	t.Parallel()

	svc, _ := newTicketService(t)

	bad := int64(999)
	input := purchaseInput()
	input.ExhibitionID = &bad
	_, err := svc.PurchaseTicket(context.Background(), 1, input)
	assert.ErrorIs(t, err, domainerrors.ErrExhibitionNotFound)
}

func TestProcessPayment_FullFlow(t *testing.T) {
	t.Parallel()

	svc, _ := newTicketService(t)
	ctx := context.Background()

	ticket, err := svc.PurchaseTicket(ctx, 1, purchaseInput())
	require.NoError(t, err)

	paid, err := svc.ProcessPayment(ctx, 1, ticket.ID)
	require.NoError(t, err)
	assert.True(t, paid.IsPaid)
	require.NotNil(t, paid.PaymentIntentID)
	assert.True(t, strings.HasPrefix(*paid.PaymentIntentID, "pi_"))
	require.NotNil(t, paid.QRCodeData)
	assert.True(t, strings.HasPrefix(*paid.QRCodeData, "data:image/png;base64,"))
}

func TestProcessPayment_ReplayRejected(t *testing.T) {
	t.Parallel()

	svc, _ := newTicketService(t)
	ctx := context.Background()

	ticket, err := svc.PurchaseTicket(ctx, 1, purchaseInput())
	require.NoError(t, err)

	_, err = svc.ProcessPayment(ctx, 1, ticket.ID)
	require.NoError(t, err)

	_, err = svc.ProcessPayment(ctx, 1, ticket.ID)
	assert.ErrorIs(t, err, domainerrors.ErrTicketAlreadyPaid)
}

func TestProcessPayment_OwnerOnly(t *testing.T) {
	t.Parallel()

	svc, _ := newTicketService(t)
	ctx := context.Background()

	ticket, err := svc.PurchaseTicket(ctx, 1, purchaseInput())
	require.NoError(t, err)

	_, err = svc.ProcessPayment(ctx, 2, ticket.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotTicketOwner)
}

func TestProcessPayment_UnknownTicket(t *testing.T) {
	t.Parallel()

	svc, _ := newTicketService(t)
	_, err := svc.ProcessPayment(context.Background(), 1, 999)
	assert.ErrorIs(t, err, domainerrors.ErrTicketNotFound)
}

func TestGetTicket_RepairsMissingQRCode(t *testing.T) {
	t.Parallel()

	svc, store := newTicketService(t)
	ctx := context.Background()

	ticket, err := svc.PurchaseTicket(ctx, 1, purchaseInput())
	require.NoError(t, err)

	// Simulate a crash between the payment write and the QR write.
	_, err = store.MarkTicketPaid(ctx, ticket.ID, "pi_crashed")
	require.NoError(t, err)

	details, err := svc.GetTicket(ctx, 1, false, ticket.ID)
	require.NoError(t, err)
	require.NotNil(t, details.QRCodeData)

	// The repaired payload is durable, not per-read.
	stored, err := store.FindTicketByID(ctx, ticket.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.QRCodeData)
}

func TestGetTicket_ForeignTicketForbidden(t *testing.T) {
	t.Parallel()

	svc, _ := newTicketService(t)
	ctx := context.Background()

	ticket, err := svc.PurchaseTicket(ctx, 1, purchaseInput())
	require.NoError(t, err)

	_, err = svc.GetTicket(ctx, 2, false, ticket.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotTicketOwner)

	// Admins may read any ticket.
	details, err := svc.GetTicket(ctx, 2, true, ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.ID, details.ID)
}

func TestGetTicket_ExhibitionFallbackTitle(t *testing.T) {
	t.Parallel()

	svc, store := newTicketService(t)
	ctx := context.Background()

	exhibitionID := int64(1)
	input := purchaseInput()
	input.ExhibitionID = &exhibitionID
	ticket, err := svc.PurchaseTicket(ctx, 1, input)
	require.NoError(t, err)

	details, err := svc.GetTicket(ctx, 1, false, ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ancient Egypt: The Eternal Life", details.ExhibitionTitle)

	// Deleting the exhibition keeps the ticket but changes the display title.
	require.NoError(t, store.DeleteExhibition(ctx, exhibitionID))

	details, err = svc.GetTicket(ctx, 1, false, ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, "General Admission", details.ExhibitionTitle)
}

func TestUseTicket_RequiresPayment(t *testing.T) {
	t.Parallel()

	svc, _ := newTicketService(t)
	ctx := context.Background()

	ticket, err := svc.PurchaseTicket(ctx, 1, purchaseInput())
	require.NoError(t, err)

	_, err = svc.UseTicket(ctx, ticket.ID)
	assert.ErrorIs(t, err, domainerrors.ErrTicketNotPaid)

	_, err = svc.ProcessPayment(ctx, 1, ticket.ID)
	require.NoError(t, err)

	used, err := svc.UseTicket(ctx, ticket.ID)
	require.NoError(t, err)
	assert.True(t, used.IsUsed)
}

func TestCancelTicket_Rules(t *testing.T) {
	t.Parallel()

	svc, _ := newTicketService(t)
	ctx := context.Background()

	ticket, err := svc.PurchaseTicket(ctx, 1, purchaseInput())
	require.NoError(t, err)

	// A stranger cannot cancel.
	err = svc.CancelTicket(ctx, 2, false, ticket.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotTicketOwner)

	// A paid ticket cannot be cancelled by its owner.
	_, err = svc.ProcessPayment(ctx, 1, ticket.ID)
	require.NoError(t, err)
	err = svc.CancelTicket(ctx, 1, false, ticket.ID)
	assert.ErrorIs(t, err, domainerrors.ErrTicketNotCancellable)

	// Admins bypass the cancellation rules.
	require.NoError(t, svc.CancelTicket(ctx, 1, true, ticket.ID))
}

func TestCancelTicket_PastVisitDate(t *testing.T) {
	t.Parallel()

	svc, _ := newTicketService(t)
	ctx := context.Background()

	input := purchaseInput()
	input.VisitDate = time.Now().Add(-24 * time.Hour)
	ticket, err := svc.PurchaseTicket(ctx, 1, input)
	require.NoError(t, err)

	err = svc.CancelTicket(ctx, 1, false, ticket.ID)
	assert.ErrorIs(t, err, domainerrors.ErrTicketNotCancellable)
}

func TestCancelTicket_UnpaidFutureSucceeds(t *testing.T) {
	t.Parallel()

	svc, store := newTicketService(t)
	ctx := context.Background()

	ticket, err := svc.PurchaseTicket(ctx, 1, purchaseInput())
	require.NoError(t, err)

	require.NoError(t, svc.CancelTicket(ctx, 1, false, ticket.ID))

	_, err = store.FindTicketByID(ctx, ticket.ID)
	assert.Error(t, err)
}

func TestListUserTickets_OnlyOwn(t *testing.T) {
	t.Parallel()

	svc, _ := newTicketService(t)
	ctx := context.Background()

	_, err := svc.PurchaseTicket(ctx, 1, purchaseInput())
	require.NoError(t, err)
	_, err = svc.PurchaseTicket(ctx, 2, purchaseInput())
	require.NoError(t, err)

	mine, err := svc.ListUserTickets(ctx, 1)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "General Admission", mine[0].TicketTypeName)

	all, err := svc.ListAllTickets(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
