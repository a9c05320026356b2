package qrcode

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"musea/config"
	"musea/internal/domain/entity"
)

func testTicket() *entity.Ticket {
	return &entity.Ticket{
		ID:           5,
		UserID:       2,
		TicketTypeID: 1,
		Quantity:     3,
		VisitDate:    time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		IsPaid:       true,
	}
}

func TestGenerateTicketQR_DataURL(t *testing.T) {
	t.Parallel()

	svc := NewQRCodeService(&config.Config{})

	dataURL, err := svc.GenerateTicketQR(testTicket())
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(dataURL, "data:image/png;base64,"))

	png, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(dataURL, "data:image/png;base64,"))
	require.NoError(t, err)
	// PNG magic bytes.
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestGenerateTicketQR_NilTicket(t *testing.T) {
	t.Parallel()

	svc := NewQRCodeService(&config.Config{})
	_, err := svc.GenerateTicketQR(nil)
	assert.Error(t, err)
}

func TestParseTicketQR(t *testing.T) {
	t.Parallel()

	svc := NewQRCodeService(&config.Config{})
	payload, err := json.Marshal(ticketPayload{
		TicketID:     5,
		UserID:       2,
		TicketTypeID: 1,
		Quantity:     3,
		VisitDate:    "2026-09-12",
		IsPaid:       true,
	})
	require.NoError(t, err)

	id, err := svc.ParseTicketQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, int64(5), id)
}

func TestParseTicketQR_Invalid(t *testing.T) {
	t.Parallel()

	svc := NewQRCodeService(&config.Config{})

	_, err := svc.ParseTicketQR("not json")
	assert.Error(t, err)

	_, err = svc.ParseTicketQR(`{"ticketId":0,"visitDate":"2026-09-12"}`)
	assert.Error(t, err)

	_, err = svc.ParseTicketQR(`{"ticketId":5,"visitDate":"tomorrow"}`)
	assert.Error(t, err)
}

func TestRecoveryLevel(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "high"}}
	svc, ok := NewQRCodeService(cfg).(*qrCodeService)
	require.True(t, ok)
	assert.Equal(t, 128, svc.size)
}
