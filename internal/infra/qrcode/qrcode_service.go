// Package qrcode renders ticket entry payloads as QR code images.
package qrcode

import (
	"encoding/base64"
	"encoding/json"
	"time"

	qr "github.com/skip2/go-qrcode"

	"musea/config"
	"musea/internal/domain/entity"
	"musea/internal/domain/service"
	"musea/internal/errors"
)

const (
	defaultSize     = 256
	dataURLPrefix   = "data:image/png;base64,"
	visitDateLayout = "2006-01-02"
)

// ticketPayload is the JSON document embedded in a ticket QR code. Entry
// staff scan it to look the ticket up and verify it against the booking.
type ticketPayload struct {
	TicketID     int64  `json:"ticketId"`
	UserID       int64  `json:"userId"`
	TicketTypeID int64  `json:"ticketTypeId"`
	Quantity     int    `json:"quantity"`
	VisitDate    string `json:"visitDate"`
	IsPaid       bool   `json:"isPaid"`
}

type qrCodeService struct {
	size  int
	level qr.RecoveryLevel
}

// NewQRCodeService is the constructor for the QR code service.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size := defaultSize
	level := qr.Medium
	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		level = recoveryLevel(cfg.QRCode.ErrorCorrectionLevel)
	}

	return &qrCodeService{size: size, level: level}
}

func recoveryLevel(name string) qr.RecoveryLevel {
	switch name {
	case "low", "L":
		return qr.Low
	case "high", "Q":
		return qr.High
	case "highest", "H":
		return qr.Highest
	default:
		return qr.Medium
	}
}

// GenerateTicketQR renders the ticket's entry payload as a PNG data URL.
func (s *qrCodeService) GenerateTicketQR(ticket *entity.Ticket) (string, error) {
	if ticket == nil {
		return "", errors.New("ticket is nil")
	}

	payload := ticketPayload{
		TicketID:     ticket.ID,
		UserID:       ticket.UserID,
		TicketTypeID: ticket.TicketTypeID,
		Quantity:     ticket.Quantity,
		VisitDate:    ticket.VisitDate.Format(visitDateLayout),
		IsPaid:       ticket.IsPaid,
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return "", errors.Wrap(err, "marshal ticket payload")
	}

	png, err := qr.Encode(string(raw), s.level, s.size)
	if err != nil {
		return "", errors.Wrap(err, "encode qr code")
	}

	return dataURLPrefix + base64.StdEncoding.EncodeToString(png), nil
}

// ParseTicketQR decodes a scanned payload and returns the ticket ID.
func (s *qrCodeService) ParseTicketQR(qrData string) (int64, error) {
	var payload ticketPayload
	if err := json.Unmarshal([]byte(qrData), &payload); err != nil {
		return 0, errors.Wrap(err, "unmarshal ticket payload")
	}
	if payload.TicketID <= 0 {
		return 0, errors.New("payload has no ticket id")
	}
	if _, err := time.Parse(visitDateLayout, payload.VisitDate); err != nil {
		return 0, errors.Wrap(err, "parse visit date")
	}

	return payload.TicketID, nil
}
