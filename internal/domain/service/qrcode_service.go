package service

import "musea/internal/domain/entity"

// QRCodeService defines the interface for ticket QR payload generation.
type QRCodeService interface {
	// GenerateTicketQR renders a ticket's entry-validation payload as a PNG
	// data URL. Regeneration overwrites any previous payload.
	GenerateTicketQR(ticket *entity.Ticket) (string, error)

	// ParseTicketQR decodes a payload produced by GenerateTicketQR and
	// returns the ticket ID it references.
	ParseTicketQR(qrData string) (int64, error)
}
