package entity

import "time"

// Ticket is a timed-entry purchase owned by exactly one user.
//
// Lifecycle: created unpaid and unused; marking it paid assigns the payment
// reference and triggers QR generation; a paid ticket may later be marked
// used. Used tickets never transition back, and paid tickets cannot be
// cancelled through the API.
type Ticket struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"userId"`
	TicketTypeID    int64     `json:"ticketTypeId"`
	ExhibitionID    *int64    `json:"exhibitionId,omitempty"` // Nil means general admission.
	Quantity        int       `json:"quantity"`
	VisitDate       time.Time `json:"visitDate"`
	TotalPrice      float64   `json:"totalPrice"` // ticketType.price * quantity at creation time.
	IsPaid          bool      `json:"isPaid"`
	PaymentIntentID *string   `json:"paymentIntentId,omitempty"`
	QRCodeData      *string   `json:"qrCodeData,omitempty"` // PNG data URL, set on payment.
	IsUsed          bool      `json:"isUsed"`
	CreatedAt       time.Time `json:"createdAt"`
}
