package mongodb

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"musea/internal/domain/entity"
)

// Collection names.
const (
	usersCollection         = "users"
	exhibitionsCollection   = "exhibitions"
	ticketTypesCollection   = "ticketTypes"
	ticketsCollection       = "tickets"
	conversationsCollection = "conversations"
	messagesCollection      = "messages"
	analyticsCollection     = "analytics"
	testimonialsCollection  = "testimonials"
)

// Each document carries both the ObjectID and an immutable numeric sequence
// assigned at insert time. Reference fields on dependent documents store the
// referenced sequence, so resolving a reference never requires a second
// lookup through the counters.

type userDoc struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty"`
	Seq                int64              `bson:"seq"`
	Username           string             `bson:"username"`
	Password           string             `bson:"password"`
	Email              string             `bson:"email"`
	FullName           *string            `bson:"fullName,omitempty"`
	IsAdmin            bool               `bson:"isAdmin"`
	LanguagePreference string             `bson:"languagePreference"`
	CreatedAt          time.Time          `bson:"createdAt"`
}

func (d *userDoc) toDomain() *entity.User {
	return &entity.User{
		ID:                 d.Seq,
		Username:           d.Username,
		Password:           d.Password,
		Email:              d.Email,
		FullName:           d.FullName,
		IsAdmin:            d.IsAdmin,
		LanguagePreference: d.LanguagePreference,
		CreatedAt:          d.CreatedAt,
	}
}

type exhibitionDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Seq         int64              `bson:"seq"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	ImageURL    *string            `bson:"imageUrl,omitempty"`
	StartDate   time.Time          `bson:"startDate"`
	EndDate     time.Time          `bson:"endDate"`
	IsFeatured  bool               `bson:"isFeatured"`
	IsNew       bool               `bson:"isNew"`
	CreatedAt   time.Time          `bson:"createdAt"`
}

func (d *exhibitionDoc) toDomain() *entity.Exhibition {
	return &entity.Exhibition{
		ID:          d.Seq,
		Title:       d.Title,
		Description: d.Description,
		ImageURL:    d.ImageURL,
		StartDate:   d.StartDate,
		EndDate:     d.EndDate,
		IsFeatured:  d.IsFeatured,
		IsNew:       d.IsNew,
		CreatedAt:   d.CreatedAt,
	}
}

type ticketTypeDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Seq         int64              `bson:"seq"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	Price       float64            `bson:"price"`
	Color       string             `bson:"color"`
	Includes    []string           `bson:"includes"`
	IsPopular   bool               `bson:"isPopular"`
	CreatedAt   time.Time          `bson:"createdAt"`
}

func (d *ticketTypeDoc) toDomain() *entity.TicketType {
	return &entity.TicketType{
		ID:          d.Seq,
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
		Color:       d.Color,
		Includes:    d.Includes,
		IsPopular:   d.IsPopular,
		CreatedAt:   d.CreatedAt,
	}
}

type ticketDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Seq             int64              `bson:"seq"`
	UserSeq         int64              `bson:"userSeq"`
	TicketTypeSeq   int64              `bson:"ticketTypeSeq"`
	ExhibitionSeq   *int64             `bson:"exhibitionSeq,omitempty"`
	Quantity        int                `bson:"quantity"`
	VisitDate       time.Time          `bson:"visitDate"`
	TotalPrice      float64            `bson:"totalPrice"`
	IsPaid          bool               `bson:"isPaid"`
	PaymentIntentID *string            `bson:"paymentIntentId,omitempty"`
	QRCodeData      *string            `bson:"qrCodeData,omitempty"`
	IsUsed          bool               `bson:"isUsed"`
	CreatedAt       time.Time          `bson:"createdAt"`
}

func (d *ticketDoc) toDomain() *entity.Ticket {
	return &entity.Ticket{
		ID:              d.Seq,
		UserID:          d.UserSeq,
		TicketTypeID:    d.TicketTypeSeq,
		ExhibitionID:    d.ExhibitionSeq,
		Quantity:        d.Quantity,
		VisitDate:       d.VisitDate,
		TotalPrice:      d.TotalPrice,
		IsPaid:          d.IsPaid,
		PaymentIntentID: d.PaymentIntentID,
		QRCodeData:      d.QRCodeData,
		IsUsed:          d.IsUsed,
		CreatedAt:       d.CreatedAt,
	}
}

type conversationDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Seq       int64              `bson:"seq"`
	UserSeq   *int64             `bson:"userSeq,omitempty"`
	SessionID string             `bson:"sessionId"`
	Language  string             `bson:"language"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func (d *conversationDoc) toDomain() *entity.Conversation {
	return &entity.Conversation{
		ID:        d.Seq,
		UserID:    d.UserSeq,
		SessionID: d.SessionID,
		Language:  d.Language,
		CreatedAt: d.CreatedAt,
	}
}

type messageDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Seq             int64              `bson:"seq"`
	ConversationSeq int64              `bson:"conversationSeq"`
	IsFromUser      bool               `bson:"isFromUser"`
	Content         string             `bson:"content"`
	CreatedAt       time.Time          `bson:"createdAt"`
}

func (d *messageDoc) toDomain() *entity.Message {
	return &entity.Message{
		ID:             d.Seq,
		ConversationID: d.ConversationSeq,
		IsFromUser:     d.IsFromUser,
		Content:        d.Content,
		CreatedAt:      d.CreatedAt,
	}
}

type analyticsDoc struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty"`
	Seq                  int64              `bson:"seq"`
	Date                 time.Time          `bson:"date"`
	VisitorCount         int                `bson:"visitorCount"`
	Revenue              float64            `bson:"revenue"`
	PopularExhibitionSeq *int64             `bson:"popularExhibitionSeq,omitempty"`
	AverageVisitDuration *int               `bson:"averageVisitDuration,omitempty"`
	CreatedAt            time.Time          `bson:"createdAt"`
}

func (d *analyticsDoc) toDomain() *entity.AnalyticsEntry {
	return &entity.AnalyticsEntry{
		ID:                   d.Seq,
		Date:                 d.Date,
		VisitorCount:         d.VisitorCount,
		Revenue:              d.Revenue,
		PopularExhibitionID:  d.PopularExhibitionSeq,
		AverageVisitDuration: d.AverageVisitDuration,
		CreatedAt:            d.CreatedAt,
	}
}

type testimonialDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Seq        int64              `bson:"seq"`
	Name       string             `bson:"name"`
	Role       *string            `bson:"role,omitempty"`
	Content    string             `bson:"content"`
	Rating     int                `bson:"rating"`
	AvatarURL  *string            `bson:"avatarUrl,omitempty"`
	IsApproved bool               `bson:"isApproved"`
	CreatedAt  time.Time          `bson:"createdAt"`
}

func (d *testimonialDoc) toDomain() *entity.Testimonial {
	return &entity.Testimonial{
		ID:         d.Seq,
		Name:       d.Name,
		Role:       d.Role,
		Content:    d.Content,
		Rating:     d.Rating,
		AvatarURL:  d.AvatarURL,
		IsApproved: d.IsApproved,
		CreatedAt:  d.CreatedAt,
	}
}
