package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"musea/internal/domain/entity"
	"musea/internal/domain/repository"
	"musea/internal/errors"
)

// Ticket operations

func (s *Store) CreateTicket(ctx context.Context, ticket *entity.Ticket) error {
	seq, err := nextSeq(ctx, s.db, ticketsCollection)
	if err != nil {
		return err
	}

	if ticket.CreatedAt.IsZero() {
		ticket.CreatedAt = time.Now()
	}

	doc := &ticketDoc{
		Seq:             seq,
		UserSeq:         ticket.UserID,
		TicketTypeSeq:   ticket.TicketTypeID,
		ExhibitionSeq:   ticket.ExhibitionID,
		Quantity:        ticket.Quantity,
		VisitDate:       ticket.VisitDate,
		TotalPrice:      ticket.TotalPrice,
		IsPaid:          ticket.IsPaid,
		PaymentIntentID: ticket.PaymentIntentID,
		QRCodeData:      ticket.QRCodeData,
		IsUsed:          ticket.IsUsed,
		CreatedAt:       ticket.CreatedAt,
	}
	if _, err := s.db.Collection(ticketsCollection).InsertOne(ctx, doc); err != nil {
		return errors.Wrap(err, "failed to insert ticket")
	}

	ticket.ID = seq

	return nil
}

func (s *Store) FindTicketByID(ctx context.Context, id int64) (*entity.Ticket, error) {
	var doc ticketDoc
	if err := s.db.Collection(ticketsCollection).FindOne(ctx, bson.M{"seq": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrTicketNotFound
		}

		return nil, errors.Wrap(err, "failed to find ticket")
	}

	return doc.toDomain(), nil
}

func (s *Store) ListTickets(ctx context.Context) ([]*entity.Ticket, error) {
	return s.listTickets(ctx, bson.M{})
}

func (s *Store) ListTicketsByUser(ctx context.Context, userID int64) ([]*entity.Ticket, error) {
	return s.listTickets(ctx, bson.M{"userSeq": userID})
}

func (s *Store) listTickets(ctx context.Context, filter bson.M) ([]*entity.Ticket, error) {
	cursor, err := s.db.Collection(ticketsCollection).Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "seq", Value: -1}}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tickets")
	}

	var docs []*ticketDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode tickets")
	}

	tickets := make([]*entity.Ticket, 0, len(docs))
	for _, doc := range docs {
		tickets = append(tickets, doc.toDomain())
	}

	return tickets, nil
}

func (s *Store) MarkTicketPaid(ctx context.Context, id int64, paymentIntentID string) (*entity.Ticket, error) {
	var doc ticketDoc

	err := s.db.Collection(ticketsCollection).FindOneAndUpdate(ctx,
		bson.M{"seq": id},
		bson.M{"$set": bson.M{
			"isPaid":          true,
			"paymentIntentId": paymentIntentID,
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrTicketNotFound
		}

		return nil, errors.Wrap(err, "failed to mark ticket paid")
	}

	return doc.toDomain(), nil
}

func (s *Store) SetTicketQRCode(ctx context.Context, id int64, qrCodeData string) error {
	result, err := s.db.Collection(ticketsCollection).UpdateOne(ctx,
		bson.M{"seq": id},
		bson.M{"$set": bson.M{"qrCodeData": qrCodeData}})
	if err != nil {
		return errors.Wrap(err, "failed to set ticket QR code")
	}
	if result.MatchedCount == 0 {
		return repository.ErrTicketNotFound
	}

	return nil
}

func (s *Store) MarkTicketUsed(ctx context.Context, id int64) (*entity.Ticket, error) {
	var doc ticketDoc

	err := s.db.Collection(ticketsCollection).FindOneAndUpdate(ctx,
		bson.M{"seq": id},
		bson.M{"$set": bson.M{"isUsed": true}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrTicketNotFound
		}

		return nil, errors.Wrap(err, "failed to mark ticket used")
	}

	return doc.toDomain(), nil
}

func (s *Store) DeleteTicket(ctx context.Context, id int64) error {
	result, err := s.db.Collection(ticketsCollection).DeleteOne(ctx, bson.M{"seq": id})
	if err != nil {
		return errors.Wrap(err, "failed to delete ticket")
	}
	if result.DeletedCount == 0 {
		return repository.ErrTicketNotFound
	}

	return nil
}
