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

// Conversation operations

func (s *Store) CreateConversation(ctx context.Context, conversation *entity.Conversation) error {
	seq, err := nextSeq(ctx, s.db, conversationsCollection)
	if err != nil {
		return err
	}

	if conversation.Language == "" {
		conversation.Language = "en"
	}
	if conversation.CreatedAt.IsZero() {
		conversation.CreatedAt = time.Now()
	}

	doc := &conversationDoc{
		Seq:       seq,
		UserSeq:   conversation.UserID,
		SessionID: conversation.SessionID,
		Language:  conversation.Language,
		CreatedAt: conversation.CreatedAt,
	}
	if _, err := s.db.Collection(conversationsCollection).InsertOne(ctx, doc); err != nil {
		return errors.Wrap(err, "failed to insert conversation")
	}

	conversation.ID = seq

	return nil
}

func (s *Store) FindConversationByID(ctx context.Context, id int64) (*entity.Conversation, error) {
	var doc conversationDoc
	if err := s.db.Collection(conversationsCollection).FindOne(ctx, bson.M{"seq": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrConversationNotFound
		}

		return nil, errors.Wrap(err, "failed to find conversation")
	}

	return doc.toDomain(), nil
}

func (s *Store) CreateMessage(ctx context.Context, message *entity.Message) error {
	seq, err := nextSeq(ctx, s.db, messagesCollection)
	if err != nil {
		return err
	}

	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}

	doc := &messageDoc{
		Seq:             seq,
		ConversationSeq: message.ConversationID,
		IsFromUser:      message.IsFromUser,
		Content:         message.Content,
		CreatedAt:       message.CreatedAt,
	}
	if _, err := s.db.Collection(messagesCollection).InsertOne(ctx, doc); err != nil {
		return errors.Wrap(err, "failed to insert message")
	}

	message.ID = seq

	return nil
}

func (s *Store) ListMessagesByConversation(ctx context.Context, conversationID int64) ([]*entity.Message, error) {
	cursor, err := s.db.Collection(messagesCollection).Find(ctx,
		bson.M{"conversationSeq": conversationID},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "seq", Value: 1}}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list messages")
	}

	var docs []*messageDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode messages")
	}

	messages := make([]*entity.Message, 0, len(docs))
	for _, doc := range docs {
		messages = append(messages, doc.toDomain())
	}

	return messages, nil
}
