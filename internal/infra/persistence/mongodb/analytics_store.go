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

// Analytics operations

func (s *Store) CreateAnalyticsEntry(ctx context.Context, entry *entity.AnalyticsEntry) error {
	seq, err := nextSeq(ctx, s.db, analyticsCollection)
	if err != nil {
		return err
	}

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	doc := &analyticsDoc{
		Seq:                  seq,
		Date:                 entry.Date,
		VisitorCount:         entry.VisitorCount,
		Revenue:              entry.Revenue,
		PopularExhibitionSeq: entry.PopularExhibitionID,
		AverageVisitDuration: entry.AverageVisitDuration,
		CreatedAt:            entry.CreatedAt,
	}
	if _, err := s.db.Collection(analyticsCollection).InsertOne(ctx, doc); err != nil {
		return errors.Wrap(err, "failed to insert analytics entry")
	}

	entry.ID = seq

	return nil
}

func (s *Store) ListAnalyticsEntries(ctx context.Context) ([]*entity.AnalyticsEntry, error) {
	cursor, err := s.db.Collection(analyticsCollection).Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "seq", Value: -1}}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list analytics entries")
	}

	var docs []*analyticsDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode analytics entries")
	}

	entries := make([]*entity.AnalyticsEntry, 0, len(docs))
	for _, doc := range docs {
		entries = append(entries, doc.toDomain())
	}

	return entries, nil
}

// Testimonial operations

func (s *Store) CreateTestimonial(ctx context.Context, testimonial *entity.Testimonial) error {
	seq, err := nextSeq(ctx, s.db, testimonialsCollection)
	if err != nil {
		return err
	}

	if testimonial.CreatedAt.IsZero() {
		testimonial.CreatedAt = time.Now()
	}

	doc := &testimonialDoc{
		Seq:        seq,
		Name:       testimonial.Name,
		Role:       testimonial.Role,
		Content:    testimonial.Content,
		Rating:     testimonial.Rating,
		AvatarURL:  testimonial.AvatarURL,
		IsApproved: testimonial.IsApproved,
		CreatedAt:  testimonial.CreatedAt,
	}
	if _, err := s.db.Collection(testimonialsCollection).InsertOne(ctx, doc); err != nil {
		return errors.Wrap(err, "failed to insert testimonial")
	}

	testimonial.ID = seq

	return nil
}

func (s *Store) ListApprovedTestimonials(ctx context.Context) ([]*entity.Testimonial, error) {
	cursor, err := s.db.Collection(testimonialsCollection).Find(ctx,
		bson.M{"isApproved": true},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "seq", Value: -1}}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list approved testimonials")
	}

	var docs []*testimonialDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode testimonials")
	}

	testimonials := make([]*entity.Testimonial, 0, len(docs))
	for _, doc := range docs {
		testimonials = append(testimonials, doc.toDomain())
	}

	return testimonials, nil
}

func (s *Store) ApproveTestimonial(ctx context.Context, id int64) (*entity.Testimonial, error) {
	var doc testimonialDoc

	err := s.db.Collection(testimonialsCollection).FindOneAndUpdate(ctx,
		bson.M{"seq": id},
		bson.M{"$set": bson.M{"isApproved": true}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrTestimonialNotFound
		}

		return nil, errors.Wrap(err, "failed to approve testimonial")
	}

	return doc.toDomain(), nil
}
