package mongodb

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"musea/config"
	"musea/internal/domain/entity"
	"musea/internal/domain/repository"
	"musea/internal/errors"
	"musea/internal/infra/persistence/fixture"
)

// Store implements the aggregate persistence port on MongoDB. All lookups go
// through the numeric sequence, never the ObjectID.
type Store struct {
	db     *mongo.Database
	logger *slog.Logger
}

var _ repository.Store = (*Store)(nil)

// NewStore is the constructor for the MongoDB store.
func NewStore(client *mongo.Client, cfg *config.Config, logger *slog.Logger) *Store {
	return &Store{
		db:     client.Database(cfg.Mongo.Database),
		logger: logger,
	}
}

// InitializeData creates indexes and seeds the fixture catalog when the
// users collection is empty.
func (s *Store) InitializeData(ctx context.Context) error {
	if err := s.ensureIndexes(ctx); err != nil {
		return err
	}

	userCount, err := s.db.Collection(usersCollection).CountDocuments(ctx, bson.M{})
	if err != nil {
		return errors.Wrap(err, "failed to count users")
	}
	if userCount > 0 {
		return nil
	}

	s.logger.Info("seeding fixture catalog into MongoDB")

	if err := s.CreateUser(ctx, fixture.AdminUser()); err != nil {
		return err
	}
	for _, exhibition := range fixture.Exhibitions() {
		if err := s.CreateExhibition(ctx, exhibition); err != nil {
			return err
		}
	}
	for _, ticketType := range fixture.TicketTypes() {
		if err := s.CreateTicketType(ctx, ticketType); err != nil {
			return err
		}
	}
	for _, testimonial := range fixture.Testimonials() {
		if err := s.CreateTestimonial(ctx, testimonial); err != nil {
			return err
		}
	}

	return nil
}

func (s *Store) ensureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	userIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "seq", Value: 1}}, Options: unique},
	}
	if _, err := s.db.Collection(usersCollection).Indexes().CreateMany(ctx, userIndexes); err != nil {
		return errors.Wrap(err, "failed to create user indexes")
	}

	for _, collection := range []string{
		exhibitionsCollection,
		ticketTypesCollection,
		ticketsCollection,
		conversationsCollection,
		messagesCollection,
		analyticsCollection,
		testimonialsCollection,
	} {
		index := mongo.IndexModel{Keys: bson.D{{Key: "seq", Value: 1}}, Options: unique}
		if _, err := s.db.Collection(collection).Indexes().CreateOne(ctx, index); err != nil {
			return errors.Wrapf(err, "failed to create seq index for %s", collection)
		}
	}

	return nil
}

// User operations

func (s *Store) CreateUser(ctx context.Context, user *entity.User) error {
	collection := s.db.Collection(usersCollection)

	duplicateFilter := bson.M{"$or": bson.A{
		bson.M{"username": user.Username},
		bson.M{"email": user.Email},
	}}
	count, err := collection.CountDocuments(ctx, duplicateFilter)
	if err != nil {
		return errors.Wrap(err, "failed to check user uniqueness")
	}
	if count > 0 {
		return repository.ErrDuplicateUser
	}

	seq, err := nextSeq(ctx, s.db, usersCollection)
	if err != nil {
		return err
	}

	if user.LanguagePreference == "" {
		user.LanguagePreference = "en"
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	doc := &userDoc{
		Seq:                seq,
		Username:           user.Username,
		Password:           user.Password,
		Email:              user.Email,
		FullName:           user.FullName,
		IsAdmin:            user.IsAdmin,
		LanguagePreference: user.LanguagePreference,
		CreatedAt:          user.CreatedAt,
	}
	if _, err := collection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateUser
		}

		return errors.Wrap(err, "failed to insert user")
	}

	user.ID = seq

	return nil
}

func (s *Store) FindUserByID(ctx context.Context, id int64) (*entity.User, error) {
	return s.findUser(ctx, bson.M{"seq": id})
}

func (s *Store) FindUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	return s.findUser(ctx, bson.M{"username": username})
}

func (s *Store) FindUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	return s.findUser(ctx, bson.M{"email": email})
}

func (s *Store) findUser(ctx context.Context, filter bson.M) (*entity.User, error) {
	var doc userDoc
	if err := s.db.Collection(usersCollection).FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return doc.toDomain(), nil
}

func (s *Store) ListUsers(ctx context.Context) ([]*entity.User, error) {
	cursor, err := s.db.Collection(usersCollection).Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "seq", Value: -1}}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	var docs []*userDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode users")
	}

	users := make([]*entity.User, 0, len(docs))
	for _, doc := range docs {
		users = append(users, doc.toDomain())
	}

	return users, nil
}

// Exhibition operations

func (s *Store) CreateExhibition(ctx context.Context, exhibition *entity.Exhibition) error {
	seq, err := nextSeq(ctx, s.db, exhibitionsCollection)
	if err != nil {
		return err
	}

	if exhibition.CreatedAt.IsZero() {
		exhibition.CreatedAt = time.Now()
	}

	doc := &exhibitionDoc{
		Seq:         seq,
		Title:       exhibition.Title,
		Description: exhibition.Description,
		ImageURL:    exhibition.ImageURL,
		StartDate:   exhibition.StartDate,
		EndDate:     exhibition.EndDate,
		IsFeatured:  exhibition.IsFeatured,
		IsNew:       exhibition.IsNew,
		CreatedAt:   exhibition.CreatedAt,
	}
	if _, err := s.db.Collection(exhibitionsCollection).InsertOne(ctx, doc); err != nil {
		return errors.Wrap(err, "failed to insert exhibition")
	}

	exhibition.ID = seq

	return nil
}

func (s *Store) FindExhibitionByID(ctx context.Context, id int64) (*entity.Exhibition, error) {
	var doc exhibitionDoc
	if err := s.db.Collection(exhibitionsCollection).FindOne(ctx, bson.M{"seq": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrExhibitionNotFound
		}

		return nil, errors.Wrap(err, "failed to find exhibition")
	}

	return doc.toDomain(), nil
}

func (s *Store) ListExhibitions(ctx context.Context) ([]*entity.Exhibition, error) {
	return s.listExhibitions(ctx, bson.M{})
}

func (s *Store) ListFeaturedExhibitions(ctx context.Context) ([]*entity.Exhibition, error) {
	return s.listExhibitions(ctx, bson.M{"isFeatured": true})
}

func (s *Store) listExhibitions(ctx context.Context, filter bson.M) ([]*entity.Exhibition, error) {
	cursor, err := s.db.Collection(exhibitionsCollection).Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "startDate", Value: 1}}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list exhibitions")
	}

	var docs []*exhibitionDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode exhibitions")
	}

	exhibitions := make([]*entity.Exhibition, 0, len(docs))
	for _, doc := range docs {
		exhibitions = append(exhibitions, doc.toDomain())
	}

	return exhibitions, nil
}

func (s *Store) UpdateExhibition(ctx context.Context, exhibition *entity.Exhibition) error {
	result, err := s.db.Collection(exhibitionsCollection).UpdateOne(ctx,
		bson.M{"seq": exhibition.ID},
		bson.M{"$set": bson.M{
			"title":       exhibition.Title,
			"description": exhibition.Description,
			"imageUrl":    exhibition.ImageURL,
			"startDate":   exhibition.StartDate,
			"endDate":     exhibition.EndDate,
			"isFeatured":  exhibition.IsFeatured,
			"isNew":       exhibition.IsNew,
		}})
	if err != nil {
		return errors.Wrap(err, "failed to update exhibition")
	}
	if result.MatchedCount == 0 {
		return repository.ErrExhibitionNotFound
	}

	return nil
}

func (s *Store) DeleteExhibition(ctx context.Context, id int64) error {
	result, err := s.db.Collection(exhibitionsCollection).DeleteOne(ctx, bson.M{"seq": id})
	if err != nil {
		return errors.Wrap(err, "failed to delete exhibition")
	}
	if result.DeletedCount == 0 {
		return repository.ErrExhibitionNotFound
	}

	return nil
}

// Ticket type operations

func (s *Store) CreateTicketType(ctx context.Context, ticketType *entity.TicketType) error {
	seq, err := nextSeq(ctx, s.db, ticketTypesCollection)
	if err != nil {
		return err
	}

	if ticketType.Color == "" {
		ticketType.Color = "primary"
	}
	if ticketType.CreatedAt.IsZero() {
		ticketType.CreatedAt = time.Now()
	}

	doc := &ticketTypeDoc{
		Seq:         seq,
		Name:        ticketType.Name,
		Description: ticketType.Description,
		Price:       ticketType.Price,
		Color:       ticketType.Color,
		Includes:    ticketType.Includes,
		IsPopular:   ticketType.IsPopular,
		CreatedAt:   ticketType.CreatedAt,
	}
	if _, err := s.db.Collection(ticketTypesCollection).InsertOne(ctx, doc); err != nil {
		return errors.Wrap(err, "failed to insert ticket type")
	}

	ticketType.ID = seq

	return nil
}

func (s *Store) FindTicketTypeByID(ctx context.Context, id int64) (*entity.TicketType, error) {
	var doc ticketTypeDoc
	if err := s.db.Collection(ticketTypesCollection).FindOne(ctx, bson.M{"seq": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrTicketTypeNotFound
		}

		return nil, errors.Wrap(err, "failed to find ticket type")
	}

	return doc.toDomain(), nil
}

func (s *Store) ListTicketTypes(ctx context.Context) ([]*entity.TicketType, error) {
	cursor, err := s.db.Collection(ticketTypesCollection).Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "price", Value: 1}}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ticket types")
	}

	var docs []*ticketTypeDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode ticket types")
	}

	ticketTypes := make([]*entity.TicketType, 0, len(docs))
	for _, doc := range docs {
		ticketTypes = append(ticketTypes, doc.toDomain())
	}

	return ticketTypes, nil
}

func (s *Store) UpdateTicketType(ctx context.Context, ticketType *entity.TicketType) error {
	result, err := s.db.Collection(ticketTypesCollection).UpdateOne(ctx,
		bson.M{"seq": ticketType.ID},
		bson.M{"$set": bson.M{
			"name":        ticketType.Name,
			"description": ticketType.Description,
			"price":       ticketType.Price,
			"color":       ticketType.Color,
			"includes":    ticketType.Includes,
			"isPopular":   ticketType.IsPopular,
		}})
	if err != nil {
		return errors.Wrap(err, "failed to update ticket type")
	}
	if result.MatchedCount == 0 {
		return repository.ErrTicketTypeNotFound
	}

	return nil
}

func (s *Store) DeleteTicketType(ctx context.Context, id int64) error {
	result, err := s.db.Collection(ticketTypesCollection).DeleteOne(ctx, bson.M{"seq": id})
	if err != nil {
		return errors.Wrap(err, "failed to delete ticket type")
	}
	if result.DeletedCount == 0 {
		return repository.ErrTicketTypeNotFound
	}

	return nil
}
