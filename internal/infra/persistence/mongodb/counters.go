package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"musea/internal/errors"
)

const countersCollection = "counters"

// counterDoc tracks the last issued sequence for one entity collection.
type counterDoc struct {
	ID  string `bson:"_id"`
	Seq int64  `bson:"seq"`
}

// nextSeq atomically increments and returns the sequence for a collection.
// The upsert makes the first call on a fresh database return 1.
func nextSeq(ctx context.Context, db *mongo.Database, collection string) (int64, error) {
	var counter counterDoc

	err := db.Collection(countersCollection).FindOneAndUpdate(ctx,
		bson.M{"_id": collection},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().
			SetUpsert(true).
			SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to allocate sequence for %s", collection)
	}

	return counter.Seq, nil
}
