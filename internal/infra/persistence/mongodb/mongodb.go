// Package mongodb implements the persistence port on MongoDB.
//
// Documents are keyed by ObjectID but additionally carry an immutable
// numeric sequence assigned from a counters collection. The adapter exposes
// those sequences through the numeric-ID repository interfaces, so the rest
// of the application never sees ObjectIDs.
package mongodb

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"musea/config"
	"musea/internal/errors"
)

const defaultConnectTimeout = 10 * time.Second

// Connect dials MongoDB and verifies the connection with a ping. Callers own
// the returned client and must Disconnect it on shutdown.
func Connect(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*mongo.Client, error) {
	if cfg.Mongo == nil || cfg.Mongo.URI == "" {
		return nil, errors.New("mongo is not configured")
	}

	timeout := cfg.Mongo.ConnectTimeout
	if timeout <= 0 {
		timeout = defaultConnectTimeout
	}

	dialCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(dialCtx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to MongoDB")
	}

	if err := client.Ping(dialCtx, readpref.Primary()); err != nil {
		// Release the topology before reporting failure.
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), time.Second)
		defer disconnectCancel()
		_ = client.Disconnect(disconnectCtx)

		return nil, errors.Wrap(err, "failed to ping MongoDB")
	}

	logger.Info("connected to MongoDB", slog.String("database", cfg.Mongo.Database))

	return client, nil
}
