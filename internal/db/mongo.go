package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/vietanh2810/medicamp-api/internal/config"
	"github.com/vietanh2810/medicamp-api/internal/repository/dao"
)

// OpenMongo connects, pings and prepares the collections.
func OpenMongo(ctx context.Context, conf *config.MongoConfig) (*mongo.Client, *mongo.Database, error) {
	timeout := conf.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	opts := options.Client().
		ApplyURI(conf.URI).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("mongo.Connect -> %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err = client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("client.Ping -> %w", err)
	}

	database := client.Database(conf.Database)
	if err = dao.InitCollections(pingCtx, database); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("dao.InitCollections -> %w", err)
	}

	zap.L().Info("connected to mongo", zap.String("database", conf.Database))

	return client, database, nil
}

func CloseMongo(ctx context.Context, client *mongo.Client) {
	if client == nil {
		return
	}

	if err := client.Disconnect(ctx); err != nil {
		zap.L().Error("failed to disconnect mongo", zap.Error(err))
		return
	}

	zap.L().Info("disconnected from mongo")
}
