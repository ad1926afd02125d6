package dao

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	UsersCollection        = "users"
	CampsCollection        = "camps"
	ParticipantsCollection = "participants"
	PaymentsCollection     = "payments"
	FeedbacksCollection    = "feedbacks"
	ImagesCollection       = "images"
)

var ErrInvalidID = errors.New("invalid id")

func InitCollections(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		UsersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		ParticipantsCollection: {
			{Keys: bson.D{{Key: "participantEmail", Value: 1}}},
			{Keys: bson.D{{Key: "campId", Value: 1}}},
		},
		PaymentsCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}},
			{Keys: bson.D{{Key: "campId", Value: 1}}},
		},
		ImagesCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}},
		},
	}

	for name, models := range indexes {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s -> %w", name, err)
		}
	}

	return nil
}

func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return oid, nil
}

// ParseID validates a hex document id without touching the store.
func ParseID(id string) error {
	_, err := parseObjectID(id)
	return err
}
