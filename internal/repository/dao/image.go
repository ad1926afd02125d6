package dao

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type GeneratedImage struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Email     string             `bson:"email"`
	Name      string             `bson:"name,omitempty"`
	Prompt    string             `bson:"prompt"`
	Category  string             `bson:"category"`
	ImageURL  string             `bson:"imageUrl"`
	CreatedAt time.Time          `bson:"createdAt"`
}

type ImageDAO struct {
	coll *mongo.Collection
}

func NewImageDAO(db *mongo.Database) *ImageDAO {
	return &ImageDAO{
		coll: db.Collection(ImagesCollection),
	}
}

func (d *ImageDAO) Insert(ctx context.Context, img GeneratedImage) (InsertResult, error) {
	img.ID = primitive.NilObjectID
	if img.CreatedAt.IsZero() {
		img.CreatedAt = time.Now().UTC()
	}

	result, err := d.coll.InsertOne(ctx, img)
	if err != nil {
		return InsertResult{}, err
	}

	id, _ := result.InsertedID.(primitive.ObjectID)
	return InsertResult{InsertedID: id}, nil
}

func (d *ImageDAO) FindByEmail(ctx context.Context, email string) ([]GeneratedImage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := d.coll.Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, err
	}

	images := []GeneratedImage{}
	if err = cursor.All(ctx, &images); err != nil {
		return nil, err
	}

	return images, nil
}
