package dao

import (
	"context"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Feedback struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Email    string             `bson:"email"`
	Name     string             `bson:"name"`
	Image    string             `bson:"image,omitempty"`
	Rating   int                `bson:"rating"`
	Feedback string             `bson:"feedback"`
	CampName string             `bson:"campName,omitempty"`
	Date     time.Time          `bson:"date"`
}

type FeedbackSummary struct {
	Count         int64
	AverageRating float64
	Ratings       map[string]int64
	Latest        []Feedback
}

type FeedbackDAO struct {
	coll *mongo.Collection
}

func NewFeedbackDAO(db *mongo.Database) *FeedbackDAO {
	return &FeedbackDAO{
		coll: db.Collection(FeedbacksCollection),
	}
}

func (d *FeedbackDAO) Insert(ctx context.Context, f Feedback) (InsertResult, error) {
	f.ID = primitive.NilObjectID
	if f.Date.IsZero() {
		f.Date = time.Now().UTC()
	}

	result, err := d.coll.InsertOne(ctx, f)
	if err != nil {
		return InsertResult{}, err
	}

	id, _ := result.InsertedID.(primitive.ObjectID)
	return InsertResult{InsertedID: id}, nil
}

func (d *FeedbackDAO) FindAll(ctx context.Context, limit int64) ([]Feedback, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "_id", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := d.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	feedbacks := []Feedback{}
	if err = cursor.All(ctx, &feedbacks); err != nil {
		return nil, err
	}

	return feedbacks, nil
}

type summaryFacet struct {
	Totals []struct {
		Count   int64   `bson:"count"`
		Average float64 `bson:"average"`
	} `bson:"totals"`
	Ratings []struct {
		Rating int   `bson:"_id"`
		Count  int64 `bson:"count"`
	} `bson:"ratings"`
	Latest []Feedback `bson:"latest"`
}

// Summary computes totals, the rating histogram and the latest entries in one $facet read.
func (d *FeedbackDAO) Summary(ctx context.Context, latest int64) (FeedbackSummary, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$facet", Value: bson.M{
			"totals": bson.A{
				bson.M{"$group": bson.M{"_id": nil, "count": bson.M{"$sum": 1}, "average": bson.M{"$avg": "$rating"}}},
			},
			"ratings": bson.A{
				bson.M{"$group": bson.M{"_id": "$rating", "count": bson.M{"$sum": 1}}},
				bson.M{"$sort": bson.M{"_id": 1}},
			},
			"latest": bson.A{
				bson.M{"$sort": bson.D{{Key: "date", Value: -1}, {Key: "_id", Value: -1}}},
				bson.M{"$limit": latest},
			},
		}}},
	}

	cursor, err := d.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return FeedbackSummary{}, err
	}

	facets := []summaryFacet{}
	if err = cursor.All(ctx, &facets); err != nil {
		return FeedbackSummary{}, err
	}

	summary := FeedbackSummary{Ratings: map[string]int64{}, Latest: []Feedback{}}
	if len(facets) == 0 {
		return summary, nil
	}

	f := facets[0]
	if len(f.Totals) > 0 {
		summary.Count = f.Totals[0].Count
		summary.AverageRating = f.Totals[0].Average
	}
	for _, r := range f.Ratings {
		summary.Ratings[strconv.Itoa(r.Rating)] = r.Count
	}
	if f.Latest != nil {
		summary.Latest = f.Latest
	}

	return summary, nil
}
