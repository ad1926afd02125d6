package dao

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Results mirror the acknowledgements the store returns for writes.
type InsertResult struct {
	InsertedID primitive.ObjectID
}

type UpdateResult struct {
	MatchedCount  int64
	ModifiedCount int64
}

type DeleteResult struct {
	DeletedCount int64
}

// searchFilter matches term case-insensitively as a substring of any of fields.
// An empty term matches everything.
func searchFilter(term string, fields ...string) bson.M {
	if term == "" || len(fields) == 0 {
		return bson.M{}
	}

	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
	or := make(bson.A, 0, len(fields))
	for _, f := range fields {
		or = append(or, bson.M{f: pattern})
	}

	return bson.M{"$or": or}
}

// numeric coerces a text field to a double; unparseable or missing values become 0.
func numeric(field string) bson.M {
	return bson.M{"$convert": bson.M{
		"input":   "$" + field,
		"to":      "double",
		"onError": 0,
		"onNull":  0,
	}}
}

func pageStages(skip, limit int64) []bson.D {
	stages := []bson.D{}
	if skip > 0 {
		stages = append(stages, bson.D{{Key: "$skip", Value: skip}})
	}
	if limit > 0 {
		stages = append(stages, bson.D{{Key: "$limit", Value: limit}})
	}
	return stages
}

func countStage() bson.D {
	return bson.D{{Key: "$count", Value: "count"}}
}

type countRow struct {
	Count int64 `bson:"count"`
}
