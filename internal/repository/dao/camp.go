package dao

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrCampNotFound = errors.New("camp not found")

var campSearchFields = []string{"campName", "dateTime", "professionalName"}

type Camp struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	CampName         string             `bson:"campName"`
	Image            string             `bson:"image"`
	DateTime         string             `bson:"dateTime"`
	Location         string             `bson:"location"`
	ProfessionalName string             `bson:"professionalName"`
	Fees             string             `bson:"fees"`
	ParticipantCount int                `bson:"participantCount"`
	TargetAudience   string             `bson:"targetAudience,omitempty"`
	Description      string             `bson:"description"`
	CreatedAt        time.Time          `bson:"createdAt"`
}

// CampListQuery selects camps. Sort is one of "participantCount", "fees", "feesAsc",
// "campName" or empty for insertion order.
type CampListQuery struct {
	Search string
	Sort   string
	Skip   int64
	Limit  int64
}

type CampDAO struct {
	coll *mongo.Collection
}

func NewCampDAO(db *mongo.Database) *CampDAO {
	return &CampDAO{
		coll: db.Collection(CampsCollection),
	}
}

func (d *CampDAO) Insert(ctx context.Context, camp Camp) (InsertResult, error) {
	camp.ID = primitive.NilObjectID
	camp.ParticipantCount = 0
	if camp.CreatedAt.IsZero() {
		camp.CreatedAt = time.Now().UTC()
	}

	result, err := d.coll.InsertOne(ctx, camp)
	if err != nil {
		return InsertResult{}, err
	}

	id, _ := result.InsertedID.(primitive.ObjectID)
	return InsertResult{InsertedID: id}, nil
}

func (d *CampDAO) FindByID(ctx context.Context, id string) (Camp, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return Camp{}, err
	}

	var camp Camp
	err = d.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&camp)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Camp{}, ErrCampNotFound
		}

		return Camp{}, err
	}

	return camp, nil
}

func campSortStage(sort string) bson.D {
	switch sort {
	case "participantCount":
		return bson.D{{Key: "participantCount", Value: -1}, {Key: "_id", Value: 1}}
	case "fees":
		return bson.D{{Key: "feesValue", Value: -1}, {Key: "_id", Value: 1}}
	case "feesAsc":
		return bson.D{{Key: "feesValue", Value: 1}, {Key: "_id", Value: 1}}
	case "campName":
		return bson.D{{Key: "campName", Value: 1}, {Key: "_id", Value: 1}}
	default:
		return bson.D{{Key: "_id", Value: 1}}
	}
}

func (d *CampDAO) List(ctx context.Context, q CampListQuery) ([]Camp, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: searchFilter(q.Search, campSearchFields...)}},
		{{Key: "$addFields", Value: bson.M{"feesValue": numeric("fees")}}},
		{{Key: "$sort", Value: campSortStage(q.Sort)}},
	}
	pipeline = append(pipeline, pageStages(q.Skip, q.Limit)...)
	pipeline = append(pipeline, bson.D{{Key: "$project", Value: bson.M{"feesValue": 0}}})

	cursor, err := d.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	camps := []Camp{}
	if err = cursor.All(ctx, &camps); err != nil {
		return nil, err
	}

	return camps, nil
}

func (d *CampDAO) Count(ctx context.Context, search string) (int64, error) {
	return d.coll.CountDocuments(ctx, searchFilter(search, campSearchFields...))
}

// Update replaces the editable fields of a camp. The participant counter is not touched.
func (d *CampDAO) Update(ctx context.Context, id string, camp Camp) (UpdateResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return UpdateResult{}, err
	}

	set := bson.M{
		"campName":         camp.CampName,
		"image":            camp.Image,
		"dateTime":         camp.DateTime,
		"location":         camp.Location,
		"professionalName": camp.ProfessionalName,
		"fees":             camp.Fees,
		"targetAudience":   camp.TargetAudience,
		"description":      camp.Description,
	}

	result, err := d.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return UpdateResult{}, err
	}

	return UpdateResult{MatchedCount: result.MatchedCount, ModifiedCount: result.ModifiedCount}, nil
}

func (d *CampDAO) Delete(ctx context.Context, id string) (DeleteResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return DeleteResult{}, err
	}

	result, err := d.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return DeleteResult{}, err
	}

	return DeleteResult{DeletedCount: result.DeletedCount}, nil
}

// IncrementParticipantCount adds one to the camp counter with a single atomic $inc.
func (d *CampDAO) IncrementParticipantCount(ctx context.Context, id string) (UpdateResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return UpdateResult{}, err
	}

	result, err := d.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$inc": bson.M{"participantCount": 1}})
	if err != nil {
		return UpdateResult{}, err
	}

	return UpdateResult{MatchedCount: result.MatchedCount, ModifiedCount: result.ModifiedCount}, nil
}
