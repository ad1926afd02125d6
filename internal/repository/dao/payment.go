package dao

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrPaymentNotFound = errors.New("payment not found")

var historySearchFields = []string{"campName", "campFees", "paymentStatus", "confirmationStatus"}

type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Email         string             `bson:"email"`
	CampID        primitive.ObjectID `bson:"campId"`
	ParticipantID primitive.ObjectID `bson:"participantId"`
	CampName      string             `bson:"campName"`
	CampFees      string             `bson:"campFees"`
	TransactionID string             `bson:"transactionId"`
	PaymentStatus string             `bson:"paymentStatus"` // "Pending" until the registration is flipped, then "Paid"
	Date          time.Time          `bson:"date"`
}

type PaymentHistoryRow struct {
	ID                 primitive.ObjectID `bson:"_id"`
	TransactionID      string             `bson:"transactionId"`
	CampName           string             `bson:"campName"`
	CampFees           string             `bson:"campFees"`
	PaymentStatus      string             `bson:"paymentStatus"`
	ConfirmationStatus string             `bson:"confirmationStatus"`
	Date               time.Time          `bson:"date"`
}

type FeeTotal struct {
	Count int64   `bson:"count"`
	Sum   float64 `bson:"sum"`
}

type PaymentDAO struct {
	coll *mongo.Collection
}

func NewPaymentDAO(db *mongo.Database) *PaymentDAO {
	return &PaymentDAO{
		coll: db.Collection(PaymentsCollection),
	}
}

func (d *PaymentDAO) Insert(ctx context.Context, p Payment) (InsertResult, error) {
	p.ID = primitive.NilObjectID
	if p.Date.IsZero() {
		p.Date = time.Now().UTC()
	}

	result, err := d.coll.InsertOne(ctx, p)
	if err != nil {
		return InsertResult{}, err
	}

	id, _ := result.InsertedID.(primitive.ObjectID)
	return InsertResult{InsertedID: id}, nil
}

func (d *PaymentDAO) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (UpdateResult, error) {
	result, err := d.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"paymentStatus": status}})
	if err != nil {
		return UpdateResult{}, err
	}
	if result.MatchedCount == 0 {
		return UpdateResult{}, ErrPaymentNotFound
	}

	return UpdateResult{MatchedCount: result.MatchedCount, ModifiedCount: result.ModifiedCount}, nil
}

// paymentJoin matches a payment to the registration it paid for by participantId.
// Payments stored without a participantId fall back to the camp/email pair.
func paymentJoin(regID, payParticipantID, regCampID, payCampID, regEmail, payEmail string) bson.M {
	return bson.M{"$or": bson.A{
		bson.M{"$eq": bson.A{payParticipantID, regID}},
		bson.M{"$and": bson.A{
			bson.M{"$eq": bson.A{bson.M{"$ifNull": bson.A{payParticipantID, primitive.NilObjectID}}, primitive.NilObjectID}},
			bson.M{"$eq": bson.A{payCampID, regCampID}},
			bson.M{"$eq": bson.A{payEmail, regEmail}},
		}},
	}}
}

// historyPipeline joins each payment of email to the registration it paid for, flattens
// the pair and filters the flat row by search.
func historyPipeline(email, search string) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"email": email}}},
		{{Key: "$lookup", Value: bson.M{
			"from": ParticipantsCollection,
			"let":  bson.M{"pid": "$participantId", "campId": "$campId", "email": "$email"},
			"pipeline": bson.A{
				bson.M{"$match": bson.M{"$expr": paymentJoin("$_id", "$$pid", "$campId", "$$campId", "$participantEmail", "$$email")}},
				bson.M{"$sort": bson.M{"_id": 1}},
				bson.M{"$limit": 1},
			},
			"as": "participant",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$participant", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$project", Value: bson.M{
			"_id":                1,
			"transactionId":      1,
			"date":               1,
			"campName":           bson.M{"$ifNull": bson.A{"$participant.campName", "$campName"}},
			"campFees":           bson.M{"$ifNull": bson.A{"$participant.campFees", "$campFees"}},
			"paymentStatus":      bson.M{"$ifNull": bson.A{"$participant.paymentStatus", "$paymentStatus"}},
			"confirmationStatus": bson.M{"$ifNull": bson.A{"$participant.confirmationStatus", "Pending"}},
		}}},
		{{Key: "$match", Value: searchFilter(search, historySearchFields...)}},
	}
}

func (d *PaymentDAO) History(ctx context.Context, email, search string, skip, limit int64) ([]PaymentHistoryRow, error) {
	pipeline := historyPipeline(email, search)
	pipeline = append(pipeline, bson.D{{Key: "$sort", Value: bson.D{{Key: "date", Value: -1}, {Key: "_id", Value: 1}}}})
	pipeline = append(pipeline, pageStages(skip, limit)...)

	cursor, err := d.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	rows := []PaymentHistoryRow{}
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	return rows, nil
}

func (d *PaymentDAO) CountHistory(ctx context.Context, email, search string) (int64, error) {
	pipeline := append(historyPipeline(email, search), countStage())

	return aggregateCount(ctx, d.coll, pipeline)
}

func (d *PaymentDAO) Count(ctx context.Context) (int64, error) {
	return d.coll.CountDocuments(ctx, bson.M{})
}

// FeeTotal counts the payments matching email (all payments when email is empty) and sums
// their fees. Fees that are not numbers count as 0.
func (d *PaymentDAO) FeeTotal(ctx context.Context, email string) (FeeTotal, error) {
	match := bson.M{}
	if email != "" {
		match["email"] = email
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"count": bson.M{"$sum": 1},
			"sum":   bson.M{"$sum": numeric("campFees")},
		}}},
	}

	cursor, err := d.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return FeeTotal{}, err
	}

	rows := []FeeTotal{}
	if err = cursor.All(ctx, &rows); err != nil {
		return FeeTotal{}, err
	}
	if len(rows) == 0 {
		return FeeTotal{}, nil
	}

	return rows[0], nil
}
