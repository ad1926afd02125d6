package dao

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrParticipantNotFound = errors.New("registration not found")
	ErrAlreadyPaid         = errors.New("registration is already paid")
)

var (
	registrationSearchFields = []string{"campName", "participantName", "paymentStatus", "confirmationStatus"}
	participantSearchFields  = []string{"participantName", "campName", "campFees", "paymentStatus", "confirmationStatus"}
)

type Participant struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty"`
	CampID             primitive.ObjectID `bson:"campId"`
	CampName           string             `bson:"campName"`
	CampFees           string             `bson:"campFees"`
	Location           string             `bson:"location"`
	ProfessionalName   string             `bson:"professionalName"`
	ParticipantName    string             `bson:"participantName"`
	ParticipantEmail   string             `bson:"participantEmail"`
	Age                int                `bson:"age"`
	Phone              string             `bson:"phone"`
	Gender             string             `bson:"gender"`
	EmergencyContact   string             `bson:"emergencyContact"`
	PaymentStatus      string             `bson:"paymentStatus"`      // "Unpaid" or "Paid"
	ConfirmationStatus string             `bson:"confirmationStatus"` // "Pending" or "Confirmed"
	CreatedAt          time.Time          `bson:"createdAt"`
}

// ParticipantRow is a registration left-joined with its payment.
type ParticipantRow struct {
	ID                 primitive.ObjectID `bson:"_id"`
	CampID             primitive.ObjectID `bson:"campId"`
	ParticipantName    string             `bson:"participantName"`
	ParticipantEmail   string             `bson:"participantEmail"`
	CampName           string             `bson:"campName"`
	CampFees           string             `bson:"campFees"`
	PaymentStatus      string             `bson:"paymentStatus"`
	ConfirmationStatus string             `bson:"confirmationStatus"`
	TransactionID      string             `bson:"transactionId"`
}

type AnalyticsRow struct {
	ID               primitive.ObjectID `bson:"_id"`
	CampName         string             `bson:"campName"`
	CampFees         string             `bson:"campFees"`
	ParticipantName  string             `bson:"participantName"`
	PaymentStatus    string             `bson:"paymentStatus"`
	ParticipantCount int                `bson:"participantCount"`
	CreatedAt        time.Time          `bson:"createdAt"`
}

type RegistrationCounts struct {
	Total     int64 `bson:"total"`
	Paid      int64 `bson:"paid"`
	Unpaid    int64 `bson:"unpaid"`
	Confirmed int64 `bson:"confirmed"`
}

type ParticipantDAO struct {
	coll *mongo.Collection
}

func NewParticipantDAO(db *mongo.Database) *ParticipantDAO {
	return &ParticipantDAO{
		coll: db.Collection(ParticipantsCollection),
	}
}

func (d *ParticipantDAO) Insert(ctx context.Context, p Participant) (InsertResult, error) {
	p.ID = primitive.NilObjectID
	p.PaymentStatus = "Unpaid"
	p.ConfirmationStatus = "Pending"
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}

	result, err := d.coll.InsertOne(ctx, p)
	if err != nil {
		return InsertResult{}, err
	}

	id, _ := result.InsertedID.(primitive.ObjectID)
	return InsertResult{InsertedID: id}, nil
}

func (d *ParticipantDAO) FindByID(ctx context.Context, id string) (Participant, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return Participant{}, err
	}

	var p Participant
	err = d.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Participant{}, ErrParticipantNotFound
		}

		return Participant{}, err
	}

	return p, nil
}

func registrationsFilter(email, search string) bson.M {
	return bson.M{"$and": bson.A{
		bson.M{"participantEmail": email},
		searchFilter(search, registrationSearchFields...),
	}}
}

// FindByEmail lists the registrations of one user, newest first.
func (d *ParticipantDAO) FindByEmail(ctx context.Context, email, search string, skip, limit int64) ([]Participant, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: 1}}).
		SetSkip(skip)
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := d.coll.Find(ctx, registrationsFilter(email, search), opts)
	if err != nil {
		return nil, err
	}

	participants := []Participant{}
	if err = cursor.All(ctx, &participants); err != nil {
		return nil, err
	}

	return participants, nil
}

func (d *ParticipantDAO) CountByEmail(ctx context.Context, email, search string) (int64, error) {
	return d.coll.CountDocuments(ctx, registrationsFilter(email, search))
}

// participantRowsPipeline sorts registrations by numeric fee, left-joins the latest payment
// made for each registration and flattens the pair into one row.
func participantRowsPipeline(search string) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$addFields", Value: bson.M{"feesValue": numeric("campFees")}}},
		{{Key: "$sort", Value: bson.D{{Key: "feesValue", Value: -1}, {Key: "_id", Value: 1}}}},
		{{Key: "$lookup", Value: bson.M{
			"from": PaymentsCollection,
			"let":  bson.M{"id": "$_id", "campId": "$campId", "email": "$participantEmail"},
			"pipeline": bson.A{
				bson.M{"$match": bson.M{"$expr": paymentJoin("$$id", "$participantId", "$$campId", "$campId", "$$email", "$email")}},
				bson.M{"$sort": bson.M{"date": -1}},
				bson.M{"$limit": 1},
			},
			"as": "payment",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$payment", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$project", Value: bson.M{
			"_id":                1,
			"campId":             1,
			"participantName":    1,
			"participantEmail":   1,
			"campName":           1,
			"campFees":           1,
			"paymentStatus":      1,
			"confirmationStatus": 1,
			"transactionId":      bson.M{"$ifNull": bson.A{"$payment.transactionId", ""}},
		}}},
		{{Key: "$match", Value: searchFilter(search, participantSearchFields...)}},
	}
}

func (d *ParticipantDAO) ListWithPayments(ctx context.Context, search string, skip, limit int64) ([]ParticipantRow, error) {
	pipeline := participantRowsPipeline(search)
	pipeline = append(pipeline, pageStages(skip, limit)...)

	cursor, err := d.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	rows := []ParticipantRow{}
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	return rows, nil
}

func (d *ParticipantDAO) CountWithPayments(ctx context.Context, search string) (int64, error) {
	pipeline := append(participantRowsPipeline(search), countStage())

	return aggregateCount(ctx, d.coll, pipeline)
}

// MarkPaid flips a registration from Unpaid to Paid. A registration that is already
// paid reports ErrAlreadyPaid; Paid never goes back to Unpaid.
func (d *ParticipantDAO) MarkPaid(ctx context.Context, id string) (UpdateResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return UpdateResult{}, err
	}

	result, err := d.coll.UpdateOne(ctx,
		bson.M{"_id": oid, "paymentStatus": "Unpaid"},
		bson.M{"$set": bson.M{"paymentStatus": "Paid"}},
	)
	if err != nil {
		return UpdateResult{}, err
	}

	if result.MatchedCount == 0 {
		count, err := d.coll.CountDocuments(ctx, bson.M{"_id": oid})
		if err != nil {
			return UpdateResult{}, err
		}
		if count == 0 {
			return UpdateResult{}, ErrParticipantNotFound
		}
		return UpdateResult{}, ErrAlreadyPaid
	}

	return UpdateResult{MatchedCount: result.MatchedCount, ModifiedCount: result.ModifiedCount}, nil
}

// Confirm sets the confirmation status. Confirming twice matches without modifying.
func (d *ParticipantDAO) Confirm(ctx context.Context, id string) (UpdateResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return UpdateResult{}, err
	}

	result, err := d.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"confirmationStatus": "Confirmed"}})
	if err != nil {
		return UpdateResult{}, err
	}

	return UpdateResult{MatchedCount: result.MatchedCount, ModifiedCount: result.ModifiedCount}, nil
}

func (d *ParticipantDAO) Delete(ctx context.Context, id string) (DeleteResult, error) {
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

// Analytics joins each registration of email to the camp with the same name and
// reports that camp's current participant count, 0 when no camp has that name.
func (d *ParticipantDAO) Analytics(ctx context.Context, email string) ([]AnalyticsRow, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"participantEmail": email}}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: 1}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         CampsCollection,
			"localField":   "campName",
			"foreignField": "campName",
			"as":           "camp",
		}}},
		{{Key: "$project", Value: bson.M{
			"_id":             1,
			"campName":        1,
			"campFees":        1,
			"participantName": 1,
			"paymentStatus":   1,
			"createdAt":       1,
			"participantCount": bson.M{"$ifNull": bson.A{
				bson.M{"$arrayElemAt": bson.A{"$camp.participantCount", 0}}, 0,
			}},
		}}},
	}

	cursor, err := d.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	rows := []AnalyticsRow{}
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	return rows, nil
}

func (d *ParticipantDAO) CountsByEmail(ctx context.Context, email string) (RegistrationCounts, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"participantEmail": email}}},
		{{Key: "$group", Value: bson.M{
			"_id":       nil,
			"total":     bson.M{"$sum": 1},
			"paid":      bson.M{"$sum": bson.M{"$cond": bson.A{bson.M{"$eq": bson.A{"$paymentStatus", "Paid"}}, 1, 0}}},
			"unpaid":    bson.M{"$sum": bson.M{"$cond": bson.A{bson.M{"$eq": bson.A{"$paymentStatus", "Unpaid"}}, 1, 0}}},
			"confirmed": bson.M{"$sum": bson.M{"$cond": bson.A{bson.M{"$eq": bson.A{"$confirmationStatus", "Confirmed"}}, 1, 0}}},
		}}},
	}

	cursor, err := d.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return RegistrationCounts{}, err
	}

	rows := []RegistrationCounts{}
	if err = cursor.All(ctx, &rows); err != nil {
		return RegistrationCounts{}, err
	}
	if len(rows) == 0 {
		return RegistrationCounts{}, nil
	}

	return rows[0], nil
}

func aggregateCount(ctx context.Context, coll *mongo.Collection, pipeline mongo.Pipeline) (int64, error) {
	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}

	rows := []countRow{}
	if err = cursor.All(ctx, &rows); err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}

	return rows[0].Count, nil
}
