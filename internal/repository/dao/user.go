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
	ErrUserEmailExists = errors.New("user already exists")
	ErrUserNotFound    = errors.New("user not found")
)

type User struct {
	ID primitive.ObjectID `bson:"_id,omitempty"`

	Email   string `bson:"email"`
	Name    string `bson:"name"`
	Image   string `bson:"image"`
	Role    string `bson:"role"` // "Organizer" or "Participant"
	Contact string `bson:"contact,omitempty"`

	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

type UserDAO struct {
	coll *mongo.Collection
}

func NewUserDAO(db *mongo.Database) *UserDAO {
	return &UserDAO{
		coll: db.Collection(UsersCollection),
	}
}

// InsertIfAbsent creates the user unless the email is already taken. The upsert keys on
// email, so concurrent sign-ins for the same email create at most one document.
func (d *UserDAO) InsertIfAbsent(ctx context.Context, user User) (primitive.ObjectID, bool, error) {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	filter := bson.M{"email": user.Email}
	update := bson.M{"$setOnInsert": bson.M{
		"email":     user.Email,
		"name":      user.Name,
		"image":     user.Image,
		"role":      user.Role,
		"contact":   user.Contact,
		"createdAt": user.CreatedAt,
		"updatedAt": user.UpdatedAt,
	}}

	result, err := d.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, false, nil
		}
		return primitive.NilObjectID, false, err
	}

	if result.UpsertedCount == 0 {
		return primitive.NilObjectID, false, nil
	}

	id, _ := result.UpsertedID.(primitive.ObjectID)
	return id, true, nil
}

func (d *UserDAO) FindAll(ctx context.Context) ([]User, error) {
	cursor, err := d.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}

	users := []User{}
	if err = cursor.All(ctx, &users); err != nil {
		return nil, err
	}

	return users, nil
}

func (d *UserDAO) FindByEmail(ctx context.Context, email string) (User, error) {
	var user User

	err := d.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return User{}, ErrUserNotFound
		}

		return User{}, err
	}

	return user, nil
}

func (d *UserDAO) FindByID(ctx context.Context, id string) (User, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return User{}, err
	}

	var user User
	err = d.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return User{}, ErrUserNotFound
		}

		return User{}, err
	}

	return user, nil
}

// UpdateProfile sets the non-empty fields of patch on the user with id.
func (d *UserDAO) UpdateProfile(ctx context.Context, id string, patch User) (UpdateResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return UpdateResult{}, err
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if patch.Name != "" {
		set["name"] = patch.Name
	}
	if patch.Image != "" {
		set["image"] = patch.Image
	}
	if patch.Contact != "" {
		set["contact"] = patch.Contact
	}

	result, err := d.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return UpdateResult{}, err
	}

	return UpdateResult{MatchedCount: result.MatchedCount, ModifiedCount: result.ModifiedCount}, nil
}

func (d *UserDAO) Count(ctx context.Context) (int64, error) {
	return d.coll.CountDocuments(ctx, bson.M{})
}
