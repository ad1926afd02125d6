package repository

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vietanh2810/medicamp-api/internal/domain"
	"github.com/vietanh2810/medicamp-api/internal/repository/dao"
)

func insertToDomain(r dao.InsertResult) domain.InsertResult {
	return domain.InsertResult{Acknowledged: true, InsertedID: r.InsertedID.Hex()}
}

func updateToDomain(r dao.UpdateResult) domain.UpdateResult {
	return domain.UpdateResult{Acknowledged: true, MatchedCount: r.MatchedCount, ModifiedCount: r.ModifiedCount}
}

func deleteToDomain(r dao.DeleteResult) domain.DeleteResult {
	return domain.DeleteResult{Acknowledged: true, DeletedCount: r.DeletedCount}
}

// objectIDOrNil parses an optional reference. Empty or malformed values become the nil id,
// references are denormalized and not enforced.
func objectIDOrNil(id string) primitive.ObjectID {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID
	}
	return oid
}

func hexOrEmpty(id primitive.ObjectID) string {
	if id.IsZero() {
		return ""
	}
	return id.Hex()
}
