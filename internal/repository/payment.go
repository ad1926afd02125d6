package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vietanh2810/medicamp-api/internal/domain"
	"github.com/vietanh2810/medicamp-api/internal/repository/dao"
)

var ErrPaymentNotFound = dao.ErrPaymentNotFound

type PaymentDAO interface {
	Insert(ctx context.Context, p dao.Payment) (dao.InsertResult, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (dao.UpdateResult, error)
	History(ctx context.Context, email, search string, skip, limit int64) ([]dao.PaymentHistoryRow, error)
	CountHistory(ctx context.Context, email, search string) (int64, error)
	Count(ctx context.Context) (int64, error)
	FeeTotal(ctx context.Context, email string) (dao.FeeTotal, error)
}

type PaymentRepository struct {
	dao PaymentDAO
}

func NewPaymentRepository(dao PaymentDAO) *PaymentRepository {
	return &PaymentRepository{
		dao: dao,
	}
}

func (r *PaymentRepository) Create(ctx context.Context, p domain.Payment) (domain.InsertResult, error) {
	result, err := r.dao.Insert(ctx, dao.Payment{
		Email:         p.Email,
		CampID:        objectIDOrNil(p.CampID),
		ParticipantID: objectIDOrNil(p.ParticipantID),
		CampName:      p.CampName,
		CampFees:      p.CampFees,
		TransactionID: p.TransactionID,
		PaymentStatus: string(p.PaymentStatus),
		Date:          p.Date,
	})
	if err != nil {
		return domain.InsertResult{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return insertToDomain(result), nil
}

func (r *PaymentRepository) UpdateStatus(ctx context.Context, id string, status domain.PaymentStatus) (domain.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.UpdateResult{}, fmt.Errorf("primitive.ObjectIDFromHex -> %w", ErrInvalidID)
	}

	result, err := r.dao.UpdateStatus(ctx, oid, string(status))
	if err != nil {
		return domain.UpdateResult{}, fmt.Errorf("r.dao.UpdateStatus -> %w", err)
	}

	return updateToDomain(result), nil
}

func (r *PaymentRepository) History(ctx context.Context, email string, q domain.ListQuery) ([]domain.PaymentHistoryRow, error) {
	found, err := r.dao.History(ctx, email, q.Search, q.Page.Skip(), q.Page.Limit())
	if err != nil {
		return nil, fmt.Errorf("r.dao.History -> %w", err)
	}

	rows := make([]domain.PaymentHistoryRow, 0, len(found))
	for _, row := range found {
		rows = append(rows, domain.PaymentHistoryRow{
			ID:                 row.ID.Hex(),
			TransactionID:      row.TransactionID,
			CampName:           row.CampName,
			CampFees:           row.CampFees,
			PaymentStatus:      row.PaymentStatus,
			ConfirmationStatus: row.ConfirmationStatus,
			Date:               row.Date,
		})
	}

	return rows, nil
}

func (r *PaymentRepository) CountHistory(ctx context.Context, email, search string) (int64, error) {
	count, err := r.dao.CountHistory(ctx, email, search)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountHistory -> %w", err)
	}

	return count, nil
}

func (r *PaymentRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.dao.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("r.dao.Count -> %w", err)
	}

	return count, nil
}

func (r *PaymentRepository) FeeTotal(ctx context.Context, email string) (domain.FeeTotal, error) {
	total, err := r.dao.FeeTotal(ctx, email)
	if err != nil {
		return domain.FeeTotal{}, fmt.Errorf("r.dao.FeeTotal -> %w", err)
	}

	return domain.FeeTotal{Count: total.Count, Sum: total.Sum}, nil
}
