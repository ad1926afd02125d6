package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/medicamp-api/internal/domain"
	"github.com/vietanh2810/medicamp-api/internal/repository/dao"
)

var (
	ErrParticipantNotFound = dao.ErrParticipantNotFound
	ErrAlreadyPaid         = dao.ErrAlreadyPaid
)

type ParticipantDAO interface {
	Insert(ctx context.Context, p dao.Participant) (dao.InsertResult, error)
	FindByID(ctx context.Context, id string) (dao.Participant, error)
	FindByEmail(ctx context.Context, email, search string, skip, limit int64) ([]dao.Participant, error)
	CountByEmail(ctx context.Context, email, search string) (int64, error)
	ListWithPayments(ctx context.Context, search string, skip, limit int64) ([]dao.ParticipantRow, error)
	CountWithPayments(ctx context.Context, search string) (int64, error)
	MarkPaid(ctx context.Context, id string) (dao.UpdateResult, error)
	Confirm(ctx context.Context, id string) (dao.UpdateResult, error)
	Delete(ctx context.Context, id string) (dao.DeleteResult, error)
	Analytics(ctx context.Context, email string) ([]dao.AnalyticsRow, error)
	CountsByEmail(ctx context.Context, email string) (dao.RegistrationCounts, error)
}

type ParticipantRepository struct {
	dao ParticipantDAO
}

func NewParticipantRepository(dao ParticipantDAO) *ParticipantRepository {
	return &ParticipantRepository{
		dao: dao,
	}
}

func (r *ParticipantRepository) Create(ctx context.Context, p domain.Participant) (domain.InsertResult, error) {
	if err := dao.ParseID(p.CampID); err != nil {
		return domain.InsertResult{}, fmt.Errorf("dao.ParseID -> %w", err)
	}

	result, err := r.dao.Insert(ctx, r.domainToDao(p))
	if err != nil {
		return domain.InsertResult{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return insertToDomain(result), nil
}

func (r *ParticipantRepository) FindByID(ctx context.Context, id string) (domain.Participant, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ParticipantRepository) FindByEmail(ctx context.Context, email string, q domain.ListQuery) ([]domain.Participant, error) {
	found, err := r.dao.FindByEmail(ctx, email, q.Search, q.Page.Skip(), q.Page.Limit())
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByEmail -> %w", err)
	}

	participants := make([]domain.Participant, 0, len(found))
	for _, p := range found {
		participants = append(participants, r.daoToDomain(p))
	}

	return participants, nil
}

func (r *ParticipantRepository) CountByEmail(ctx context.Context, email, search string) (int64, error) {
	count, err := r.dao.CountByEmail(ctx, email, search)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountByEmail -> %w", err)
	}

	return count, nil
}

func (r *ParticipantRepository) ListWithPayments(ctx context.Context, q domain.ListQuery) ([]domain.ParticipantRow, error) {
	found, err := r.dao.ListWithPayments(ctx, q.Search, q.Page.Skip(), q.Page.Limit())
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListWithPayments -> %w", err)
	}

	rows := make([]domain.ParticipantRow, 0, len(found))
	for _, row := range found {
		rows = append(rows, domain.ParticipantRow{
			ID:                 row.ID.Hex(),
			CampID:             hexOrEmpty(row.CampID),
			ParticipantName:    row.ParticipantName,
			ParticipantEmail:   row.ParticipantEmail,
			CampName:           row.CampName,
			CampFees:           row.CampFees,
			PaymentStatus:      domain.PaymentStatus(row.PaymentStatus),
			ConfirmationStatus: domain.ConfirmationStatus(row.ConfirmationStatus),
			TransactionID:      row.TransactionID,
		})
	}

	return rows, nil
}

func (r *ParticipantRepository) CountWithPayments(ctx context.Context, search string) (int64, error) {
	count, err := r.dao.CountWithPayments(ctx, search)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountWithPayments -> %w", err)
	}

	return count, nil
}

func (r *ParticipantRepository) MarkPaid(ctx context.Context, id string) (domain.UpdateResult, error) {
	result, err := r.dao.MarkPaid(ctx, id)
	if err != nil {
		return domain.UpdateResult{}, fmt.Errorf("r.dao.MarkPaid -> %w", err)
	}

	return updateToDomain(result), nil
}

func (r *ParticipantRepository) Confirm(ctx context.Context, id string) (domain.UpdateResult, error) {
	result, err := r.dao.Confirm(ctx, id)
	if err != nil {
		return domain.UpdateResult{}, fmt.Errorf("r.dao.Confirm -> %w", err)
	}

	return updateToDomain(result), nil
}

func (r *ParticipantRepository) Delete(ctx context.Context, id string) (domain.DeleteResult, error) {
	result, err := r.dao.Delete(ctx, id)
	if err != nil {
		return domain.DeleteResult{}, fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return deleteToDomain(result), nil
}

func (r *ParticipantRepository) Analytics(ctx context.Context, email string) ([]domain.AnalyticsRow, error) {
	found, err := r.dao.Analytics(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("r.dao.Analytics -> %w", err)
	}

	rows := make([]domain.AnalyticsRow, 0, len(found))
	for _, row := range found {
		rows = append(rows, domain.AnalyticsRow{
			ID:               row.ID.Hex(),
			CampName:         row.CampName,
			CampFees:         row.CampFees,
			ParticipantName:  row.ParticipantName,
			PaymentStatus:    row.PaymentStatus,
			ParticipantCount: row.ParticipantCount,
			CreatedAt:        row.CreatedAt,
		})
	}

	return rows, nil
}

func (r *ParticipantRepository) CountsByEmail(ctx context.Context, email string) (domain.RegistrationCounts, error) {
	counts, err := r.dao.CountsByEmail(ctx, email)
	if err != nil {
		return domain.RegistrationCounts{}, fmt.Errorf("r.dao.CountsByEmail -> %w", err)
	}

	return domain.RegistrationCounts{
		Total:     counts.Total,
		Paid:      counts.Paid,
		Unpaid:    counts.Unpaid,
		Confirmed: counts.Confirmed,
	}, nil
}

func (r *ParticipantRepository) domainToDao(p domain.Participant) dao.Participant {
	return dao.Participant{
		CampID:             objectIDOrNil(p.CampID),
		CampName:           p.CampName,
		CampFees:           p.CampFees,
		Location:           p.Location,
		ProfessionalName:   p.ProfessionalName,
		ParticipantName:    p.ParticipantName,
		ParticipantEmail:   p.ParticipantEmail,
		Age:                p.Age,
		Phone:              p.Phone,
		Gender:             p.Gender,
		EmergencyContact:   p.EmergencyContact,
		PaymentStatus:      string(p.PaymentStatus),
		ConfirmationStatus: string(p.ConfirmationStatus),
		CreatedAt:          p.CreatedAt,
	}
}

func (r *ParticipantRepository) daoToDomain(p dao.Participant) domain.Participant {
	return domain.Participant{
		ID:                 p.ID.Hex(),
		CampID:             hexOrEmpty(p.CampID),
		CampName:           p.CampName,
		CampFees:           p.CampFees,
		Location:           p.Location,
		ProfessionalName:   p.ProfessionalName,
		ParticipantName:    p.ParticipantName,
		ParticipantEmail:   p.ParticipantEmail,
		Age:                p.Age,
		Phone:              p.Phone,
		Gender:             p.Gender,
		EmergencyContact:   p.EmergencyContact,
		PaymentStatus:      domain.PaymentStatus(p.PaymentStatus),
		ConfirmationStatus: domain.ConfirmationStatus(p.ConfirmationStatus),
		CreatedAt:          p.CreatedAt,
	}
}
