package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/medicamp-api/internal/domain"
	"github.com/vietanh2810/medicamp-api/internal/repository/dao"
)

var ErrCampNotFound = dao.ErrCampNotFound

type CampDAO interface {
	Insert(ctx context.Context, camp dao.Camp) (dao.InsertResult, error)
	FindByID(ctx context.Context, id string) (dao.Camp, error)
	List(ctx context.Context, q dao.CampListQuery) ([]dao.Camp, error)
	Count(ctx context.Context, search string) (int64, error)
	Update(ctx context.Context, id string, camp dao.Camp) (dao.UpdateResult, error)
	Delete(ctx context.Context, id string) (dao.DeleteResult, error)
	IncrementParticipantCount(ctx context.Context, id string) (dao.UpdateResult, error)
}

type CampRepository struct {
	dao CampDAO
}

func NewCampRepository(dao CampDAO) *CampRepository {
	return &CampRepository{
		dao: dao,
	}
}

func (r *CampRepository) Create(ctx context.Context, camp domain.Camp) (domain.InsertResult, error) {
	result, err := r.dao.Insert(ctx, r.domainToDao(camp))
	if err != nil {
		return domain.InsertResult{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return insertToDomain(result), nil
}

func (r *CampRepository) FindByID(ctx context.Context, id string) (domain.Camp, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Camp{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *CampRepository) List(ctx context.Context, q domain.CampQuery) ([]domain.Camp, error) {
	found, err := r.dao.List(ctx, dao.CampListQuery{
		Search: q.Search,
		Sort:   string(q.Sort),
		Skip:   q.Page.Skip(),
		Limit:  q.Page.Limit(),
	})
	if err != nil {
		return nil, fmt.Errorf("r.dao.List -> %w", err)
	}

	camps := make([]domain.Camp, 0, len(found))
	for _, c := range found {
		camps = append(camps, r.daoToDomain(c))
	}

	return camps, nil
}

func (r *CampRepository) Count(ctx context.Context, search string) (int64, error) {
	count, err := r.dao.Count(ctx, search)
	if err != nil {
		return 0, fmt.Errorf("r.dao.Count -> %w", err)
	}

	return count, nil
}

func (r *CampRepository) Update(ctx context.Context, id string, camp domain.Camp) (domain.UpdateResult, error) {
	result, err := r.dao.Update(ctx, id, r.domainToDao(camp))
	if err != nil {
		return domain.UpdateResult{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return updateToDomain(result), nil
}

func (r *CampRepository) Delete(ctx context.Context, id string) (domain.DeleteResult, error) {
	result, err := r.dao.Delete(ctx, id)
	if err != nil {
		return domain.DeleteResult{}, fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return deleteToDomain(result), nil
}

func (r *CampRepository) IncrementParticipantCount(ctx context.Context, id string) (domain.UpdateResult, error) {
	result, err := r.dao.IncrementParticipantCount(ctx, id)
	if err != nil {
		return domain.UpdateResult{}, fmt.Errorf("r.dao.IncrementParticipantCount -> %w", err)
	}

	return updateToDomain(result), nil
}

func (r *CampRepository) domainToDao(c domain.Camp) dao.Camp {
	return dao.Camp{
		CampName:         c.CampName,
		Image:            c.Image,
		DateTime:         c.DateTime,
		Location:         c.Location,
		ProfessionalName: c.ProfessionalName,
		Fees:             c.Fees,
		ParticipantCount: c.ParticipantCount,
		TargetAudience:   c.TargetAudience,
		Description:      c.Description,
		CreatedAt:        c.CreatedAt,
	}
}

func (r *CampRepository) daoToDomain(c dao.Camp) domain.Camp {
	return domain.Camp{
		ID:               c.ID.Hex(),
		CampName:         c.CampName,
		Image:            c.Image,
		DateTime:         c.DateTime,
		Location:         c.Location,
		ProfessionalName: c.ProfessionalName,
		Fees:             c.Fees,
		ParticipantCount: c.ParticipantCount,
		TargetAudience:   c.TargetAudience,
		Description:      c.Description,
		CreatedAt:        c.CreatedAt,
	}
}
