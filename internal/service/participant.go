package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vietanh2810/medicamp-api/internal/domain"
	"github.com/vietanh2810/medicamp-api/internal/repository"
)

var (
	ErrParticipantNotFound = repository.ErrParticipantNotFound
	ErrAlreadyPaid         = repository.ErrAlreadyPaid
)

type ParticipantRepository interface {
	Create(ctx context.Context, p domain.Participant) (domain.InsertResult, error)
	FindByID(ctx context.Context, id string) (domain.Participant, error)
	FindByEmail(ctx context.Context, email string, q domain.ListQuery) ([]domain.Participant, error)
	CountByEmail(ctx context.Context, email, search string) (int64, error)
	ListWithPayments(ctx context.Context, q domain.ListQuery) ([]domain.ParticipantRow, error)
	CountWithPayments(ctx context.Context, search string) (int64, error)
	MarkPaid(ctx context.Context, id string) (domain.UpdateResult, error)
	Confirm(ctx context.Context, id string) (domain.UpdateResult, error)
	Delete(ctx context.Context, id string) (domain.DeleteResult, error)
	Analytics(ctx context.Context, email string) ([]domain.AnalyticsRow, error)
}

type ParticipantService struct {
	repo     ParticipantRepository
	campRepo CampRepository
	userRepo UserRepository
}

func NewParticipantService(repo ParticipantRepository, campRepo CampRepository, userRepo UserRepository) *ParticipantService {
	return &ParticipantService{
		repo:     repo,
		campRepo: campRepo,
		userRepo: userRepo,
	}
}

// Register records a registration for actorEmail and bumps the camp counter.
// The camp snapshot (name, fees, location, professional) is taken from the stored camp.
// When the insert succeeds but the increment fails, the outcome is returned together
// with ErrIncomplete; the registration is kept.
func (s *ParticipantService) Register(ctx context.Context, actorEmail string, p domain.Participant) (domain.RegistrationOutcome, error) {
	if p.ParticipantEmail != "" && p.ParticipantEmail != actorEmail {
		return domain.RegistrationOutcome{}, ErrNotOwner
	}

	camp, err := s.campRepo.FindByID(ctx, p.CampID)
	if err != nil {
		return domain.RegistrationOutcome{}, fmt.Errorf("s.campRepo.FindByID -> %w", err)
	}

	p.ParticipantEmail = actorEmail
	p.CampName = camp.CampName
	p.CampFees = camp.Fees
	p.Location = camp.Location
	p.ProfessionalName = camp.ProfessionalName
	p.PaymentStatus = domain.PaymentUnpaid
	p.ConfirmationStatus = domain.ConfirmationPending
	p.CreatedAt = time.Now().UTC()

	outcome := domain.RegistrationOutcome{}

	inserted, err := s.repo.Create(ctx, p)
	if err != nil {
		outcome.FailedStep = domain.RegistrationStepInsert
		outcome.Error = err.Error()
		return outcome, fmt.Errorf("s.repo.Create -> %w", err)
	}

	p.ID = inserted.InsertedID
	outcome.Participant = p
	outcome.InsertedID = inserted.InsertedID
	outcome.Registered = true

	if _, err = s.campRepo.IncrementParticipantCount(ctx, p.CampID); err != nil {
		outcome.FailedStep = domain.RegistrationStepIncrement
		outcome.Error = err.Error()
		return outcome, fmt.Errorf("%w: s.campRepo.IncrementParticipantCount -> %w", ErrIncomplete, err)
	}

	outcome.CountIncremented = true
	outcome.Complete = true

	return outcome, nil
}

// GetRegistration returns a registration to its owner or to an organizer.
func (s *ParticipantService) GetRegistration(ctx context.Context, actorEmail, id string) (domain.Participant, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if p.ParticipantEmail == actorEmail {
		return p, nil
	}

	actor, err := s.userRepo.FindByEmail(ctx, actorEmail)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.Participant{}, ErrNotOwner
		}
		return domain.Participant{}, fmt.Errorf("s.userRepo.FindByEmail -> %w", err)
	}
	if !actor.IsOrganizer() {
		return domain.Participant{}, ErrNotOwner
	}

	return p, nil
}

func (s *ParticipantService) RegisteredCamps(ctx context.Context, email string, q domain.ListQuery) ([]domain.Participant, error) {
	found, err := s.repo.FindByEmail(ctx, email, q)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByEmail -> %w", err)
	}

	return found, nil
}

func (s *ParticipantService) CountRegistered(ctx context.Context, email, search string) (int64, error) {
	count, err := s.repo.CountByEmail(ctx, email, search)
	if err != nil {
		return 0, fmt.Errorf("s.repo.CountByEmail -> %w", err)
	}

	return count, nil
}

func (s *ParticipantService) ListParticipants(ctx context.Context, q domain.ListQuery) ([]domain.ParticipantRow, error) {
	rows, err := s.repo.ListWithPayments(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListWithPayments -> %w", err)
	}

	return rows, nil
}

func (s *ParticipantService) CountParticipants(ctx context.Context, search string) (int64, error) {
	count, err := s.repo.CountWithPayments(ctx, search)
	if err != nil {
		return 0, fmt.Errorf("s.repo.CountWithPayments -> %w", err)
	}

	return count, nil
}

// Confirm is idempotent: confirming twice matches the document and modifies nothing.
func (s *ParticipantService) Confirm(ctx context.Context, id string) (domain.UpdateResult, error) {
	result, err := s.repo.Confirm(ctx, id)
	if err != nil {
		return domain.UpdateResult{}, fmt.Errorf("s.repo.Confirm -> %w", err)
	}

	return result, nil
}

// Cancel removes a registration of actorEmail. The camp counter is left as is.
func (s *ParticipantService) Cancel(ctx context.Context, actorEmail, id string) (domain.DeleteResult, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.DeleteResult{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if p.ParticipantEmail != actorEmail {
		return domain.DeleteResult{}, ErrNotOwner
	}

	result, err := s.repo.Delete(ctx, id)
	if err != nil {
		return domain.DeleteResult{}, fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return result, nil
}

func (s *ParticipantService) Analytics(ctx context.Context, email string) ([]domain.AnalyticsRow, error) {
	rows, err := s.repo.Analytics(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("s.repo.Analytics -> %w", err)
	}

	return rows, nil
}
