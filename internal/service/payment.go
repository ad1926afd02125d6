package service

import (
	"context"
	"fmt"
	"time"

	"github.com/vietanh2810/medicamp-api/internal/domain"
	"github.com/vietanh2810/medicamp-api/internal/pkg/payment"
	"github.com/vietanh2810/medicamp-api/internal/repository"
)

var (
	ErrPaymentNotFound = repository.ErrPaymentNotFound
	ErrInvalidAmount   = payment.ErrInvalidAmount
	ErrNotConfigured   = payment.ErrNotConfigured
)

type PaymentRepository interface {
	Create(ctx context.Context, p domain.Payment) (domain.InsertResult, error)
	UpdateStatus(ctx context.Context, id string, status domain.PaymentStatus) (domain.UpdateResult, error)
	History(ctx context.Context, email string, q domain.ListQuery) ([]domain.PaymentHistoryRow, error)
	CountHistory(ctx context.Context, email, search string) (int64, error)
}

type PaymentProcessor interface {
	CreateIntent(ctx context.Context, amount int64) (payment.Intent, error)
}

type PaymentService struct {
	repo            PaymentRepository
	participantRepo ParticipantRepository
	processor       PaymentProcessor
}

func NewPaymentService(repo PaymentRepository, participantRepo ParticipantRepository, processor PaymentProcessor) *PaymentService {
	return &PaymentService{
		repo:            repo,
		participantRepo: participantRepo,
		processor:       processor,
	}
}

// CreateIntent opens a card payment for a fee written as text, e.g. "25.50".
func (s *PaymentService) CreateIntent(ctx context.Context, price string) (payment.Intent, error) {
	amount := domain.FeesToMinorUnits(domain.ParseFees(price))
	if amount <= 0 {
		return payment.Intent{}, ErrInvalidAmount
	}

	intent, err := s.processor.CreateIntent(ctx, amount)
	if err != nil {
		return payment.Intent{}, fmt.Errorf("s.processor.CreateIntent -> %w", err)
	}

	return intent, nil
}

// Pay records a confirmed charge for one registration of actorEmail in three steps:
// insert the payment as Pending, flip the registration to Paid, mark the payment Paid.
// A failure after the first step returns the outcome with ErrIncomplete and leaves the
// applied steps in place.
func (s *PaymentService) Pay(ctx context.Context, actorEmail, participantID, transactionID string) (domain.PaymentOutcome, error) {
	registration, err := s.participantRepo.FindByID(ctx, participantID)
	if err != nil {
		return domain.PaymentOutcome{}, fmt.Errorf("s.participantRepo.FindByID -> %w", err)
	}

	if registration.ParticipantEmail != actorEmail {
		return domain.PaymentOutcome{}, ErrNotOwner
	}
	if registration.PaymentStatus == domain.PaymentPaid {
		return domain.PaymentOutcome{}, ErrAlreadyPaid
	}

	outcome := domain.PaymentOutcome{}

	inserted, err := s.repo.Create(ctx, domain.Payment{
		Email:         actorEmail,
		CampID:        registration.CampID,
		ParticipantID: registration.ID,
		CampName:      registration.CampName,
		CampFees:      registration.CampFees,
		TransactionID: transactionID,
		PaymentStatus: domain.PaymentPending,
		Date:          time.Now().UTC(),
	})
	if err != nil {
		outcome.Fail(domain.PaymentStepRecord, err)
		return outcome, fmt.Errorf("s.repo.Create -> %w", err)
	}
	outcome.InsertedID = inserted.InsertedID
	outcome.PaymentRecorded = true

	if _, err = s.participantRepo.MarkPaid(ctx, registration.ID); err != nil {
		outcome.Fail(domain.PaymentStepRegistration, err)
		return outcome, fmt.Errorf("%w: s.participantRepo.MarkPaid -> %w", ErrIncomplete, err)
	}
	outcome.RegistrationPaid = true

	if _, err = s.repo.UpdateStatus(ctx, inserted.InsertedID, domain.PaymentPaid); err != nil {
		outcome.Fail(domain.PaymentStepFinalize, err)
		return outcome, fmt.Errorf("%w: s.repo.UpdateStatus -> %w", ErrIncomplete, err)
	}
	outcome.PaymentFinalized = true
	outcome.Complete = true

	return outcome, nil
}

func (s *PaymentService) History(ctx context.Context, email string, q domain.ListQuery) ([]domain.PaymentHistoryRow, error) {
	rows, err := s.repo.History(ctx, email, q)
	if err != nil {
		return nil, fmt.Errorf("s.repo.History -> %w", err)
	}

	return rows, nil
}

func (s *PaymentService) CountHistory(ctx context.Context, email, search string) (int64, error) {
	count, err := s.repo.CountHistory(ctx, email, search)
	if err != nil {
		return 0, fmt.Errorf("s.repo.CountHistory -> %w", err)
	}

	return count, nil
}
