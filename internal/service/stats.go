package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/vietanh2810/medicamp-api/internal/domain"
)

type StatsUserRepository interface {
	Count(ctx context.Context) (int64, error)
}

type StatsCampRepository interface {
	Count(ctx context.Context, search string) (int64, error)
}

type StatsPaymentRepository interface {
	Count(ctx context.Context) (int64, error)
	FeeTotal(ctx context.Context, email string) (domain.FeeTotal, error)
}

type StatsParticipantRepository interface {
	CountsByEmail(ctx context.Context, email string) (domain.RegistrationCounts, error)
}

type StatsService struct {
	users        StatsUserRepository
	camps        StatsCampRepository
	payments     StatsPaymentRepository
	participants StatsParticipantRepository
}

func NewStatsService(users StatsUserRepository, camps StatsCampRepository, payments StatsPaymentRepository, participants StatsParticipantRepository) *StatsService {
	return &StatsService{
		users:        users,
		camps:        camps,
		payments:     payments,
		participants: participants,
	}
}

// OrganizerStats reads the four dashboard figures concurrently. Any failed read fails the
// whole call and cancels the others.
func (s *StatsService) OrganizerStats(ctx context.Context) (domain.OrganizerStats, error) {
	var (
		stats domain.OrganizerStats
		fees  domain.FeeTotal
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		if stats.Users, err = s.users.Count(ctx); err != nil {
			return fmt.Errorf("s.users.Count -> %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if stats.Camps, err = s.camps.Count(ctx, ""); err != nil {
			return fmt.Errorf("s.camps.Count -> %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if stats.Payments, err = s.payments.Count(ctx); err != nil {
			return fmt.Errorf("s.payments.Count -> %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if fees, err = s.payments.FeeTotal(ctx, ""); err != nil {
			return fmt.Errorf("s.payments.FeeTotal -> %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return domain.OrganizerStats{}, err
	}

	stats.TotalFees = fees.Sum

	return stats, nil
}

func (s *StatsService) ParticipantStats(ctx context.Context, email string) (domain.ParticipantStats, error) {
	var (
		fees   domain.FeeTotal
		counts domain.RegistrationCounts
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		if fees, err = s.payments.FeeTotal(ctx, email); err != nil {
			return fmt.Errorf("s.payments.FeeTotal -> %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if counts, err = s.participants.CountsByEmail(ctx, email); err != nil {
			return fmt.Errorf("s.participants.CountsByEmail -> %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return domain.ParticipantStats{}, err
	}

	return domain.ParticipantStats{
		Payments:               fees.Count,
		TotalFees:              fees.Sum,
		Registrations:          counts.Total,
		PaidRegistrations:      counts.Paid,
		UnpaidRegistrations:    counts.Unpaid,
		ConfirmedRegistrations: counts.Confirmed,
	}, nil
}
