package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/medicamp-api/internal/domain"
)

var testCamp = domain.Camp{
	ID:               "camp1",
	CampName:         "Dental",
	Fees:             "25",
	Location:         "Dhaka",
	ProfessionalName: "Dr. Rahman",
}

func TestParticipantService_Register(t *testing.T) {
	repo := &mockParticipantRepo{}
	camps := &mockCampRepo{}
	svc := NewParticipantService(repo, camps, &mockUserRepo{})
	ctx := context.Background()

	camps.On("FindByID", ctx, "camp1").Return(testCamp, nil)
	repo.On("Create", ctx, mock.MatchedBy(func(p domain.Participant) bool {
		return p.ParticipantEmail == "p@x.io" &&
			p.CampName == "Dental" &&
			p.CampFees == "25" &&
			p.PaymentStatus == domain.PaymentUnpaid &&
			p.ConfirmationStatus == domain.ConfirmationPending
	})).Return(domain.InsertResult{Acknowledged: true, InsertedID: "r1"}, nil)
	camps.On("IncrementParticipantCount", ctx, "camp1").Return(domain.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil).Once()

	outcome, err := svc.Register(ctx, "p@x.io", domain.Participant{CampID: "camp1", ParticipantName: "P", CampFees: "0"})
	require.NoError(t, err)
	assert.True(t, outcome.Complete)
	assert.True(t, outcome.Registered)
	assert.True(t, outcome.CountIncremented)
	assert.Equal(t, "r1", outcome.InsertedID)
	assert.Equal(t, "r1", outcome.Participant.ID)
	assert.Empty(t, outcome.FailedStep)
	repo.AssertExpectations(t)
	camps.AssertExpectations(t)
}

func TestParticipantService_RegisterIncrementFails(t *testing.T) {
	repo := &mockParticipantRepo{}
	camps := &mockCampRepo{}
	svc := NewParticipantService(repo, camps, &mockUserRepo{})
	ctx := context.Background()

	camps.On("FindByID", ctx, "camp1").Return(testCamp, nil)
	repo.On("Create", ctx, mock.Anything).Return(domain.InsertResult{Acknowledged: true, InsertedID: "r1"}, nil)
	camps.On("IncrementParticipantCount", ctx, "camp1").Return(domain.UpdateResult{}, errors.New("write conflict"))

	outcome, err := svc.Register(ctx, "p@x.io", domain.Participant{CampID: "camp1"})
	assert.ErrorIs(t, err, ErrIncomplete)
	assert.True(t, outcome.Registered)
	assert.False(t, outcome.CountIncremented)
	assert.False(t, outcome.Complete)
	assert.Equal(t, domain.RegistrationStepIncrement, outcome.FailedStep)
	assert.Equal(t, "write conflict", outcome.Error)
}

func TestParticipantService_RegisterForSomeoneElse(t *testing.T) {
	svc := NewParticipantService(&mockParticipantRepo{}, &mockCampRepo{}, &mockUserRepo{})

	_, err := svc.Register(context.Background(), "p@x.io", domain.Participant{CampID: "camp1", ParticipantEmail: "other@x.io"})
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestParticipantService_RegisterUnknownCamp(t *testing.T) {
	camps := &mockCampRepo{}
	svc := NewParticipantService(&mockParticipantRepo{}, camps, &mockUserRepo{})
	ctx := context.Background()

	camps.On("FindByID", ctx, "nope").Return(domain.Camp{}, ErrCampNotFound)

	_, err := svc.Register(ctx, "p@x.io", domain.Participant{CampID: "nope"})
	assert.ErrorIs(t, err, ErrCampNotFound)
	assert.NotErrorIs(t, err, ErrIncomplete)
}

func TestParticipantService_CancelDoesNotDecrement(t *testing.T) {
	repo := &mockParticipantRepo{}
	camps := &mockCampRepo{}
	svc := NewParticipantService(repo, camps, &mockUserRepo{})
	ctx := context.Background()

	repo.On("FindByID", ctx, "r1").Return(domain.Participant{ID: "r1", CampID: "camp1", ParticipantEmail: "p@x.io"}, nil)
	repo.On("Delete", ctx, "r1").Return(domain.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil)

	_, err := svc.Cancel(ctx, "intruder@x.io", "r1")
	assert.ErrorIs(t, err, ErrNotOwner)

	result, err := svc.Cancel(ctx, "p@x.io", "r1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.DeletedCount)

	camps.AssertNotCalled(t, "IncrementParticipantCount", mock.Anything, mock.Anything)
	repo.AssertNumberOfCalls(t, "Delete", 1)
}

func TestParticipantService_GetRegistration(t *testing.T) {
	ctx := context.Background()
	registration := domain.Participant{ID: "r1", CampID: "camp1", ParticipantEmail: "owner@x.io"}

	tests := []struct {
		name    string
		actor   string
		setup   func(users *mockUserRepo)
		wantErr error
	}{
		{
			name:  "owner",
			actor: "owner@x.io",
			setup: func(*mockUserRepo) {},
		},
		{
			name:  "organizer",
			actor: "org@x.io",
			setup: func(users *mockUserRepo) {
				users.On("FindByEmail", ctx, "org@x.io").Return(domain.User{Email: "org@x.io", Role: domain.RoleOrganizer}, nil)
			},
		},
		{
			name:  "other participant",
			actor: "other@x.io",
			setup: func(users *mockUserRepo) {
				users.On("FindByEmail", ctx, "other@x.io").Return(domain.User{Email: "other@x.io", Role: domain.RoleParticipant}, nil)
			},
			wantErr: ErrNotOwner,
		},
		{
			name:  "unknown user",
			actor: "ghost@x.io",
			setup: func(users *mockUserRepo) {
				users.On("FindByEmail", ctx, "ghost@x.io").Return(domain.User{}, ErrUserNotFound)
			},
			wantErr: ErrNotOwner,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockParticipantRepo{}
			users := &mockUserRepo{}
			svc := NewParticipantService(repo, &mockCampRepo{}, users)

			repo.On("FindByID", ctx, "r1").Return(registration, nil)
			tt.setup(users)

			got, err := svc.GetRegistration(ctx, tt.actor, "r1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got.ID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, registration, got)
			users.AssertExpectations(t)
		})
	}
}

func TestParticipantService_GetRegistrationNotFound(t *testing.T) {
	ctx := context.Background()
	repo := &mockParticipantRepo{}
	svc := NewParticipantService(repo, &mockCampRepo{}, &mockUserRepo{})

	repo.On("FindByID", ctx, "missing").Return(domain.Participant{}, ErrParticipantNotFound)

	_, err := svc.GetRegistration(ctx, "owner@x.io", "missing")
	assert.ErrorIs(t, err, ErrParticipantNotFound)
}
