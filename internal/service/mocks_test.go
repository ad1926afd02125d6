package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/vietanh2810/medicamp-api/internal/domain"
	"github.com/vietanh2810/medicamp-api/internal/pkg/payment"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, user domain.User) (domain.CreateUserResult, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(domain.CreateUserResult), args.Error(1)
}

func (m *mockUserRepo) FindAll(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id string) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *mockUserRepo) UpdateProfile(ctx context.Context, id string, patch domain.ProfilePatch) (domain.UpdateResult, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(domain.UpdateResult), args.Error(1)
}

func (m *mockUserRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockCampRepo struct{ mock.Mock }

func (m *mockCampRepo) Create(ctx context.Context, camp domain.Camp) (domain.InsertResult, error) {
	args := m.Called(ctx, camp)
	return args.Get(0).(domain.InsertResult), args.Error(1)
}

func (m *mockCampRepo) FindByID(ctx context.Context, id string) (domain.Camp, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Camp), args.Error(1)
}

func (m *mockCampRepo) List(ctx context.Context, q domain.CampQuery) ([]domain.Camp, error) {
	args := m.Called(ctx, q)
	return args.Get(0).([]domain.Camp), args.Error(1)
}

func (m *mockCampRepo) Count(ctx context.Context, search string) (int64, error) {
	args := m.Called(ctx, search)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCampRepo) Update(ctx context.Context, id string, camp domain.Camp) (domain.UpdateResult, error) {
	args := m.Called(ctx, id, camp)
	return args.Get(0).(domain.UpdateResult), args.Error(1)
}

func (m *mockCampRepo) Delete(ctx context.Context, id string) (domain.DeleteResult, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.DeleteResult), args.Error(1)
}

func (m *mockCampRepo) IncrementParticipantCount(ctx context.Context, id string) (domain.UpdateResult, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.UpdateResult), args.Error(1)
}

type mockParticipantRepo struct{ mock.Mock }

func (m *mockParticipantRepo) Create(ctx context.Context, p domain.Participant) (domain.InsertResult, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(domain.InsertResult), args.Error(1)
}

func (m *mockParticipantRepo) FindByID(ctx context.Context, id string) (domain.Participant, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Participant), args.Error(1)
}

func (m *mockParticipantRepo) FindByEmail(ctx context.Context, email string, q domain.ListQuery) ([]domain.Participant, error) {
	args := m.Called(ctx, email, q)
	return args.Get(0).([]domain.Participant), args.Error(1)
}

func (m *mockParticipantRepo) CountByEmail(ctx context.Context, email, search string) (int64, error) {
	args := m.Called(ctx, email, search)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockParticipantRepo) ListWithPayments(ctx context.Context, q domain.ListQuery) ([]domain.ParticipantRow, error) {
	args := m.Called(ctx, q)
	return args.Get(0).([]domain.ParticipantRow), args.Error(1)
}

func (m *mockParticipantRepo) CountWithPayments(ctx context.Context, search string) (int64, error) {
	args := m.Called(ctx, search)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockParticipantRepo) MarkPaid(ctx context.Context, id string) (domain.UpdateResult, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.UpdateResult), args.Error(1)
}

func (m *mockParticipantRepo) Confirm(ctx context.Context, id string) (domain.UpdateResult, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.UpdateResult), args.Error(1)
}

func (m *mockParticipantRepo) Delete(ctx context.Context, id string) (domain.DeleteResult, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.DeleteResult), args.Error(1)
}

func (m *mockParticipantRepo) Analytics(ctx context.Context, email string) ([]domain.AnalyticsRow, error) {
	args := m.Called(ctx, email)
	return args.Get(0).([]domain.AnalyticsRow), args.Error(1)
}

func (m *mockParticipantRepo) CountsByEmail(ctx context.Context, email string) (domain.RegistrationCounts, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.RegistrationCounts), args.Error(1)
}

type mockPaymentRepo struct{ mock.Mock }

func (m *mockPaymentRepo) Create(ctx context.Context, p domain.Payment) (domain.InsertResult, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(domain.InsertResult), args.Error(1)
}

func (m *mockPaymentRepo) UpdateStatus(ctx context.Context, id string, status domain.PaymentStatus) (domain.UpdateResult, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(domain.UpdateResult), args.Error(1)
}

func (m *mockPaymentRepo) History(ctx context.Context, email string, q domain.ListQuery) ([]domain.PaymentHistoryRow, error) {
	args := m.Called(ctx, email, q)
	return args.Get(0).([]domain.PaymentHistoryRow), args.Error(1)
}

func (m *mockPaymentRepo) CountHistory(ctx context.Context, email, search string) (int64, error) {
	args := m.Called(ctx, email, search)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockPaymentRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockPaymentRepo) FeeTotal(ctx context.Context, email string) (domain.FeeTotal, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.FeeTotal), args.Error(1)
}

type mockProcessor struct{ mock.Mock }

func (m *mockProcessor) CreateIntent(ctx context.Context, amount int64) (payment.Intent, error) {
	args := m.Called(ctx, amount)
	return args.Get(0).(payment.Intent), args.Error(1)
}

type mockImageRepo struct{ mock.Mock }

func (m *mockImageRepo) Create(ctx context.Context, img domain.GeneratedImage) (domain.GeneratedImage, error) {
	args := m.Called(ctx, img)
	return args.Get(0).(domain.GeneratedImage), args.Error(1)
}

func (m *mockImageRepo) FindByEmail(ctx context.Context, email string) ([]domain.GeneratedImage, error) {
	args := m.Called(ctx, email)
	return args.Get(0).([]domain.GeneratedImage), args.Error(1)
}

type mockGenerator struct{ mock.Mock }

func (m *mockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}
