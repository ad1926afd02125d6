package dao

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUserDAO_InsertIfAbsent(t *testing.T) {
	ctx := context.Background()
	users := NewUserDAO(newTestDB(t))

	id, created, err := users.InsertIfAbsent(ctx, User{Email: "a@b.co", Name: "A", Role: "Participant"})
	require.NoError(t, err)
	assert.True(t, created)
	assert.False(t, id.IsZero())

	_, created, err = users.InsertIfAbsent(ctx, User{Email: "a@b.co", Name: "Other", Role: "Organizer"})
	require.NoError(t, err)
	assert.False(t, created)

	u, err := users.FindByEmail(ctx, "a@b.co")
	require.NoError(t, err)
	assert.Equal(t, "A", u.Name)
	assert.Equal(t, "Participant", u.Role)

	count, err := users.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestUserDAO_InsertIfAbsentConcurrent(t *testing.T) {
	ctx := context.Background()
	users := NewUserDAO(newTestDB(t))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := users.InsertIfAbsent(ctx, User{Email: "race@b.co", Role: "Participant"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	count, err := users.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestUserDAO_FindErrors(t *testing.T) {
	ctx := context.Background()
	users := NewUserDAO(newTestDB(t))

	_, err := users.FindByEmail(ctx, "ghost@b.co")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = users.FindByID(ctx, "not-hex")
	assert.ErrorIs(t, err, ErrInvalidID)
}

func seedCamp(t *testing.T, camps *CampDAO, name, fees string) string {
	t.Helper()

	res, err := camps.Insert(context.Background(), Camp{
		CampName:         name,
		Fees:             fees,
		DateTime:         "2026-11-02T09:00",
		ProfessionalName: "Dr. " + name,
		Location:         "Dhaka",
		ParticipantCount: 99,
	})
	require.NoError(t, err)
	return res.InsertedID.Hex()
}

func TestCampDAO_InsertResetsCounterAndIncrement(t *testing.T) {
	ctx := context.Background()
	camps := NewCampDAO(newTestDB(t))

	id := seedCamp(t, camps, "Eye care", "10")

	camp, err := camps.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 0, camp.ParticipantCount)

	res, err := camps.IncrementParticipantCount(ctx, id)
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.ModifiedCount)

	camp, err = camps.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 1, camp.ParticipantCount)

	res, err = camps.IncrementParticipantCount(ctx, primitive.NewObjectID().Hex())
	require.NoError(t, err)
	assert.EqualValues(t, 0, res.MatchedCount)
}

func TestCampDAO_ListSortsAndPages(t *testing.T) {
	ctx := context.Background()
	camps := NewCampDAO(newTestDB(t))

	seedCamp(t, camps, "Bravo", "100")
	seedCamp(t, camps, "Alpha", "free")
	seedCamp(t, camps, "Charlie", "25.5")
	seedCamp(t, camps, "Delta", "9")

	byFees, err := camps.List(ctx, CampListQuery{Sort: "fees"})
	require.NoError(t, err)
	require.Len(t, byFees, 4)
	assert.Equal(t, []string{"Bravo", "Charlie", "Delta", "Alpha"}, campNames(byFees))

	cheapest, err := camps.List(ctx, CampListQuery{Sort: "feesAsc", Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha", "Delta"}, campNames(cheapest))

	first, err := camps.List(ctx, CampListQuery{Sort: "campName", Skip: 0, Limit: 2})
	require.NoError(t, err)
	second, err := camps.List(ctx, CampListQuery{Sort: "campName", Skip: 2, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha", "Bravo"}, campNames(first))
	assert.Equal(t, []string{"Charlie", "Delta"}, campNames(second))
}

func TestCampDAO_Search(t *testing.T) {
	ctx := context.Background()
	camps := NewCampDAO(newTestDB(t))

	seedCamp(t, camps, "Dental check", "10")
	seedCamp(t, camps, "Cardio", "10")

	found, err := camps.List(ctx, CampListQuery{Search: "DENTAL"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Dental check"}, campNames(found))

	// professionalName is "Dr. <name>".
	count, err := camps.Count(ctx, "dr. cardio")
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	count, err = camps.Count(ctx, "2026-11")
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	count, err = camps.Count(ctx, "(")
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)
}

func campNames(camps []Camp) []string {
	names := make([]string, 0, len(camps))
	for _, c := range camps {
		names = append(names, c.CampName)
	}
	return names
}

func seedRegistration(t *testing.T, participants *ParticipantDAO, campID, campName, fees, email string, createdAt time.Time) string {
	t.Helper()

	oid, err := primitive.ObjectIDFromHex(campID)
	require.NoError(t, err)

	res, err := participants.Insert(context.Background(), Participant{
		CampID:           oid,
		CampName:         campName,
		CampFees:         fees,
		ParticipantName:  "Ana",
		ParticipantEmail: email,
		Age:              30,
		PaymentStatus:    "Paid",
		CreatedAt:        createdAt,
	})
	require.NoError(t, err)
	return res.InsertedID.Hex()
}

func TestParticipantDAO_Lifecycle(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	camps := NewCampDAO(db)
	participants := NewParticipantDAO(db)

	campID := seedCamp(t, camps, "Eye care", "10")
	_, err := camps.IncrementParticipantCount(ctx, campID)
	require.NoError(t, err)

	id := seedRegistration(t, participants, campID, "Eye care", "10", "p@b.co", time.Time{})

	p, err := participants.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Unpaid", p.PaymentStatus)
	assert.Equal(t, "Pending", p.ConfirmationStatus)

	res, err := participants.Confirm(ctx, id)
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.ModifiedCount)

	res, err = participants.Confirm(ctx, id)
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.MatchedCount)
	assert.EqualValues(t, 0, res.ModifiedCount)

	_, err = participants.MarkPaid(ctx, id)
	require.NoError(t, err)
	_, err = participants.MarkPaid(ctx, id)
	assert.ErrorIs(t, err, ErrAlreadyPaid)
	_, err = participants.MarkPaid(ctx, primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, ErrParticipantNotFound)

	del, err := participants.Delete(ctx, id)
	require.NoError(t, err)
	assert.EqualValues(t, 1, del.DeletedCount)

	camp, err := camps.FindByID(ctx, campID)
	require.NoError(t, err)
	assert.Equal(t, 1, camp.ParticipantCount)

	_, err = participants.FindByID(ctx, id)
	assert.ErrorIs(t, err, ErrParticipantNotFound)
}

func TestParticipantDAO_FindByEmail(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	participants := NewParticipantDAO(db)
	campID := seedCamp(t, NewCampDAO(db), "Eye care", "10")

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	seedRegistration(t, participants, campID, "Eye care", "10", "p@b.co", base)
	seedRegistration(t, participants, campID, "Dental", "20", "p@b.co", base.Add(time.Hour))
	seedRegistration(t, participants, campID, "Cardio", "30", "other@b.co", base)

	rows, err := participants.FindByEmail(ctx, "p@b.co", "", 0, 10)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Dental", rows[0].CampName)

	rows, err = participants.FindByEmail(ctx, "p@b.co", "eye", 0, 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	count, err := participants.CountByEmail(ctx, "p@b.co", "unpaid")
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	counts, err := participants.CountsByEmail(ctx, "p@b.co")
	require.NoError(t, err)
	assert.Equal(t, RegistrationCounts{Total: 2, Unpaid: 2}, counts)

	counts, err = participants.CountsByEmail(ctx, "nobody@b.co")
	require.NoError(t, err)
	assert.Equal(t, RegistrationCounts{}, counts)
}

func TestParticipantDAO_ListWithPayments(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	camps := NewCampDAO(db)
	participants := NewParticipantDAO(db)
	payments := NewPaymentDAO(db)

	cheap := seedCamp(t, camps, "Cheap", "5")
	dear := seedCamp(t, camps, "Dear", "50")
	seedRegistration(t, participants, cheap, "Cheap", "5", "p@b.co", time.Time{})
	seedRegistration(t, participants, dear, "Dear", "50", "p@b.co", time.Time{})

	dearOID, _ := primitive.ObjectIDFromHex(dear)
	_, err := payments.Insert(ctx, Payment{Email: "p@b.co", CampID: dearOID, CampName: "Dear", CampFees: "50", TransactionID: "pi_dear", PaymentStatus: "Paid"})
	require.NoError(t, err)

	rows, err := participants.ListWithPayments(ctx, "", 0, 10)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Dear", rows[0].CampName)
	assert.Equal(t, "pi_dear", rows[0].TransactionID)
	assert.Equal(t, "Cheap", rows[1].CampName)
	assert.Empty(t, rows[1].TransactionID)

	count, err := participants.CountWithPayments(ctx, "cheap")
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestParticipantDAO_AnalyticsJoinsByName(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	camps := NewCampDAO(db)
	participants := NewParticipantDAO(db)

	campID := seedCamp(t, camps, "Eye care", "10")
	_, err := camps.IncrementParticipantCount(ctx, campID)
	require.NoError(t, err)
	_, err = camps.IncrementParticipantCount(ctx, campID)
	require.NoError(t, err)

	seedRegistration(t, participants, campID, "Eye care", "10", "p@b.co", time.Time{})
	seedRegistration(t, participants, campID, "Renamed camp", "10", "p@b.co", time.Time{})

	rows, err := participants.Analytics(ctx, "p@b.co")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byName := map[string]int{}
	for _, r := range rows {
		byName[r.CampName] = r.ParticipantCount
	}
	assert.Equal(t, 2, byName["Eye care"])
	assert.Equal(t, 0, byName["Renamed camp"])
}

func TestPaymentDAO_HistoryAndTotals(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	participants := NewParticipantDAO(db)
	payments := NewPaymentDAO(db)

	campID := seedCamp(t, NewCampDAO(db), "Eye care", "10")
	regID := seedRegistration(t, participants, campID, "Eye care", "12.5", "p@b.co", time.Time{})
	_, err := participants.Confirm(ctx, regID)
	require.NoError(t, err)

	campOID, _ := primitive.ObjectIDFromHex(campID)
	first, err := payments.Insert(ctx, Payment{Email: "p@b.co", CampID: campOID, CampName: "Eye care", CampFees: "12.5", TransactionID: "pi_1", PaymentStatus: "Pending"})
	require.NoError(t, err)
	_, err = payments.UpdateStatus(ctx, first.InsertedID, "Paid")
	require.NoError(t, err)
	_, err = payments.Insert(ctx, Payment{Email: "p@b.co", CampID: primitive.NewObjectID(), CampName: "Gone", CampFees: "n/a", TransactionID: "pi_2", PaymentStatus: "Paid"})
	require.NoError(t, err)

	rows, err := payments.History(ctx, "p@b.co", "", 0, 10)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byTx := map[string]PaymentHistoryRow{}
	for _, r := range rows {
		byTx[r.TransactionID] = r
	}
	assert.Equal(t, "Confirmed", byTx["pi_1"].ConfirmationStatus)
	assert.Equal(t, "Pending", byTx["pi_2"].ConfirmationStatus)
	assert.Equal(t, "Gone", byTx["pi_2"].CampName)

	count, err := payments.CountHistory(ctx, "p@b.co", "confirmed")
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	total, err := payments.FeeTotal(ctx, "p@b.co")
	require.NoError(t, err)
	assert.EqualValues(t, 2, total.Count)
	assert.InDelta(t, 12.5, total.Sum, 0.0001)

	empty, err := payments.FeeTotal(ctx, "nobody@b.co")
	require.NoError(t, err)
	assert.Equal(t, FeeTotal{}, empty)
}

func TestPaymentJoin_SameCampSameEmail(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	participants := NewParticipantDAO(db)
	payments := NewPaymentDAO(db)

	campID := seedCamp(t, NewCampDAO(db), "Eye care", "10")
	first := seedRegistration(t, participants, campID, "Eye care", "10", "p@b.co", time.Time{})
	second := seedRegistration(t, participants, campID, "Eye care", "10", "p@b.co", time.Time{})
	_, err := participants.Confirm(ctx, second)
	require.NoError(t, err)

	campOID, _ := primitive.ObjectIDFromHex(campID)
	secondOID, _ := primitive.ObjectIDFromHex(second)
	_, err = payments.Insert(ctx, Payment{
		Email:         "p@b.co",
		CampID:        campOID,
		ParticipantID: secondOID,
		CampName:      "Eye care",
		CampFees:      "10",
		TransactionID: "pi_second",
		PaymentStatus: "Paid",
	})
	require.NoError(t, err)

	history, err := payments.History(ctx, "p@b.co", "", 0, 10)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "Confirmed", history[0].ConfirmationStatus)

	rows, err := participants.ListWithPayments(ctx, "", 0, 10)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byID := map[string]ParticipantRow{}
	for _, r := range rows {
		byID[r.ID.Hex()] = r
	}
	assert.Empty(t, byID[first].TransactionID)
	assert.Equal(t, "pi_second", byID[second].TransactionID)
}

func TestFeedbackDAO_Summary(t *testing.T) {
	ctx := context.Background()
	feedbacks := NewFeedbackDAO(newTestDB(t))

	empty, err := feedbacks.Summary(ctx, 3)
	require.NoError(t, err)
	assert.Zero(t, empty.Count)
	assert.Empty(t, empty.Latest)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, rating := range []int{5, 4, 5, 1} {
		_, err = feedbacks.Insert(ctx, Feedback{Email: "p@b.co", Rating: rating, Feedback: "ok", Date: base.Add(time.Duration(i) * time.Hour)})
		require.NoError(t, err)
	}

	summary, err := feedbacks.Summary(ctx, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 4, summary.Count)
	assert.InDelta(t, 3.75, summary.AverageRating, 0.0001)
	assert.Equal(t, map[string]int64{"1": 1, "4": 1, "5": 2}, summary.Ratings)
	require.Len(t, summary.Latest, 2)
	assert.Equal(t, 1, summary.Latest[0].Rating)
}

func TestImageDAO_FindByEmail(t *testing.T) {
	ctx := context.Background()
	images := NewImageDAO(newTestDB(t))

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err := images.Insert(ctx, GeneratedImage{Email: "p@b.co", Prompt: "old", ImageURL: "https://i/1", CreatedAt: base})
	require.NoError(t, err)
	_, err = images.Insert(ctx, GeneratedImage{Email: "p@b.co", Prompt: "new", ImageURL: "https://i/2", CreatedAt: base.Add(time.Minute)})
	require.NoError(t, err)
	_, err = images.Insert(ctx, GeneratedImage{Email: "x@b.co", Prompt: "other", ImageURL: "https://i/3"})
	require.NoError(t, err)

	found, err := images.FindByEmail(ctx, "p@b.co")
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "new", found[0].Prompt)
}
