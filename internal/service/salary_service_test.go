package service

import (
	"context"
	"testing"

	"attendance-backend/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSalaryEstimate(t *testing.T) {
	users := &fakeUserRepo{}
	records := newFakeAttendanceRepo()
	svc := NewSalaryService(records, users)
	ctx := context.Background()

	user := &model.User{ID: uuid.New(), Name: "Asha Rao", Role: model.RoleEmployee, IsActive: true}
	users.users = append(users.users, user)

	seed := func(date, status string) {
		require.NoError(t, records.Create(ctx, &model.AttendanceRecord{
			UserID: user.ID,
			Date:   date,
			Status: status,
		}))
	}
	seed("2025-06-02", model.StatusPresent)
	seed("2025-06-03", model.StatusPresent)
	seed("2025-06-04", model.StatusHalfDay)
	seed("2025-06-05", model.StatusAbsent)
	seed("2025-06-06", model.StatusIn) // in progress, excluded from payout
	seed("2025-07-01", model.StatusPresent)

	est, err := svc.Estimate(ctx, user.ID.String(), "2025-06", decimal.NewFromInt(1000))
	require.NoError(t, err)

	// 2 full days + half a day; the ABSENT and in-progress days pay nothing,
	// and July stays out of a June estimate.
	assert.True(t, est.PayableDays.Equal(decimal.NewFromFloat(2.5)), "payable days = %s", est.PayableDays)
	assert.True(t, est.Amount.Equal(decimal.NewFromInt(2500)), "amount = %s", est.Amount)
	assert.Equal(t, int64(2), est.StatusDays[model.StatusPresent])
}

func TestSalaryEstimateValidation(t *testing.T) {
	users := &fakeUserRepo{}
	svc := NewSalaryService(newFakeAttendanceRepo(), users)
	ctx := context.Background()

	_, err := svc.Estimate(ctx, uuid.NewString(), "2025-06", decimal.NewFromInt(-1))
	assert.EqualError(t, err, "dailyRate must not be negative")

	_, err = svc.Estimate(ctx, uuid.NewString(), "2025-06", decimal.NewFromInt(500))
	assert.EqualError(t, err, "user not found")

	user := &model.User{ID: uuid.New(), IsActive: true}
	users.users = append(users.users, user)
	_, err = svc.Estimate(ctx, user.ID.String(), "June", decimal.NewFromInt(500))
	assert.EqualError(t, err, "invalid month, expected YYYY-MM")
}
