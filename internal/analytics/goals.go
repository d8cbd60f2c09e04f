package analytics

import (
	"time"

	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/internal/types"
	"github.com/shopspring/decimal"
)

// GoalStatus reports the progress towards one savings goal, measured
// against the all-time balance.
type GoalStatus struct {
	Goal               models.Goal     `json:"goal"`
	CurrentAmount      decimal.Decimal `json:"currentAmount" example:"1200"`
	ProgressPercentage float64         `json:"progressPercentage" example:"24"`
	RemainingAmount    decimal.Decimal `json:"remainingAmount" example:"3800"`
	DaysRemaining      int             `json:"daysRemaining" example:"312"`
	MonthlyRequirement decimal.Decimal `json:"monthlyRequirement" example:"365.38"`
	Achieved           bool            `json:"achieved"`
	Overdue            bool            `json:"overdue"`
	OnTrack            bool            `json:"onTrack"`
}

// GoalProgress evaluates every configured goal. A goal is achieved once
// the balance reaches its target, overdue when its target date has
// passed unachieved, and on track while the actual progress stays within
// 20% of the progress a linear schedule would expect.
func (e *Engine) GoalProgress() []GoalStatus {
	now := e.now()
	balance := e.Balance(time.Time{}, time.Time{}).Balance

	statuses := make([]GoalStatus, 0)
	for _, goal := range e.store.Goals() {
		statuses = append(statuses, goalStatus(goal, balance, now))
	}

	return statuses
}

func goalStatus(goal models.Goal, balance decimal.Decimal, now time.Time) GoalStatus {
	targetDate, err := types.ParseDate(goal.TargetDate)
	if err != nil {
		targetDate = now.AddDate(5, 0, 0)
	}
	startDate, err := types.ParseDate(goal.StartDate)
	if err != nil {
		startDate = now
	}

	progress := 0.0
	if goal.TargetAmount.IsPositive() {
		progress = balance.Div(goal.TargetAmount).InexactFloat64() * 100
	}
	if progress > 100 {
		progress = 100
	}
	if progress < 0 {
		progress = 0
	}

	remaining := goal.TargetAmount.Sub(balance)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	daysTotal := int(targetDate.Sub(startDate).Hours() / 24)
	daysRemaining := int(targetDate.Sub(now).Hours() / 24)

	var monthlyRequirement decimal.Decimal
	if daysRemaining > 0 && remaining.IsPositive() {
		monthsLeft := float64(daysRemaining) / 30
		if monthsLeft < 1 {
			monthsLeft = 1
		}
		monthlyRequirement = remaining.Div(decimal.NewFromFloat(monthsLeft)).Round(2)
	}

	achieved := balance.GreaterThanOrEqual(goal.TargetAmount)

	return GoalStatus{
		Goal:               goal,
		CurrentAmount:      balance,
		ProgressPercentage: progress,
		RemainingAmount:    remaining,
		DaysRemaining:      daysRemaining,
		MonthlyRequirement: monthlyRequirement,
		Achieved:           achieved,
		Overdue:            daysRemaining < 0 && !achieved,
		OnTrack:            onTrack(goal, balance, daysTotal, daysRemaining),
	}
}

func onTrack(goal models.Goal, balance decimal.Decimal, daysTotal, daysRemaining int) bool {
	if daysTotal <= 0 || !goal.TargetAmount.IsPositive() {
		return true
	}

	expected := float64(daysTotal-daysRemaining) / float64(daysTotal)
	actual := balance.Div(goal.TargetAmount).InexactFloat64()

	// 20% tolerance against the linear schedule
	return actual >= expected*0.8
}
