package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrZeroAmount      = errors.New("transaction amount must be non-zero")
)

// FinanceEngine recalculates a user's financial state after every
// transaction: balances, the daily savings target, the spending buffer,
// the buffer status band, and every goal's progress status.
//
// Each run is a read-then-write sequence over one user's profile and goals.
// Runs for the same user are serialized with a per-user lock, and all writes
// of a run share one database transaction, so a failed run leaves prior
// state untouched.
type FinanceEngine struct {
	db    *gorm.DB
	locks sync.Map // userID → *sync.Mutex
}

func NewFinanceEngine(db *gorm.DB) *FinanceEngine {
	return &FinanceEngine{db: db}
}

// TransactionResult is the state handed back after a recalculation.
type TransactionResult struct {
	Transaction *models.Transaction `json:"transaction"`
	Profile     *models.Profile     `json:"profile"`
	Goals       []models.Goal       `json:"goals"`
}

// advisoryEvent is queued during a workflow and emitted only after the
// enclosing transaction commits.
type advisoryEvent struct {
	typ     string
	message string
}

func (e *FinanceEngine) userLock(userID uint) *sync.Mutex {
	mu, _ := e.locks.LoadOrStore(userID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// ApplyTransaction records a signed transaction and reruns the appropriate
// workflow: income allocation for positive amounts, expense handling for
// negative ones.
func (e *FinanceEngine) ApplyTransaction(ctx context.Context, userID uint, amount float64, note string) (*TransactionResult, error) {
	if amount == 0 {
		return nil, ErrZeroAmount
	}

	mu := e.userLock(userID)
	mu.Lock()
	defer mu.Unlock()

	result := &TransactionResult{}
	var events []advisoryEvent

	err := e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txn := &models.Transaction{UserID: userID, Amount: amount, Note: note}
		if err := tx.Create(txn).Error; err != nil {
			return fmt.Errorf("record transaction: %w", err)
		}
		result.Transaction = txn

		var err error
		if amount > 0 {
			events, err = e.allocateIncome(tx, userID, amount, result)
		} else {
			events, err = e.handleExpense(tx, userID, -amount, result)
		}
		return err
	})
	if err != nil {
		workflow := "income allocation"
		if amount < 0 {
			workflow = "expense handling"
		}
		return nil, fmt.Errorf("%s for user %d: %w", workflow, userID, err)
	}

	for _, ev := range events {
		EmitAdvisory(userID, ev.typ, ev.message)
	}
	return result, nil
}

func (e *FinanceEngine) loadProfile(tx *gorm.DB, userID uint) (*models.Profile, error) {
	var profile models.Profile
	err := tx.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return &profile, nil
}

func (e *FinanceEngine) loadGoals(tx *gorm.DB, userID uint) ([]models.Goal, error) {
	var goals []models.Goal
	if err := tx.Preload("Category").Where("user_id = ?", userID).Order("id").Find(&goals).Error; err != nil {
		return nil, fmt.Errorf("load goals: %w", err)
	}
	return goals, nil
}

// allocateIncome splits a positive amount across the user's goals by
// category weight, directs any surplus to the priority goal, and rewrites
// the profile snapshot. Target, buffer, and status figures are derived from
// the goal set as it stood before this call's allocations; the allocations
// show up in those figures on the next event.
func (e *FinanceEngine) allocateIncome(tx *gorm.DB, userID uint, incomeAmount float64, result *TransactionResult) ([]advisoryEvent, error) {
	goals, err := e.loadGoals(tx, userID)
	if err != nil {
		return nil, err
	}
	profile, err := e.loadProfile(tx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	newBalance := profile.TotalBalance + incomeAmount
	newIncome := profile.TodayIncome + incomeAmount

	newTarget := utils.CalculateDailySavingTarget(goals, now)

	prioritized := make([]utils.PrioritizedGoal, len(goals))
	for i := range goals {
		prioritized[i] = utils.PrioritizedGoal{
			ID:            goals[i].ID,
			Name:          goals[i].Name,
			TargetAmount:  goals[i].TargetAmount,
			Weight:        goals[i].Weight(),
			DaysRemaining: utils.DaysRemaining(goals[i].TargetDate, now),
		}
	}
	surplus := utils.AllocateSurplus(incomeAmount, newTarget, profile.TodayExpenses, prioritized)

	// Pre-allocation snapshot drives every derived figure below.
	totalRequired := utils.TotalSavingRequired(goals)
	newBuffer := utils.CalculateDailySpendingBuffer(newBalance, newIncome, newTarget, goals, now)
	report := utils.ClassifyBuffer(newBalance, totalRequired, profile.AverageDailyExpenses)

	for i := range goals {
		g := &goals[i]
		allocation := incomeAmount * g.Weight()
		if surplus != nil && surplus.GoalID == g.ID {
			allocation += surplus.Amount
		}

		progress := utils.ClassifyGoalProgress(*g, now)
		g.SavedAmount += allocation
		g.Status = progress.Status
		g.DaysOffset = progress.DaysOffset
		g.StatusMessage = progress.Message

		if err := tx.Model(&models.Goal{}).Where("id = ?", g.ID).Updates(map[string]any{
			"saved_amount":   g.SavedAmount,
			"status":         g.Status,
			"days_offset":    g.DaysOffset,
			"status_message": g.StatusMessage,
		}).Error; err != nil {
			return nil, fmt.Errorf("update goal %d: %w", g.ID, err)
		}
	}

	var surplusJSON *string
	if surplus != nil {
		b, _ := json.Marshal(surplus)
		s := string(b)
		surplusJSON = &s
	}

	profile.TotalBalance = newBalance
	profile.TodayIncome = newIncome
	profile.DailySavingsTarget = newTarget
	profile.DailySpendingBuffer = newBuffer
	profile.BufferStatus = report.Status
	profile.BufferDays = report.BufferDays
	profile.SurplusAllocation = surplusJSON

	if err := tx.Model(&models.Profile{}).Where("user_id = ?", userID).Updates(map[string]any{
		"total_balance":         profile.TotalBalance,
		"today_income":          profile.TodayIncome,
		"daily_savings_target":  profile.DailySavingsTarget,
		"daily_spending_buffer": profile.DailySpendingBuffer,
		"buffer_status":         profile.BufferStatus,
		"buffer_days":           profile.BufferDays,
		"surplus_allocation":    profile.SurplusAllocation,
	}).Error; err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	result.Profile = profile
	result.Goals = goals

	var events []advisoryEvent
	if surplus != nil {
		events = append(events, advisoryEvent{models.AdvisorySurplus, surplus.Message})
	}
	if report.Status == utils.BufferCritical {
		events = append(events, advisoryEvent{models.AdvisoryBufferCritical, report.Message})
	}
	return events, nil
}

// handleExpense deducts an expense (passed as a positive magnitude),
// recalculates target and buffer with the goal set unchanged, and checks
// the expense against the buffer the user was last shown.
func (e *FinanceEngine) handleExpense(tx *gorm.DB, userID uint, expenseAmount float64, result *TransactionResult) ([]advisoryEvent, error) {
	goals, err := e.loadGoals(tx, userID)
	if err != nil {
		return nil, err
	}
	profile, err := e.loadProfile(tx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	newBalance := profile.TotalBalance - expenseAmount
	newExpenses := profile.TodayExpenses + expenseAmount

	newTarget := utils.CalculateDailySavingTarget(goals, now)
	newBuffer := utils.CalculateDailySpendingBuffer(newBalance, profile.TodayIncome, newTarget, goals, now)

	// Checked against the previously stored buffer: the allowance being
	// exceeded is the one the user was told about.
	recovery := utils.DetectOverspending(profile.TodayExpenses, expenseAmount, profile.DailySpendingBuffer, profile.DailySavingsTarget)

	totalRequired := utils.TotalSavingRequired(goals)
	report := utils.ClassifyBuffer(newBalance, totalRequired, profile.AverageDailyExpenses)

	for i := range goals {
		g := &goals[i]
		progress := utils.ClassifyGoalProgress(*g, now)
		g.Status = progress.Status
		g.DaysOffset = progress.DaysOffset
		g.StatusMessage = progress.Message

		if err := tx.Model(&models.Goal{}).Where("id = ?", g.ID).Updates(map[string]any{
			"status":         g.Status,
			"days_offset":    g.DaysOffset,
			"status_message": g.StatusMessage,
		}).Error; err != nil {
			return nil, fmt.Errorf("update goal %d: %w", g.ID, err)
		}
	}

	var recoveryJSON *string
	if recovery != nil {
		b, _ := json.Marshal(recovery)
		s := string(b)
		recoveryJSON = &s
	}

	profile.TotalBalance = newBalance
	profile.TodayExpenses = newExpenses
	profile.DailySavingsTarget = newTarget
	profile.DailySpendingBuffer = newBuffer
	profile.BufferStatus = report.Status
	profile.BufferDays = report.BufferDays
	profile.OverspendingRecovery = recoveryJSON

	if err := tx.Model(&models.Profile{}).Where("user_id = ?", userID).Updates(map[string]any{
		"total_balance":         profile.TotalBalance,
		"today_expenses":        profile.TodayExpenses,
		"daily_savings_target":  profile.DailySavingsTarget,
		"daily_spending_buffer": profile.DailySpendingBuffer,
		"buffer_status":         profile.BufferStatus,
		"buffer_days":           profile.BufferDays,
		"overspending_recovery": profile.OverspendingRecovery,
	}).Error; err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	result.Profile = profile
	result.Goals = goals

	var events []advisoryEvent
	if recovery != nil {
		events = append(events, advisoryEvent{models.AdvisoryOverspending, recovery.Message})
	}
	if report.Status == utils.BufferCritical {
		events = append(events, advisoryEvent{models.AdvisoryBufferCritical, report.Message})
	}
	return events, nil
}
