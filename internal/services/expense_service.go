package services

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"newlife/internal/models/db_models"
	"newlife/internal/models/request_models"
	resp "newlife/internal/models/response_models"
	"newlife/internal/repositories"
	"newlife/pkg/utils"
)

type ExpenseServiceInterface interface {
	AddExpense(ctx context.Context, userID, tripID uuid.UUID, request request_models.CreateExpenseRequest) (*resp.ExpenseResponse, error)
	ListExpenses(ctx context.Context, userID, tripID uuid.UUID) ([]resp.ExpenseResponse, error)
	UpdateExpense(ctx context.Context, userID, tripID, expenseID uuid.UUID, request request_models.UpdateExpenseRequest) (*resp.ExpenseResponse, error)
	DeleteExpense(ctx context.Context, userID, tripID, expenseID uuid.UUID) error
	GetBudgetSummary(ctx context.Context, userID, tripID uuid.UUID) (*resp.BudgetSummary, error)
}

type ExpenseService struct {
	expenseRepo repositories.ExpenseRepositoryInterface
	trips       TripServiceInterface
	logger      *zap.Logger
	now         func() time.Time
}

func NewExpenseService(expenseRepo repositories.ExpenseRepositoryInterface, trips TripServiceInterface, logger *zap.Logger) ExpenseServiceInterface {
	return &ExpenseService{
		expenseRepo: expenseRepo,
		trips:       trips,
		logger:      logger,
		now:         time.Now,
	}
}

func normalizeCategory(c string) (string, error) {
	c = strings.ToLower(strings.TrimSpace(c))
	if c == "" {
		return db_models.CategoryOther, nil
	}
	if !db_models.IsExpenseCategory(c) {
		return "", utils.ErrInvalidInput
	}
	return c, nil
}

func (s *ExpenseService) AddExpense(ctx context.Context, userID, tripID uuid.UUID, request request_models.CreateExpenseRequest) (*resp.ExpenseResponse, error) {
	if _, err := s.trips.OwnedTrip(ctx, userID, tripID); err != nil {
		return nil, err
	}

	category, err := normalizeCategory(request.Category)
	if err != nil {
		return nil, err
	}
	title := strings.TrimSpace(request.Title)
	if title == "" || request.Amount <= 0 {
		return nil, utils.ErrInvalidInput
	}

	spentAt := utils.NormalizeDate(s.now())
	if request.SpentAt != "" {
		if spentAt, err = utils.ParseDate(request.SpentAt); err != nil {
			return nil, utils.ErrInvalidInput
		}
	}

	expense := &db_models.Expense{
		TripID:   tripID,
		UserID:   userID,
		Title:    title,
		Amount:   request.Amount,
		Category: category,
		SpentAt:  spentAt,
		Notes:    strings.TrimSpace(request.Notes),
	}
	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return toExpenseResponse(expense), nil
}

func (s *ExpenseService) ListExpenses(ctx context.Context, userID, tripID uuid.UUID) ([]resp.ExpenseResponse, error) {
	if _, err := s.trips.OwnedTrip(ctx, userID, tripID); err != nil {
		return nil, err
	}

	expenses, err := s.expenseRepo.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	out := make([]resp.ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		out = append(out, *toExpenseResponse(&expenses[i]))
	}
	return out, nil
}

// ownedExpense requires that the caller owns both the trip and the expense, and that the expense belongs to the trip.
func (s *ExpenseService) ownedExpense(ctx context.Context, userID, tripID, expenseID uuid.UUID) (*db_models.Expense, error) {
	if _, err := s.trips.OwnedTrip(ctx, userID, tripID); err != nil {
		return nil, err
	}
	expense, err := s.expenseRepo.FindById(ctx, expenseID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if expense == nil || expense.TripID != tripID {
		return nil, utils.ErrExpenseNotFound
	}
	if !db_models.IsOwnedBy(expense.UserID, userID) {
		return nil, utils.ErrForbidden
	}
	return expense, nil
}

func (s *ExpenseService) UpdateExpense(ctx context.Context, userID, tripID, expenseID uuid.UUID, request request_models.UpdateExpenseRequest) (*resp.ExpenseResponse, error) {
	expense, err := s.ownedExpense(ctx, userID, tripID, expenseID)
	if err != nil {
		return nil, err
	}

	if request.Title != nil {
		expense.Title = strings.TrimSpace(*request.Title)
		if expense.Title == "" {
			return nil, utils.ErrInvalidInput
		}
	}
	if request.Amount != nil {
		if *request.Amount <= 0 {
			return nil, utils.ErrInvalidInput
		}
		expense.Amount = *request.Amount
	}
	if request.Category != nil {
		if expense.Category, err = normalizeCategory(*request.Category); err != nil {
			return nil, err
		}
	}
	if request.SpentAt != nil {
		if expense.SpentAt, err = utils.ParseDate(*request.SpentAt); err != nil {
			return nil, utils.ErrInvalidInput
		}
	}
	if request.Notes != nil {
		expense.Notes = strings.TrimSpace(*request.Notes)
	}

	if err := s.expenseRepo.Update(ctx, expense); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return toExpenseResponse(expense), nil
}

func (s *ExpenseService) DeleteExpense(ctx context.Context, userID, tripID, expenseID uuid.UUID) error {
	if _, err := s.ownedExpense(ctx, userID, tripID, expenseID); err != nil {
		return err
	}
	if err := s.expenseRepo.Delete(ctx, expenseID); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return nil
}

func (s *ExpenseService) GetBudgetSummary(ctx context.Context, userID, tripID uuid.UUID) (*resp.BudgetSummary, error) {
	trip, err := s.trips.OwnedTrip(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}

	sums, err := s.expenseRepo.SumByCategory(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return BuildBudgetSummary(trip, sums), nil
}

// BuildBudgetSummary folds per-category totals into the trip's budget view.
func BuildBudgetSummary(trip *db_models.Trip, sums []repositories.CategorySum) *resp.BudgetSummary {
	var spent float64
	for _, s := range sums {
		spent += s.Total
	}

	byCategory := make([]resp.CategoryTotal, 0, len(sums))
	for _, s := range sums {
		var pct float64
		if spent > 0 {
			pct = round2(s.Total / spent * 100)
		}
		byCategory = append(byCategory, resp.CategoryTotal{
			Category: s.Category,
			Amount:   round2(s.Total),
			Count:    s.Count,
			Percent:  pct,
		})
	}

	summary := &resp.BudgetSummary{
		TripID:     trip.ID,
		Currency:   trip.Currency,
		Budget:     trip.Budget,
		Spent:      round2(spent),
		Remaining:  round2(trip.Budget - spent),
		OverBudget: spent > trip.Budget,
		ByCategory: byCategory,
	}
	if trip.Budget > 0 {
		summary.PercentUsed = round2(spent / trip.Budget * 100)
	}
	if trip.Travelers > 0 {
		summary.PerTraveler = round2(spent / float64(trip.Travelers))
	}
	return summary
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func toExpenseResponse(e *db_models.Expense) *resp.ExpenseResponse {
	return &resp.ExpenseResponse{
		ID:        e.ID,
		TripID:    e.TripID,
		UserID:    e.UserID,
		Title:     e.Title,
		Amount:    e.Amount,
		Category:  e.Category,
		SpentAt:   utils.FormatDate(e.SpentAt),
		Notes:     e.Notes,
		CreatedAt: e.CreatedAt,
	}
}
