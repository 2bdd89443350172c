package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"newlife/internal/models/db_models"
)

type CategorySum struct {
	Category string
	Total    float64
	Count    int
}

type ExpenseRepositoryInterface interface {
	Create(ctx context.Context, expense *db_models.Expense) error
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Expense, error)
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]db_models.Expense, error)
	Update(ctx context.Context, expense *db_models.Expense) error
	Delete(ctx context.Context, id uuid.UUID) error
	SumByCategory(ctx context.Context, tripID uuid.UUID) ([]CategorySum, error)
}

type ExpenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

func (r *ExpenseRepository) Create(ctx context.Context, expense *db_models.Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

func (r *ExpenseRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Expense, error) {
	var expense db_models.Expense
	err := r.db.WithContext(ctx).First(&expense, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &expense, nil
}

func (r *ExpenseRepository) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]db_models.Expense, error) {
	var expenses []db_models.Expense
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Order("spent_at DESC").
		Order("created_at DESC").
		Find(&expenses).Error
	return expenses, err
}

func (r *ExpenseRepository) Update(ctx context.Context, expense *db_models.Expense) error {
	return r.db.WithContext(ctx).Save(expense).Error
}

func (r *ExpenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&db_models.Expense{}).Error
}

func (r *ExpenseRepository) SumByCategory(ctx context.Context, tripID uuid.UUID) ([]CategorySum, error) {
	var sums []CategorySum
	err := r.db.WithContext(ctx).
		Model(&db_models.Expense{}).
		Select("category, COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count").
		Where("trip_id = ?", tripID).
		Group("category").
		Order("total DESC").
		Scan(&sums).Error
	if err != nil {
		return nil, err
	}
	return sums, nil
}
