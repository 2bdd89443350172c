package expense_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"newlife/internal/repositories"
	"newlife/internal/services"
)

var Module = fx.Provide(
	provideExpenseRepo, provideExpenseService)

func provideExpenseRepo(db *gorm.DB) repositories.ExpenseRepositoryInterface {
	return repositories.NewExpenseRepository(db)
}

func provideExpenseService(repo repositories.ExpenseRepositoryInterface, trips services.TripServiceInterface, log *zap.Logger) services.ExpenseServiceInterface {
	return services.NewExpenseService(repo, trips, log.Named("expenses"))
}
