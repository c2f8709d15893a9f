// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/condo-control/backend/config"
	"github.com/condo-control/backend/internal/application/usecase/delinquency"
	"github.com/condo-control/backend/internal/application/usecase/finance"
	"github.com/condo-control/backend/internal/application/usecase/indicators"
	"github.com/condo-control/backend/internal/application/usecase/maintenance"
	"github.com/condo-control/backend/internal/infra/server/router"
	"github.com/condo-control/backend/internal/integration/adapters"
	"github.com/condo-control/backend/internal/integration/entrypoint/controller"
	"github.com/condo-control/backend/internal/integration/entrypoint/middleware"
	"github.com/condo-control/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	recordRepo := persistence.NewFinancialRecordRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	overrideRepo := persistence.NewOverrideRepository(db)
	delinquencyRepo := persistence.NewDelinquencyRepository(db)
	unitRepo := persistence.NewUnitRepository(db)
	maintenanceRepo := persistence.NewMaintenanceRepository(db)
	paymentRepo := persistence.NewMaintenancePaymentRepository(db)

	// Create adapters/services
	tokenService := adapters.NewTokenService(cfg.JWT.Secret)
	balanceCache := adapters.NewMonthBalanceCache(redisClient)
	clock := adapters.NewSystemClock()

	aggregator := finance.NewAggregator(recordRepo, overrideRepo, balanceCache)

	// Create finance use cases
	totalsUseCase := finance.NewGetTotalsUseCase(aggregator)
	projectionUseCase := finance.NewGetProjectionUseCase(recordRepo, aggregator, clock)
	projectionRegistersUseCase := finance.NewGetProjectionRegistersUseCase(recordRepo, clock)
	createRecordUseCase := finance.NewCreateRecordUseCase(recordRepo, categoryRepo, aggregator)
	updateRecordUseCase := finance.NewUpdateRecordUseCase(recordRepo, categoryRepo, aggregator)
	deleteRecordUseCase := finance.NewDeleteRecordUseCase(recordRepo, aggregator)
	listRecordsUseCase := finance.NewListRecordsUseCase(recordRepo)
	listCategoriesUseCase := finance.NewListCategoriesUseCase(categoryRepo)
	overrideUseCase := finance.NewOverrideMonthUseCase(overrideRepo, aggregator)

	// Create delinquency use cases
	registerUseCase := delinquency.NewGetRegisterUseCase(delinquencyRepo, clock)
	resumeUseCase := delinquency.NewGetResumeUseCase(delinquencyRepo, unitRepo, clock)
	createDelinquencyUseCase := delinquency.NewCreateDelinquencyUseCase(delinquencyRepo)
	updateDelinquencyUseCase := delinquency.NewUpdateDelinquencyUseCase(delinquencyRepo, recordRepo, aggregator)
	deleteDelinquencyUseCase := delinquency.NewDeleteDelinquencyUseCase(delinquencyRepo, recordRepo, aggregator)

	// Create maintenance use cases
	createMaintenanceUseCase := maintenance.NewCreateMaintenanceUseCase(maintenanceRepo, paymentRepo)
	updateMaintenanceUseCase := maintenance.NewUpdateMaintenanceUseCase(maintenanceRepo, paymentRepo)
	deleteMaintenanceUseCase := maintenance.NewDeleteMaintenanceUseCase(maintenanceRepo, paymentRepo)
	listMaintenancesUseCase := maintenance.NewListMaintenancesUseCase(maintenanceRepo)
	getMaintenanceUseCase := maintenance.NewGetMaintenanceUseCase(maintenanceRepo, paymentRepo)
	cardsUseCase := maintenance.NewGetCardsUseCase(paymentRepo, aggregator, clock)

	// Create indicators use cases
	chartsUseCase := indicators.NewChartsByCategoryUseCase(recordRepo)
	fixedVariableUseCase := indicators.NewFixedVariableUseCase(recordRepo)
	monthlyBalanceUseCase := indicators.NewMonthlyBalanceUseCase(recordRepo, overrideRepo)
	indicatorsResumeUseCase := indicators.NewResumeUseCase(recordRepo, overrideRepo, maintenanceRepo)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	financeController := controller.NewFinanceController(
		totalsUseCase,
		projectionUseCase,
		projectionRegistersUseCase,
		createRecordUseCase,
		updateRecordUseCase,
		deleteRecordUseCase,
		listRecordsUseCase,
		listCategoriesUseCase,
		overrideUseCase,
	)

	delinquencyController := controller.NewDelinquencyController(
		registerUseCase,
		resumeUseCase,
		createDelinquencyUseCase,
		updateDelinquencyUseCase,
		deleteDelinquencyUseCase,
	)

	maintenanceController := controller.NewMaintenanceController(
		createMaintenanceUseCase,
		updateMaintenanceUseCase,
		deleteMaintenanceUseCase,
		listMaintenancesUseCase,
		getMaintenanceUseCase,
		cardsUseCase,
	)

	indicatorsController := controller.NewIndicatorsController(
		chartsUseCase,
		fixedVariableUseCase,
		monthlyBalanceUseCase,
		indicatorsResumeUseCase,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var rateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		rateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		rateLimiter = middleware.NewRateLimiterWithConfig(300, 1*time.Minute)
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		financeController,
		delinquencyController,
		maintenanceController,
		indicatorsController,
		rateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
