package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/okabeach/flat-manager/internal/audit"
	"github.com/okabeach/flat-manager/internal/config"
	"github.com/okabeach/flat-manager/internal/handlers"
	infraRepo "github.com/okabeach/flat-manager/internal/infra/repository"
	"github.com/okabeach/flat-manager/internal/middleware"
	ucAccounting "github.com/okabeach/flat-manager/internal/usecase/accounting"
	ucGuest "github.com/okabeach/flat-manager/internal/usecase/guest"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	guestRepo := infraRepo.NewGuestGormRepository(db)
	ledgerRepo := infraRepo.NewLedgerGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	registerGuestUC := ucGuest.NewRegisterGuest(
		guestRepo,
		auditDispatcher,
	)

	updateGuestUC := ucGuest.NewUpdateGuest(
		guestRepo,
		auditDispatcher,
	)

	buildSummaryUC := ucAccounting.NewBuildSummary(
		ledgerRepo,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	propertyHandler := handlers.NewPropertyHandler(db)

	guestHandler := handlers.NewGuestHandler(
		db,
		registerGuestUC,
		updateGuestUC,
	)

	expenseHandler := handlers.NewExpenseHandler(db)
	accountingHandler := handlers.NewAccountingHandler(buildSummaryUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/property", propertyHandler.GetMeProperty)
			secured.PATCH("/me/property", propertyHandler.UpdateMeProperty)

			// ------------------------------
			// GUESTS
			// ------------------------------
			secured.GET("/me/guests", guestHandler.List)
			secured.POST("/me/guests", guestHandler.Create)
			secured.GET("/me/guests/:id", guestHandler.Get)
			secured.PUT("/me/guests/:id", guestHandler.Update)
			secured.DELETE("/me/guests/:id", guestHandler.Delete)

			// ------------------------------
			// EXPENSES
			// ------------------------------
			secured.GET("/me/expenses", expenseHandler.List)
			secured.POST("/me/expenses", expenseHandler.Create)
			secured.DELETE("/me/expenses/:id", expenseHandler.Delete)

			// ------------------------------
			// ACCOUNTING
			// ------------------------------
			secured.GET("/me/accounting", accountingHandler.Summary)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
