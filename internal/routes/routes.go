package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/gabrielbarbershop/booking-api/internal/audit"
	"github.com/gabrielbarbershop/booking-api/internal/config"
	"github.com/gabrielbarbershop/booking-api/internal/handlers"
	"github.com/gabrielbarbershop/booking-api/internal/infra/cache"
	"github.com/gabrielbarbershop/booking-api/internal/infra/payments"
	infraRepo "github.com/gabrielbarbershop/booking-api/internal/infra/repository"
	"github.com/gabrielbarbershop/booking-api/internal/middleware"
	"github.com/gabrielbarbershop/booking-api/internal/models"
	"github.com/gabrielbarbershop/booking-api/internal/token"
	ucAppointment "github.com/gabrielbarbershop/booking-api/internal/usecase/appointment"
	"github.com/gabrielbarbershop/booking-api/internal/usecase/catalog"
	"github.com/gabrielbarbershop/booking-api/internal/usecase/schedule"
	ucUser "github.com/gabrielbarbershop/booking-api/internal/usecase/user"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	log *zap.Logger,
	rdb *redis.Client,
	gateway *payments.Gateway,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	repo := infraRepo.NewBookingGormRepository(db)
	slotCache := cache.NewSlotCache(rdb)
	tokens := token.New(cfg.JWTSecret)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// ======================================================
	// USE CASES
	// ======================================================
	userQueries := ucUser.NewQueries(repo)
	createUserUC := ucUser.NewCreateUser(repo)
	createAdminUC := ucUser.NewCreateUserAsAdmin(repo)
	updateUserUC := ucUser.NewUpdateUser(repo)
	deleteUserUC := ucUser.NewDeleteUser(repo, auditDispatcher)
	authenticateUC := ucUser.NewAuthenticateUser(repo)

	serviceCatalog := catalog.NewServiceCatalog(repo)
	slotSchedule := schedule.NewSchedule(repo, slotCache)

	createAppointmentUC := ucAppointment.NewCreateAppointment(repo, slotCache, auditDispatcher)
	updateStatusUC := ucAppointment.NewUpdateStatus(repo, slotCache, auditDispatcher)
	appointmentQueries := ucAppointment.NewQueries(repo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(authenticateUC, createUserUC, tokens)
	userHandler := handlers.NewUserHandler(userQueries, createAdminUC, updateUserUC, deleteUserUC)
	serviceHandler := handlers.NewServiceHandler(serviceCatalog)
	productHandler := handlers.NewProductHandler(db)
	var checkoutGateway handlers.CheckoutGateway
	if gateway != nil {
		checkoutGateway = gateway
	}
	checkoutHandler := handlers.NewCheckoutHandler(db, checkoutGateway, log)
	slotHandler := handlers.NewSlotHandler(slotSchedule)
	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateStatusUC,
		appointmentQueries,
	)
	userTypeHandler := handlers.NewUserTypeHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	authRequired := middleware.AuthMiddleware(tokens)
	adminOnly := middleware.RequireAdmin()
	staffOnly := middleware.RequireRoles(models.RoleAdmin, models.RoleProfessional)

	// ======================================================
	// PUBLIC
	// ======================================================
	r.POST("/auth/login", authHandler.Login)
	r.POST("/auth/register", authHandler.Register)
	r.POST("/usuarios/register", authHandler.Register)

	r.GET("/servicos", serviceHandler.List)
	r.GET("/produtos", productHandler.List)
	r.GET("/produtos/:id", productHandler.GetByID)
	r.GET("/horarios/disponiveis/:date", slotHandler.ListAvailableByDate)

	// ======================================================
	// AUTHENTICATED
	// ======================================================
	secured := r.Group("/")
	secured.Use(authRequired)
	{
		secured.GET("/usuarios/me", userHandler.GetMe)
		secured.GET("/usuarios/:id", userHandler.GetByID)
		secured.PUT("/usuarios/:id", userHandler.Update)

		secured.GET("/horarios", slotHandler.List)

		secured.GET("/agendamentos", appointmentHandler.List)
		secured.POST("/agendamentos", appointmentHandler.Create)
		secured.GET("/agendamentos/cliente/:id", appointmentHandler.ListByClient)
		secured.PATCH("/agendamentos/:id/status", appointmentHandler.UpdateStatus)
		secured.DELETE("/agendamentos/:id", appointmentHandler.Delete)

		secured.POST("/produtos/checkout", checkoutHandler.Checkout)
	}

	// ======================================================
	// STAFF
	// ======================================================
	staff := r.Group("/")
	staff.Use(authRequired, staffOnly)
	{
		staff.POST("/horarios", slotHandler.Create)
		staff.DELETE("/horarios/:id", slotHandler.Delete)
		staff.PUT("/horarios/:id/disponibilidade", slotHandler.SetAvailability)
	}

	// ======================================================
	// ADMIN
	// ======================================================
	admin := r.Group("/")
	admin.Use(authRequired, adminOnly)
	{
		admin.GET("/usuarios", userHandler.List)
		admin.POST("/usuarios/registerAdmin", userHandler.RegisterAdmin)
		admin.DELETE("/usuarios/:id", userHandler.Delete)

		admin.POST("/servicos", serviceHandler.Create)
		admin.PUT("/servicos/:id", serviceHandler.Update)
		admin.DELETE("/servicos/:id", serviceHandler.Delete)

		admin.POST("/produtos", productHandler.Create)
		admin.PUT("/produtos/:id", productHandler.Update)
		admin.DELETE("/produtos/:id", productHandler.Delete)

		admin.GET("/tipousuario", userTypeHandler.List)
		admin.GET("/tipousuario/:id", userTypeHandler.GetByID)
		admin.POST("/tipousuario", userTypeHandler.Create)
		admin.PUT("/tipousuario/:id", userTypeHandler.Update)
		admin.DELETE("/tipousuario/:id", userTypeHandler.Delete)

		admin.GET("/audit-logs", auditLogsHandler.List)
	}
}
