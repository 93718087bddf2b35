package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	appcatalog "extinsia/internal/application/catalog"
	appcustomer "extinsia/internal/application/customer"
	"extinsia/internal/application/notification"
	"extinsia/internal/application/ticket/usecases"
	appuser "extinsia/internal/application/user"
	"extinsia/internal/domain/ticket"
	"extinsia/internal/infrastructure/auth"
	"extinsia/internal/infrastructure/config"
	"extinsia/internal/infrastructure/email"
	"extinsia/internal/infrastructure/ratelimit"
	"extinsia/internal/infrastructure/repository"
	"extinsia/internal/interfaces/http/handlers"
	tickethandlers "extinsia/internal/interfaces/http/handlers/ticket"
	"extinsia/internal/interfaces/http/middleware"
	"extinsia/internal/interfaces/http/routes"
	"extinsia/internal/shared/logger"

	_ "extinsia/docs"
)

// Router wires the repositories, services and handlers into a gin
// engine.
type Router struct {
	engine              *gin.Engine
	cfg                 *config.Config
	authHandler         *handlers.AuthHandler
	userHandler         *handlers.UserHandler
	customerHandler     *handlers.CustomerHandler
	productHandler      *handlers.ProductHandler
	extinguisherHandler *handlers.ExtinguisherHandler
	ticketHandler       *tickethandlers.TicketHandler
	reminderHandler     *handlers.ReminderHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter builds the full dependency graph on top of an open database
// handle. redisClient may be nil; login rate limiting is skipped then.
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	ticketRepo := repository.NewTicketRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	productRepo := repository.NewProductRepository(db)
	extinguisherRepo := repository.NewExtinguisherRepository(db)
	userRepo := repository.NewUserRepository(db)

	// The product catalog is consulted first; an extinguisher with a
	// colliding code never shadows a product.
	synchronizer := ticket.NewSynchronizer(productRepo, extinguisherRepo)

	createTicketUC := usecases.NewCreateTicketUseCase(ticketRepo, customerRepo, synchronizer, log)
	updateTicketUC := usecases.NewUpdateTicketUseCase(ticketRepo, synchronizer, log)
	getTicketUC := usecases.NewGetTicketUseCase(ticketRepo, log)
	listTicketsUC := usecases.NewListTicketsUseCase(ticketRepo, customerRepo, log)
	deleteTicketUC := usecases.NewDeleteTicketUseCase(ticketRepo, log)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(
		cfg.Auth.JWT.Secret,
		cfg.Auth.JWT.AccessExpMinutes,
		cfg.Auth.JWT.RefreshExpDays,
	)

	var limiter appuser.LoginLimiter
	if cfg.Auth.LoginLimit.Enabled && redisClient != nil {
		limiter = ratelimit.NewRedisLoginLimiter(
			redisClient,
			cfg.Auth.LoginLimit.MaxAttempts,
			time.Duration(cfg.Auth.LoginLimit.WindowSecs)*time.Second,
		)
	}

	userService := appuser.NewService(userRepo, hasher, jwtService, limiter, log)
	customerService := appcustomer.NewService(customerRepo, log)
	productService := appcatalog.NewProductService(productRepo, log)
	extinguisherService := appcatalog.NewExtinguisherService(extinguisherRepo, log)

	sender := email.NewSMTPSender(&cfg.Email)
	reminderService := notification.NewReminderService(customerRepo, userRepo, sender, log)

	return &Router{
		engine:          engine,
		cfg:             cfg,
		authHandler:     handlers.NewAuthHandler(userService),
		userHandler:     handlers.NewUserHandler(userService),
		customerHandler: handlers.NewCustomerHandler(customerService),
		productHandler:  handlers.NewProductHandler(productService),
		extinguisherHandler: handlers.NewExtinguisherHandler(
			extinguisherService),
		ticketHandler: tickethandlers.NewTicketHandler(
			createTicketUC, updateTicketUC, getTicketUC, listTicketsUC, deleteTicketUC),
		reminderHandler: handlers.NewReminderHandler(reminderService),
		authMiddleware:  middleware.NewAuthMiddleware(jwtService, log),
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes(log logger.Interface) {
	r.engine.Use(middleware.Logger(log))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler: r.authHandler,
	})
	routes.SetupUserRoutes(r.engine, &routes.UserRouteConfig{
		UserHandler:    r.userHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupCustomerRoutes(r.engine, &routes.CustomerRouteConfig{
		CustomerHandler: r.customerHandler,
		AuthMiddleware:  r.authMiddleware,
	})
	routes.SetupCatalogRoutes(r.engine, &routes.CatalogRouteConfig{
		ProductHandler:      r.productHandler,
		ExtinguisherHandler: r.extinguisherHandler,
		AuthMiddleware:      r.authMiddleware,
	})
	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler:  r.ticketHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupReminderRoutes(r.engine, &routes.ReminderRouteConfig{
		ReminderHandler: r.reminderHandler,
		AuthMiddleware:  r.authMiddleware,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
