package app

import (
	"fmt"

	"gymfit_backend/internal/auth"
	"gymfit_backend/internal/config"
	"gymfit_backend/internal/handlers"
	"gymfit_backend/internal/logger"
	"gymfit_backend/internal/middleware"
	"gymfit_backend/internal/models"
	"gymfit_backend/internal/repositories"
	"gymfit_backend/internal/routes"
	"gymfit_backend/internal/services"
	"gymfit_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Run boots the whole application. Any configuration problem aborts the
// process before the server starts listening.
func Run() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Invalid configuration", "error", err)
	}
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	// TranslateError maps driver unique/foreign-key violations onto the GORM
	// sentinels the repositories rely on.
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := Migrate(db); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := SeedFirstAdmin(db, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	router, err := SetupRouter(cfg, db)
	if err != nil {
		logger.Fatal("Failed to set up router", "error", err)
	}

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := router.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// Migrate creates/updates the schema. The unique indexes on users.email,
// members.user_id and trainers.user_id are the real enforcement points for
// the uniqueness invariants; application pre-checks only improve error
// messages.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Member{},
		&models.Trainer{},
	)
}

// SetupRouter wires services, handlers and routes onto a gin engine.
func SetupRouter(cfg *config.Config, db *gorm.DB) (*gin.Engine, error) {
	tokens, err := auth.NewTokenService(
		cfg.JWT.Secret,
		cfg.JWT.Issuer,
		cfg.JWT.Audience,
		cfg.JWT.ExpireMinutes,
	)
	if err != nil {
		return nil, fmt.Errorf("token service: %w", err)
	}

	serviceContainer := initializeServices(db, tokens)
	appHandlers := initializeHandlers(serviceContainer)

	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))

	routes.RegisterRoutes(router, appHandlers, tokens)

	return router, nil
}

func initializeServices(db *gorm.DB, tokens *auth.TokenService) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository(db)

	return &services.ServiceContainer{
		AuthService:    services.NewAuthService(userRepo, tokens),
		UserService:    services.NewUserService(userRepo),
		MemberService:  services.NewMemberService(db),
		TrainerService: services.NewTrainerService(db),
	}
}

func initializeHandlers(sc *services.ServiceContainer) *handlers.AppHandlers {
	base := handlers.NewBaseHandler(validator.New())

	return &handlers.AppHandlers{
		AuthHandler:    handlers.NewAuthHandler(base, sc.AuthService),
		UserHandler:    handlers.NewUserHandler(base, sc.UserService),
		MemberHandler:  handlers.NewMemberHandler(base, sc.MemberService),
		TrainerHandler: handlers.NewTrainerHandler(base, sc.TrainerService),
	}
}

// SeedFirstAdmin creates the configured admin account when no admin exists
// yet. Registration never produces admins, so a fresh deployment needs one.
func SeedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.Admin.Email == "" {
		logger.Warn("Admin seeding skipped: no admin email configured")
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return err
	}

	name := cfg.Admin.Name
	if name == "" {
		name = "Administrator"
	}

	admin := &models.User{
		Name:         name,
		Email:        cfg.Admin.Email,
		PasswordHash: hashed,
		Role:         models.RoleAdmin,
	}
	if err := db.Create(admin).Error; err != nil {
		return err
	}

	logger.Info("First admin user seeded", "email", admin.Email)
	return nil
}
