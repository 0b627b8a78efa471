package main

import (
	"net/http"
	"os"
	"time"

	"medstock/api/handler"
	apiMiddleware "medstock/api/middleware"
	"medstock/api/routes"
	"medstock/config"
	"medstock/internal/dto"
	"medstock/internal/entity"
	"medstock/internal/repository"
	"medstock/internal/service"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()
	validate := dto.NewValidator()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	db := config.ConnectionDb(cfg.DatabaseURL)
	if cfg.AutoMigrate {
		err := db.AutoMigrate(
			&entity.User{},
			&entity.Session{},
			&entity.Medicine{},
			&entity.Location{},
			&entity.SecurityLog{},
		)
		if err != nil {
			logger.WithError(err).Fatal("migration failed")
		}
	}

	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	medicineRepo := repository.NewMedicineRepository(db)
	securityRepo := repository.NewSecurityLogRepository(db)

	passwordHasher := service.Argon2PasswordHasher{}

	authService := service.NewAuthService(
		userRepo,
		sessionRepo,
		securityRepo,
		passwordHasher,
		service.RealClock{},
		service.AuthConfig{SessionTTL: 30 * 24 * time.Hour},
	)
	medicineService := service.NewMedicineService(medicineRepo)
	userService := service.NewUserService(userRepo, securityRepo, passwordHasher)
	statsService := service.NewStatsService(userRepo, medicineRepo)
	uploadService := service.NewUploadService(userRepo, cfg.UploadDir, cfg.BaseURL)

	sessionMiddleware := apiMiddleware.SessionMiddleware{
		Auth:          authService,
		CookieDomain:  cfg.CookieDomain,
		SecureCookies: cfg.SecureCookies,
	}

	authHandler := handler.NewAuthHandler(authService, validate, sessionMiddleware)
	medicineHandler := handler.NewMedicineHandler(medicineService, validate)
	userHandler := handler.NewUserHandler(userService, validate)
	utilHandler := handler.NewUtilHandler(statsService)
	uploadHandler := handler.NewUploadHandler(uploadService)

	app := echo.New()
	app.HideBanner = true
	app.HidePort = true
	app.HTTPErrorHandler = handler.NewHTTPErrorHandler(logger)
	app.Use(echoMiddleware.Recover())
	app.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins:     []string{cfg.RequestOrigin},
		AllowMethods:     []string{http.MethodGet, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))
	app.Use(echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogStatus:   true,
		LogMethod:   true,
		LogURI:      true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echoMiddleware.RequestLoggerValues) error {
			entry := logger.WithFields(logrus.Fields{
				"status": v.Status,
				"method": v.Method,
				"uri":    v.URI,
				"ip":     v.RemoteIP,
			})
			if v.Error != nil {
				entry.WithError(v.Error).Error("request")
				return nil
			}
			entry.Info("request")
			return nil
		},
	}))

	router := routes.NewRouter(app, authHandler, medicineHandler, userHandler, utilHandler, uploadHandler, sessionMiddleware, cfg.UploadDir)
	router.RegisterRoutes()

	addr := ":" + cfg.Port
	server := &http.Server{
		Addr:              addr,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.WithField("addr", addr).Info("server started")
	if err := app.StartServer(server); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}
