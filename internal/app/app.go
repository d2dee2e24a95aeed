package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"course_review_backend/internal/config"
	"course_review_backend/internal/controller"
	"course_review_backend/internal/model"
	"course_review_backend/internal/repository"
	"course_review_backend/internal/service"
	"course_review_backend/internal/util"
	"course_review_backend/pkg/configwatcher"
	"course_review_backend/pkg/database"
	"course_review_backend/pkg/logger"
	"course_review_backend/pkg/monitoring"
	"course_review_backend/pkg/security"
	"course_review_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const configDir = "configs"

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	rateLimiter     *security.RateLimiter
	tracerProvider  *sdktrace.TracerProvider
	stop            chan struct{}
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user       *repository.UserRepository
	course     *repository.CourseRepository
	file       *repository.FileRepository
	evaluation *repository.EvaluationRepository
	result     *repository.EvaluationResultRepository
	review     *repository.ReviewRepository
	reviewPage *repository.ReviewPageCache
}

type services struct {
	storage    *service.StorageService
	file       *service.FileService
	evaluation *service.EvaluationService
	targets    *service.TargetGateway
	review     *service.ReviewService
}

type controllers struct {
	review     *controller.ReviewController
	evaluation *controller.EvaluationController
	file       *controller.FileController
	health     *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client, cfg *config.Config) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		course:     repository.NewCourseRepository(db),
		file:       repository.NewFileRepository(db),
		evaluation: repository.NewEvaluationRepository(db),
		result:     repository.NewEvaluationResultRepository(db),
		review:     repository.NewReviewRepository(db),
		reviewPage: repository.NewReviewPageCache(rdb, cfg.Review.CacheTTL()),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.file = service.NewFileService(repos.file, s.storage)
	s.evaluation = service.NewEvaluationService(db, repos.evaluation, repos.result)

	s.targets = service.NewTargetGateway().
		Register(model.TargetCourse, repos.course, util.ErrCourseNotFound)

	s.review = service.NewReviewService(
		db,
		repos.review,
		repos.user,
		repos.file,
		s.evaluation,
		s.targets,
		repos.reviewPage,
		cfg.Review,
	)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		review:     controller.NewReviewController(s.review),
		evaluation: controller.NewEvaluationController(s.evaluation),
		file:       controller.NewFileController(s.file),
		health:     controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	a.rateLimiter = security.NewRateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute)
	a.rateLimiter.StartCleanup(a.stop)
	router.Use(a.rateLimiter.Middleware())

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// applyConfig re-applies the settings that can change without a restart.
func (a *App) applyConfig(cfg *config.Config) {
	logger.SetLevel(cfg.Server.Mode)
	a.rateLimiter.Update(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute)
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
}

func (a *App) startBackgroundTasks() {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-a.stop
		cancel()
	}()
	go func() {
		if err := configwatcher.WatchConfig(ctx, configDir+"/config.yaml", a.applyConfig); err != nil {
			logger.Log.Warn("Config hot reload disabled", zap.Error(err))
		}
	}()
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	if cfg.ForceMigrate || cfg.Server.Mode != gin.ReleaseMode {
		if err := database.Migrate(db); err != nil {
			logger.Log.Fatal("Failed to migrate database", zap.Error(err))
		}
	}

	app := &App{
		Config: cfg,
		DB:     db,
		stop:   make(chan struct{}),
	}
	if cfg.MigrateOnly {
		return app
	}

	if cfg.Redis.Enabled {
		rdb, err := database.InitRedis(&cfg.Redis)
		if err != nil {
			logger.Log.Warn("Redis unavailable, review list cache disabled", zap.Error(err))
		} else {
			app.Redis = rdb
		}
	}

	repos := app.initRepositories(db, app.Redis, cfg)
	services := app.initServices(repos, cfg, db)
	controllers := app.initControllers(services, db, app.Redis)

	monitoring.Init()

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	gin.SetMode(cfg.Server.Mode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == util.StorageLocal {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.startBackgroundTasks()

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")
	close(a.stop)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		a.Redis.Close()
	}
	if sqlDB, err := a.DB.DB(); err == nil {
		sqlDB.Close()
	}

	log.Println("Server exiting")
}
