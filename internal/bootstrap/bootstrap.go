package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appClients "github.com/champlain/campus/internal/app/clients"
	appControllers "github.com/champlain/campus/internal/app/controllers"
	appRepos "github.com/champlain/campus/internal/app/repositories"
	appRoutes "github.com/champlain/campus/internal/app/routes"
	appServices "github.com/champlain/campus/internal/app/services"
	"github.com/champlain/campus/internal/config"
	appMiddleware "github.com/champlain/campus/internal/middleware"
	"github.com/champlain/campus/internal/pkg/helpers"
	"github.com/champlain/campus/internal/pkg/logger"
	"github.com/champlain/campus/internal/seed"
)

// Service names the binary being bootstrapped.
type Service string

const (
	CoursesService     Service = "courses"
	EnrollmentsService Service = "enrollments"
)

// Dependencies holds all the dependencies of one service
type Dependencies struct {
	Service              Service
	Repos                *appRepos.Repositories
	CourseService        *appServices.CourseService
	EnrollmentService    *appServices.EnrollmentService
	CourseController     *appControllers.CourseController
	EnrollmentController *appControllers.EnrollmentController
	HealthController     *appControllers.HealthController
	Logger               zerolog.Logger

	closers []closer
}

// Close releases every store opened while building the dependencies, newest first.
func (d *Dependencies) Close(ctx context.Context) error {
	var errs error
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i](ctx); err != nil {
			errs = errors.Join(errs, err)
		}
	}
	d.closers = nil
	return errs
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string, service Service) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
		File: logger.FileConfig{
			Path:       cfg.Logging.File,
			MaxSizeMB:  cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
			MaxAgeDays: cfg.Logging.MaxAgeDays,
		},
	})

	lgr := log.Logger.With().Str("service", string(service)).Logger()
	lgr.Info().
		Str("logLevel", string(logLevel)).
		Str("logFormat", cfg.Logging.Format).
		Str("logFile", cfg.Logging.File).
		Msg("Logger configured")
	return cfg, lgr, nil
}

// BuildCourseDependencies opens the course store and wires the courses service.
func BuildCourseDependencies(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*Dependencies, error) {
	repo, closeStore, err := OpenCourseStore(ctx, cfg, lgr)
	if err != nil {
		return nil, err
	}

	deps := &Dependencies{
		Service: CoursesService,
		Repos:   &appRepos.Repositories{CourseRepository: repo},
		Logger:  lgr,
		closers: []closer{closeStore},
	}

	if cfg.Seed {
		if _, err := seed.Courses(ctx, repo, lgr); err != nil {
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	deps.CourseService = appServices.NewCourseService(repo)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.HealthController = appControllers.NewHealthController(deps.CourseService)
	return deps, nil
}

// BuildEnrollmentDependencies opens the enrollment store, creates the remote
// clients and wires the enrollments service.
func BuildEnrollmentDependencies(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*Dependencies, error) {
	if err := cfg.ValidateClients(); err != nil {
		return nil, err
	}

	repo, closeStore, err := OpenEnrollmentStore(ctx, cfg, lgr)
	if err != nil {
		return nil, err
	}

	deps := &Dependencies{
		Service: EnrollmentsService,
		Repos:   &appRepos.Repositories{EnrollmentRepository: repo},
		Logger:  lgr,
		closers: []closer{closeStore},
	}

	if cfg.Seed {
		if _, err := seed.Enrollments(ctx, repo, lgr); err != nil {
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	timeout := helpers.ParseDuration(cfg.Clients.Timeout, 0)
	httpClient := &http.Client{Transport: http.DefaultTransport}
	students := appClients.NewHTTPStudentClient(cfg.Clients.StudentsBaseURL, httpClient, timeout)
	courses := appClients.NewHTTPCourseClient(cfg.Clients.CoursesBaseURL, httpClient, timeout)
	lgr.Info().
		Str("studentsService", cfg.Clients.StudentsBaseURL).
		Str("coursesService", cfg.Clients.CoursesBaseURL).
		Dur("timeout", timeout).
		Msg("Remote clients configured")

	deps.EnrollmentService = appServices.NewEnrollmentService(repo, students, courses)
	deps.EnrollmentController = appControllers.NewEnrollmentController(deps.EnrollmentService)
	deps.HealthController = appControllers.NewHealthController(deps.EnrollmentService)
	return deps, nil
}

// BuildDependencies builds the dependencies of the named service.
func BuildDependencies(ctx context.Context, service Service, cfg *config.Config, lgr zerolog.Logger) (*Dependencies, error) {
	switch service {
	case CoursesService:
		return BuildCourseDependencies(ctx, cfg, lgr)
	case EnrollmentsService:
		return BuildEnrollmentDependencies(ctx, cfg, lgr)
	default:
		return nil, fmt.Errorf("unknown service %q", service)
	}
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	appMiddleware.RegisterValidators()

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(), gin.Recovery())

	if deps.CourseController != nil {
		appRoutes.RegisterCourseRoutes(router, deps.CourseController)
	}
	if deps.EnrollmentController != nil {
		appRoutes.RegisterEnrollmentRoutes(router, deps.EnrollmentController)
	}
	appRoutes.RegisterHealthRoutes(router, deps.HealthController)

	return router
}
