package bootstrap

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	appMigrations "github.com/champlain/campus/internal/app/migrations"
	appRepos "github.com/champlain/campus/internal/app/repositories"
	"github.com/champlain/campus/internal/app/repositories/memory"
	"github.com/champlain/campus/internal/config"
	"github.com/champlain/campus/internal/db"
	"github.com/champlain/campus/internal/seed"
)

// closer releases a store.
type closer func(ctx context.Context) error

func noopCloser(context.Context) error { return nil }

// OpenCourseStore connects to the configured course store and brings its
// schema up to date.
func OpenCourseStore(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (appRepos.CourseRepository, closer, error) {
	switch cfg.Database.Driver {
	case config.DriverPostgres:
		lgr.Info().Msg("Establishing database connection...")
		database, err := db.NewPostgresDB(ctx, cfg)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to connect to database")
			return nil, nil, err
		}

		lgr.Info().Msg("Running database migrations...")
		if _, err := appMigrations.NewMigrator(database.Pool).Up(ctx, appMigrations.PostgresDir); err != nil {
			database.Close()
			return nil, nil, fmt.Errorf("database migrations failed: %w", err)
		}
		lgr.Info().Msg("Database migrations successfully applied.")

		return appRepos.NewPostgresCourseRepository(database.Pool), func(context.Context) error {
			database.Close()
			return nil
		}, nil

	case config.DriverSQLite:
		sqlite, err := db.NewSQLiteDB(ctx, cfg.Database.SQLitePath)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to open SQLite database")
			return nil, nil, err
		}
		if _, err := appMigrations.NewSQLiteMigrator(sqlite.DB).Up(ctx, appMigrations.SQLiteDir); err != nil {
			_ = sqlite.Close()
			return nil, nil, fmt.Errorf("database migrations failed: %w", err)
		}
		return appRepos.NewSQLiteCourseRepository(sqlite.DB), func(context.Context) error {
			return sqlite.Close()
		}, nil

	case config.DriverMemory:
		lgr.Warn().Msg("Using in-memory course store, data is lost on restart")
		return memory.NewCourseStore(), noopCloser, nil

	default:
		return nil, nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
}

// OpenEnrollmentStore connects to the configured enrollment store.
func OpenEnrollmentStore(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (appRepos.EnrollmentRepository, closer, error) {
	switch cfg.Mongo.Driver {
	case config.DriverMongo:
		mongo, err := db.NewMongoDB(ctx, cfg)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to connect to MongoDB")
			return nil, nil, err
		}

		repo := appRepos.NewMongoEnrollmentRepository(mongo.Database, cfg.Mongo.Collection)
		if err := repo.EnsureIndexes(ctx); err != nil {
			_ = mongo.Close(context.Background())
			return nil, nil, fmt.Errorf("creating enrollment indexes: %w", err)
		}
		return repo, mongo.Close, nil

	case config.DriverMemory:
		lgr.Warn().Msg("Using in-memory enrollment store, data is lost on restart")
		return memory.NewEnrollmentStore(), noopCloser, nil

	default:
		return nil, nil, fmt.Errorf("unsupported mongo driver %q", cfg.Mongo.Driver)
	}
}

// Migrate applies the course schema migrations and reports how many ran.
// Only the SQL drivers have a schema.
func Migrate(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (int, error) {
	switch cfg.Database.Driver {
	case config.DriverPostgres:
		database, err := db.NewPostgresDB(ctx, cfg)
		if err != nil {
			return 0, err
		}
		defer database.Close()
		return appMigrations.NewMigrator(database.Pool).Up(ctx, appMigrations.PostgresDir)

	case config.DriverSQLite:
		sqlite, err := db.NewSQLiteDB(ctx, cfg.Database.SQLitePath)
		if err != nil {
			return 0, err
		}
		defer sqlite.Close()
		return appMigrations.NewSQLiteMigrator(sqlite.DB).Up(ctx, appMigrations.SQLiteDir)

	default:
		lgr.Info().Str("driver", cfg.Database.Driver).Msg("Driver has no schema, nothing to migrate")
		return 0, nil
	}
}

// Seed loads the demo data for the named service into its store and reports
// how many records were written.
func Seed(ctx context.Context, service Service, cfg *config.Config, lgr zerolog.Logger) (int, error) {
	switch service {
	case CoursesService:
		repo, closeStore, err := OpenCourseStore(ctx, cfg, lgr)
		if err != nil {
			return 0, err
		}
		defer closeStore(ctx)
		return seed.Courses(ctx, repo, lgr)

	case EnrollmentsService:
		repo, closeStore, err := OpenEnrollmentStore(ctx, cfg, lgr)
		if err != nil {
			return 0, err
		}
		defer closeStore(ctx)
		return seed.Enrollments(ctx, repo, lgr)

	default:
		return 0, fmt.Errorf("unknown service %q", service)
	}
}
