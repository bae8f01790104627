package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"shop-admin.backend/internal/config"
	"shop-admin.backend/internal/domain/entities"
	"shop-admin.backend/internal/infrastructure/datasources/postgres"
	"shop-admin.backend/internal/infrastructure/migrations"
	"shop-admin.backend/internal/infrastructure/repositories"
	"shop-admin.backend/pkg/logger"
)

type migrateDeps struct {
	loadEnv   func() error
	loadCfg   func() *config.Config
	open      func(cfg *config.Config) (*gorm.DB, io.Closer, error)
	migrate   func(ctx context.Context, db *gorm.DB) ([]string, error)
	catalogue func() ([]entities.Permission, error)
	out       io.Writer
}

func openDatabase(cfg *config.Config) (*gorm.DB, io.Closer, error) {
	sqlxDB, err := postgres.NewConnection(cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	gormDB, err := postgres.OpenGorm(sqlxDB.DB, cfg.Server.Env == "development")
	if err != nil {
		_ = sqlxDB.Close()
		return nil, nil, err
	}
	return gormDB, sqlxDB, nil
}

func loadCatalogue() ([]entities.Permission, error) {
	groups, err := config.LoadSettingGroups()
	if err != nil {
		return nil, err
	}
	return config.LoadPermissions(groups)
}

func defaultMigrateDeps() migrateDeps {
	return migrateDeps{
		loadEnv:   func() error { return godotenv.Load() },
		loadCfg:   config.Load,
		open:      openDatabase,
		migrate:   migrations.Run,
		catalogue: loadCatalogue,
		out:       os.Stdout,
	}
}

func runMigrate(args []string, deps migrateDeps) error {
	def := defaultMigrateDeps()
	if deps.loadEnv == nil {
		deps.loadEnv = def.loadEnv
	}
	if deps.loadCfg == nil {
		deps.loadCfg = def.loadCfg
	}
	if deps.open == nil {
		deps.open = def.open
	}
	if deps.migrate == nil {
		deps.migrate = def.migrate
	}
	if deps.catalogue == nil {
		deps.catalogue = def.catalogue
	}
	if deps.out == nil {
		deps.out = def.out
	}

	fs := flag.NewFlagSet("migrate", flag.ContinueOnError)
	skipSeed := fs.Bool("skip-seed", false, "apply schema migrations only")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := deps.loadEnv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	cfg := deps.loadCfg()
	logger.Init(cfg.Server.Env)
	defer logger.Sync()

	db, closer, err := deps.open(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect db: %w", err)
	}
	if closer != nil {
		defer closer.Close()
	}

	ctx := context.Background()
	applied, err := deps.migrate(ctx, db)
	if err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	logger.Info(ctx, "Schema up to date", zap.Strings("applied", applied))
	_, _ = fmt.Fprintf(deps.out, "applied=%d\n", len(applied))

	if *skipSeed {
		return nil
	}

	catalogue, err := deps.catalogue()
	if err != nil {
		return err
	}
	report, err := seed(ctx, seedRepos{
		permissions: repositories.NewPermissionRepository(db),
		roles:       repositories.NewRoleRepository(db),
		currencies:  repositories.NewCurrencyRepository(db),
		languages:   repositories.NewLanguageRepository(db),
	}, catalogue)
	if err != nil {
		return fmt.Errorf("failed to seed: %w", err)
	}
	logger.Info(ctx, "Seed complete",
		zap.Int("permissions", report.Permissions),
		zap.Bool("role_created", report.RoleCreated),
		zap.Bool("currency_created", report.CurrencyCreated),
		zap.Bool("language_created", report.LanguageCreated),
	)
	_, _ = fmt.Fprintf(deps.out, "permissions=%d\n", report.Permissions)
	return nil
}

func main() {
	if err := runMigrate(os.Args[1:], defaultMigrateDeps()); err != nil {
		log.Fatal(err)
	}
}
