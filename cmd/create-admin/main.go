package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"shop-admin.backend/internal/config"
	"shop-admin.backend/internal/domain/entities"
	domainrepo "shop-admin.backend/internal/domain/repositories"
	"shop-admin.backend/internal/infrastructure/datasources/postgres"
	"shop-admin.backend/internal/infrastructure/repositories"
	"shop-admin.backend/internal/usecases"
)

type createAdminRuntime interface {
	GetRoleByName(ctx context.Context, name string) (*entities.Role, error)
	CreateUser(ctx context.Context, input *entities.CreateUserInput) (*entities.User, error)
}

type createAdminDeps struct {
	loadEnv func() error
	loadCfg func() *config.Config
	prepare func(cfg *config.Config) (createAdminRuntime, io.Closer, error)
	out     io.Writer
}

type createAdminRuntimeImpl struct {
	roleRepo domainrepo.RoleRepository
	users    *usecases.UserUsecase
}

func (r createAdminRuntimeImpl) GetRoleByName(ctx context.Context, name string) (*entities.Role, error) {
	return r.roleRepo.GetByName(ctx, name)
}

func (r createAdminRuntimeImpl) CreateUser(ctx context.Context, input *entities.CreateUserInput) (*entities.User, error) {
	return r.users.CreateUser(ctx, input)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func defaultCreateAdminDeps() createAdminDeps {
	return createAdminDeps{
		loadEnv: func() error { return godotenv.Load() },
		loadCfg: config.Load,
		prepare: func(cfg *config.Config) (createAdminRuntime, io.Closer, error) {
			sqlxDB, err := postgres.NewConnection(cfg.Database)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to connect db: %w", err)
			}
			db, err := postgres.OpenGorm(sqlxDB.DB, false)
			if err != nil {
				_ = sqlxDB.Close()
				return nil, nil, fmt.Errorf("failed to init gorm: %w", err)
			}

			userRepo := repositories.NewUserRepository(db)
			roleRepo := repositories.NewRoleRepository(db)
			audit := usecases.NewAuditService(repositories.NewAuditLogRepository(db))
			users := usecases.NewUserUsecase(userRepo, roleRepo, repositories.NewUnitOfWork(db), audit)
			return createAdminRuntimeImpl{roleRepo: roleRepo, users: users}, sqlxDB, nil
		},
		out: os.Stdout,
	}
}

type adminFlags struct {
	email    string
	name     string
	password string
	role     string
}

func parseAdminFlags(args []string) (adminFlags, error) {
	var f adminFlags
	fs := flag.NewFlagSet("create-admin", flag.ContinueOnError)
	fs.StringVar(&f.email, "email", "", "admin email (required)")
	fs.StringVar(&f.name, "name", "", "display name (defaults to the email local part)")
	fs.StringVar(&f.password, "password", "", "initial password (required)")
	fs.StringVar(&f.role, "role", entities.RoleSuperAdmin, "role name")
	if err := fs.Parse(args); err != nil {
		return f, err
	}

	f.email = strings.TrimSpace(f.email)
	if f.email == "" {
		return f, fmt.Errorf("--email is required")
	}
	if f.password == "" {
		return f, fmt.Errorf("--password is required")
	}
	if f.name == "" {
		f.name = strings.SplitN(f.email, "@", 2)[0]
	}
	return f, nil
}

func runCreateAdmin(args []string, deps createAdminDeps) error {
	def := defaultCreateAdminDeps()
	if deps.loadEnv == nil {
		deps.loadEnv = def.loadEnv
	}
	if deps.loadCfg == nil {
		deps.loadCfg = def.loadCfg
	}
	if deps.prepare == nil {
		deps.prepare = def.prepare
	}
	if deps.out == nil {
		deps.out = def.out
	}

	f, err := parseAdminFlags(args)
	if err != nil {
		return err
	}

	if err := deps.loadEnv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := deps.loadCfg()
	runtime, closer, err := deps.prepare(cfg)
	if err != nil {
		return err
	}
	if closer == nil {
		closer = nopCloser{}
	}
	defer closer.Close()

	ctx := context.Background()
	role, err := runtime.GetRoleByName(ctx, f.role)
	if err != nil {
		return fmt.Errorf("failed to load role %s (run migrate first): %w", f.role, err)
	}

	user, err := runtime.CreateUser(ctx, &entities.CreateUserInput{
		Email:    f.email,
		Name:     f.name,
		Password: f.password,
		RoleID:   role.ID,
	})
	if err != nil {
		return fmt.Errorf("failed creating admin: %w", err)
	}

	_, _ = fmt.Fprintln(deps.out, "Created admin user")
	_, _ = fmt.Fprintf(deps.out, "user_id=%s\n", user.ID.String())
	_, _ = fmt.Fprintf(deps.out, "email=%s\n", user.Email)
	_, _ = fmt.Fprintf(deps.out, "role=%s\n", role.Name)
	return nil
}

func main() {
	if err := runCreateAdmin(os.Args[1:], defaultCreateAdminDeps()); err != nil {
		log.Fatal(err)
	}
}
