package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/google/uuid"

	"shop-admin.backend/internal/config"
	"shop-admin.backend/internal/domain/entities"
)

func TestParseAdminFlags(t *testing.T) {
	if _, err := parseAdminFlags([]string{"-password", "secret123"}); err == nil {
		t.Fatal("expected error for missing email")
	}
	if _, err := parseAdminFlags([]string{"-email", "ops@shop.test"}); err == nil {
		t.Fatal("expected error for missing password")
	}

	f, err := parseAdminFlags([]string{"-email", " ops@shop.test ", "-password", "secret123"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.email != "ops@shop.test" || f.name != "ops" || f.role != entities.RoleSuperAdmin {
		t.Fatalf("unexpected flags: %+v", f)
	}

	f, err = parseAdminFlags([]string{"-email", "a@b.c", "-password", "secret123", "-name", "Alice", "-role", "support"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.name != "Alice" || f.role != "support" {
		t.Fatalf("unexpected flags: %+v", f)
	}
}

func TestMain_ExitsWhenEmailMissing(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_CREATE_ADMIN") == "1" {
		os.Args = []string{"create-admin"}
		main()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestMain_ExitsWhenEmailMissing")
	cmd.Env = append(os.Environ(), "GO_WANT_HELPER_CREATE_ADMIN=1")
	if err := cmd.Run(); err == nil {
		t.Fatal("expected helper process to fail when --email is missing")
	}
}

func TestMain_ExitsOnDBConnectionFailure(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_CREATE_ADMIN") == "2" {
		os.Args = []string{"create-admin", "-email", "ops@shop.test", "-password", "secret123"}
		main()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestMain_ExitsOnDBConnectionFailure")
	cmd.Env = append(os.Environ(),
		"GO_WANT_HELPER_CREATE_ADMIN=2",
		"DB_HOST=127.0.0.1",
		"DB_PORT=1",
		"DB_USER=postgres",
		"DB_PASSWORD=postgres",
		"DB_NAME=shop_admin",
		"DB_SSLMODE=disable",
	)
	if err := cmd.Run(); err == nil {
		t.Fatal("expected helper process to fail on DB connection")
	}
}

type fakeAdminRuntime struct {
	role      *entities.Role
	roleErr   error
	createErr error
	got       *entities.CreateUserInput
}

func (f *fakeAdminRuntime) GetRoleByName(_ context.Context, name string) (*entities.Role, error) {
	if f.roleErr != nil {
		return nil, f.roleErr
	}
	return f.role, nil
}

func (f *fakeAdminRuntime) CreateUser(_ context.Context, input *entities.CreateUserInput) (*entities.User, error) {
	f.got = input
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &entities.User{ID: uuid.New(), Email: strings.ToLower(input.Email), RoleID: input.RoleID}, nil
}

func depsWith(rt createAdminRuntime, closer io.Closer, out io.Writer) createAdminDeps {
	return createAdminDeps{
		loadEnv: func() error { return errors.New("no env") },
		loadCfg: func() *config.Config { return &config.Config{} },
		prepare: func(*config.Config) (createAdminRuntime, io.Closer, error) {
			return rt, closer, nil
		},
		out: out,
	}
}

func TestRunCreateAdmin_Branches(t *testing.T) {
	args := []string{"-email", "Ops@Shop.test", "-password", "secret123"}
	superAdmin := &entities.Role{ID: uuid.New(), Name: entities.RoleSuperAdmin}

	t.Run("flag parse error", func(t *testing.T) {
		err := runCreateAdmin([]string{"-unknown-flag"}, depsWith(&fakeAdminRuntime{}, nopCloser{}, io.Discard))
		if err == nil {
			t.Fatal("expected parse error")
		}
	})

	t.Run("prepare error", func(t *testing.T) {
		deps := depsWith(nil, nil, io.Discard)
		deps.prepare = func(*config.Config) (createAdminRuntime, io.Closer, error) {
			return nil, nil, errors.New("db failed")
		}
		err := runCreateAdmin(args, deps)
		if err == nil || !strings.Contains(err.Error(), "db failed") {
			t.Fatalf("expected prepare error, got %v", err)
		}
	})

	t.Run("role missing", func(t *testing.T) {
		err := runCreateAdmin(args, depsWith(&fakeAdminRuntime{roleErr: errors.New("not found")}, nopCloser{}, io.Discard))
		if err == nil || !strings.Contains(err.Error(), "run migrate first") {
			t.Fatalf("expected role error, got %v", err)
		}
	})

	t.Run("create error", func(t *testing.T) {
		rt := &fakeAdminRuntime{role: superAdmin, createErr: errors.New("email already in use")}
		err := runCreateAdmin(args, depsWith(rt, nopCloser{}, io.Discard))
		if err == nil || !strings.Contains(err.Error(), "failed creating admin") {
			t.Fatalf("expected create error, got %v", err)
		}
	})

	t.Run("success output with nil closer", func(t *testing.T) {
		var out bytes.Buffer
		rt := &fakeAdminRuntime{role: superAdmin}
		if err := runCreateAdmin(args, depsWith(rt, nil, &out)); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if rt.got == nil || rt.got.RoleID != superAdmin.ID || rt.got.Name != "Ops" {
			t.Fatalf("unexpected create input: %+v", rt.got)
		}
		if !strings.Contains(out.String(), "email=ops@shop.test") {
			t.Fatalf("unexpected output: %s", out.String())
		}
		if !strings.Contains(out.String(), "role=super_admin") {
			t.Fatalf("missing role in output: %s", out.String())
		}
	})
}
