package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestGenerateKeys_All(t *testing.T) {
	keys, err := generateKeys("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(keys) != len(envKeys) {
		t.Fatalf("expected %d keys got %d", len(envKeys), len(keys))
	}
	for k, v := range keys {
		if len(v) != 64 {
			t.Fatalf("%s: expected 64 hex chars got %d", k, len(v))
		}
	}
	if keys["SECRET_ENCRYPTION_KEY"] == keys["SESSION_ENCRYPTION_KEY"] {
		t.Fatal("expected distinct keys")
	}
}

func TestGenerateKeys_Only(t *testing.T) {
	keys, err := generateKeys("SESSION_ENCRYPTION_KEY")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := keys["SESSION_ENCRYPTION_KEY"]; !ok || len(keys) != 1 {
		t.Fatalf("unexpected keys: %v", keys)
	}

	if _, err := generateKeys("API_KEY"); err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestGenerateKeys_RandomFailure(t *testing.T) {
	orig := randomToken
	t.Cleanup(func() { randomToken = orig })
	randomToken = func(int) (string, error) { return "", errors.New("entropy") }

	if _, err := generateKeys(""); err == nil || !strings.Contains(err.Error(), "entropy") {
		t.Fatalf("expected entropy error, got %v", err)
	}
}

func TestRun_PrintsEnvLines(t *testing.T) {
	var out bytes.Buffer
	if err := run(nil, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 || !strings.HasPrefix(lines[0], "JWT_SECRET=") {
		t.Fatalf("unexpected output: %s", out.String())
	}

	if err := run([]string{"-bogus"}, &out); err == nil {
		t.Fatal("expected flag error")
	}
}
