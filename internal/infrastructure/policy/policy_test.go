package policy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mykare/auth-core/internal/core/domain"
)

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	p, err := Load("")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !p.Allows(domain.RoleAdmin, domain.DashboardPath) {
		t.Fatalf("default policy must admit admin to dashboard")
	}
	if p.Allows(domain.RoleUser, domain.DashboardPath) {
		t.Fatalf("default policy must not admit user to dashboard")
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "routes.yaml")
	doc := `routes:
  admin: ["/", "/dashboard", "/audit"]
  user: ["/"]
`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !p.Allows(domain.RoleAdmin, "/audit") {
		t.Fatalf("custom route missing from loaded policy")
	}
	if p.Allows(domain.RoleUser, "/audit") {
		t.Fatalf("user unexpectedly admitted to /audit")
	}
}

func TestLoad_MissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing policy file")
	}
}

func TestLoad_EmptyRoutesFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "routes.yaml")
	if err := os.WriteFile(path, []byte("routes: {}\n"), 0o600); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for empty routes")
	}
}
