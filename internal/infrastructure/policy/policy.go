// Package policy loads the static role→paths route policy.
package policy

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mykare/auth-core/internal/core/domain"
)

// file is the on-disk shape:
//
//	routes:
//	  admin: ["/", "/dashboard"]
//	  user: ["/"]
type file struct {
	Routes map[string][]string `yaml:"routes"`
}

// Load reads the route policy from a YAML file. An empty path returns the
// built-in defaults. The policy is loaded once at startup and treated as
// immutable afterwards.
func Load(path string) (domain.RoutePolicy, error) {
	if path == "" {
		return domain.DefaultRoutePolicy(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("policy read %s: %w", path, err)
	}

	var f file
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("policy decode %s: %w", path, err)
	}
	if len(f.Routes) == 0 {
		return nil, fmt.Errorf("policy %s: no routes defined", path)
	}
	return domain.RoutePolicy(f.Routes), nil
}
