// Command mykare-auth is an interactive shell around the auth core: it plays
// the part of the multi-page UI, wiring the configured storage backend, the
// auth service and the route guard, and mapping shell commands to navigation
// and form submissions.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mykare/auth-core/internal/core/domain"
	"github.com/mykare/auth-core/internal/core/guard"
	"github.com/mykare/auth-core/internal/core/ports"
	"github.com/mykare/auth-core/internal/core/service"
	mongodb "github.com/mykare/auth-core/internal/infrastructure/db/mongo"
	redisdb "github.com/mykare/auth-core/internal/infrastructure/db/redis"
	"github.com/mykare/auth-core/internal/infrastructure/directory"
	"github.com/mykare/auth-core/internal/infrastructure/hash"
	"github.com/mykare/auth-core/internal/infrastructure/kv"
	"github.com/mykare/auth-core/internal/infrastructure/policy"
	sessionstore "github.com/mykare/auth-core/internal/infrastructure/session"
	"github.com/mykare/auth-core/internal/pkg/config"
	"github.com/mykare/auth-core/pkg/logger"
)

// shellRouter tracks the "current page" and echoes navigation commands.
type shellRouter struct {
	current string
}

func (r *shellRouter) Navigate(path string) {
	r.current = path
	fmt.Printf("→ %s\n", path)
}

// shellNotifier prints transient messages the way the UI would toast them.
type shellNotifier struct{}

func (shellNotifier) Success(message string) { fmt.Printf("✓ %s\n", message) }
func (shellNotifier) Error(message string)   { fmt.Printf("✗ %s\n", message) }

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.Env == "development"})

	ctx := context.Background()

	store, cleanup, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.StorageBackend).Msg("storage init failed")
	}
	defer cleanup()

	routes, err := policy.Load(cfg.PolicyPath)
	if err != nil {
		log.Fatal().Err(err).Msg("route policy load failed")
	}

	var codec sessionstore.Codec
	if cfg.SessionSecret != "" {
		codec = sessionstore.NewSignedCodec(cfg.SessionSecret)
	}

	router := &shellRouter{current: domain.HomePath}
	var notify ports.Notifier = shellNotifier{}

	hasher := hash.NewBcrypt(hash.WorkFactor)
	dir := directory.New(store, hasher, log)
	sessions := sessionstore.NewStore(store, codec)
	auth := service.NewAuthService(dir, hasher, sessions, router, log)

	// Auth pages are unguarded so redirecting to login can never loop.
	g := guard.New(auth, routes, router, log, domain.LoginPath, domain.RegistrationPath)

	if err := auth.Hydrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("hydrate failed")
	}

	runShell(ctx, auth, g, router, notify)
}

func openStore(ctx context.Context, cfg *config.Config) (ports.KVStore, func(), error) {
	noop := func() {}
	switch cfg.StorageBackend {
	case config.BackendFile:
		return kv.NewFileStore(cfg.StoragePath), noop, nil
	case config.BackendMemory:
		return kv.NewMemoryStore(), noop, nil
	case config.BackendRedis:
		client, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return nil, nil, err
		}
		return redisdb.NewKVStore(client), func() { _ = client.Close() }, nil
	case config.BackendMongo:
		client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, nil, err
		}
		return mongodb.NewKVStore(db), func() { _ = client.Disconnect(ctx) }, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}

func runShell(ctx context.Context, auth ports.AuthService, g *guard.Guard,
	router *shellRouter, notify ports.Notifier) {
	fmt.Println("mykare auth shell — commands: register, login, logout, visit, users, whoami, quit")
	sc := bufio.NewScanner(os.Stdin)
	for {
		fmt.Printf("[%s] > ", router.current)
		if !sc.Scan() {
			return
		}
		args := strings.Fields(sc.Text())
		if len(args) == 0 {
			continue
		}

		switch args[0] {
		case "register":
			if len(args) < 4 {
				fmt.Println("usage: register <fullname> <username> <password> [role]")
				continue
			}
			role := ""
			if len(args) > 4 {
				role = args[4]
			}
			sess, err := auth.Register(ctx, args[1], args[2], args[3], role)
			if err != nil {
				notify.Error(err.Error())
				continue
			}
			notify.Success("registration successful")
			landOn(g, router, sess)
		case "login":
			if len(args) != 3 {
				fmt.Println("usage: login <username> <password>")
				continue
			}
			sess, err := auth.Login(ctx, args[1], args[2])
			if err != nil {
				notify.Error(err.Error())
				continue
			}
			notify.Success("login successful")
			landOn(g, router, sess)
		case "logout":
			auth.Logout(ctx)
		case "visit":
			if len(args) != 2 {
				fmt.Println("usage: visit <path>")
				continue
			}
			res := g.Visit(args[1])
			switch res.Decision {
			case guard.DecisionAllow:
				router.current = args[1]
				fmt.Printf("rendered %s\n", args[1])
			case guard.DecisionPending:
				fmt.Println("loading…")
			}
		case "users":
			users, err := auth.AllUsers(ctx)
			if err != nil {
				notify.Error(err.Error())
				continue
			}
			for _, u := range users {
				fmt.Printf("%-20s %-15s %s\n", u.Fullname, u.Username, u.Role)
			}
		case "whoami":
			sess, state := auth.Current()
			if sess == nil {
				fmt.Println(state.String())
				continue
			}
			fmt.Printf("%s (%s, %s)\n", sess.Fullname, sess.Username, sess.Role)
		case "quit", "exit":
			return
		default:
			fmt.Printf("unknown command %q\n", args[0])
		}
	}
}

// landOn mirrors the original post-login behavior: admins land on the
// dashboard, everyone else on the home page.
func landOn(g *guard.Guard, router *shellRouter, sess *domain.Session) {
	target := domain.HomePath
	if sess.Role == domain.RoleAdmin {
		target = domain.DashboardPath
	}
	if g.Visit(target).Decision == guard.DecisionAllow {
		router.Navigate(target)
	}
}
