// Copyright (c) 2026 Kinora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command kinora is a small command-line front to the client state layer.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Open the session vault (file or Redis backed).
//  4. Wire the gateway client and domain stores.
//  5. Restore any persisted session.
//  6. Dispatch the requested command.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/taibuivan/kinora/internal/comments"
	"github.com/taibuivan/kinora/internal/gateway"
	"github.com/taibuivan/kinora/internal/movielist"
	"github.com/taibuivan/kinora/internal/movies"
	"github.com/taibuivan/kinora/internal/nav"
	"github.com/taibuivan/kinora/internal/platform/config"
	"github.com/taibuivan/kinora/internal/platform/constants"
	redisvault "github.com/taibuivan/kinora/internal/platform/redis"
	"github.com/taibuivan/kinora/internal/session"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	// Logs go to stderr; stdout is reserved for command output.
	rawLog := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	ctx := context.Background()

	// ── 3. Session Vault ──────────────────────────────────────────────────
	var vault session.Vault
	switch cfg.SessionBackend {
	case config.BackendRedis:
		rdb, err := redisvault.NewClient(ctx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis close error", slog.Any("error", cerr))
			}
		}()
		vault = session.NewRedisVault(rdb)
	default:
		path := cfg.SessionFile
		if path == "" {
			configDir, err := os.UserConfigDir()
			must(log, err, "resolve config directory")
			path = filepath.Join(configDir, constants.AppName, "session.json")
		}
		vault = session.NewFileVault(path)
	}

	// ── 4. Gateway & Stores ───────────────────────────────────────────────
	api := gateway.New(cfg, vault, log)

	sessionManager := session.NewManager(api, vault, log)
	movieStore := movies.NewStore(api, log)
	listStore := movielist.NewStore(api, log)
	commentStore := comments.NewStore(api, log)
	guard := nav.NewGuard(sessionManager)

	// ── 5. Session Restoration ────────────────────────────────────────────
	must(log, sessionManager.Restore(ctx), "restore session")

	// ── 6. Command Dispatch ───────────────────────────────────────────────
	app := &app{
		api:      api,
		session:  sessionManager,
		movies:   movieStore,
		list:     listStore,
		comments: commentStore,
		guard:    guard,
		log:      log,
	}

	if err := app.run(ctx, os.Args[1:]); err != nil {
		log.Error("command failed", slog.Any("error", err))
		os.Exit(1)
	}
}

// print renders a payload as indented JSON on stdout.
func print(payload interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}

// usage summarizes the available commands.
func usage() error {
	fmt.Fprintln(os.Stderr, `usage: kinora <command> [args]

commands:
  login <username> <password>          authenticate and persist the session
  register <user> <pass> [email]       create a new account
  logout                               clear the persisted session
  whoami                               show the current session state
  avatar <userId> <file>               upload a new avatar image
  user <userId>                        fetch a user profile
  trending <week|day> [page]           fetch a trending page
  movie <movieId>                      fetch movie details
  search <query>                       search movies
  refresh-movies                       trigger a server-side ranking refresh
  list <userId>                        fetch a personal movie list
  list-add <userId> <movieId>          save a movie to the list
  list-remove <userId> <movieId>       remove a movie from the list
  comments <movieId>                   fetch a movie's comments
  my-comments <userId>                 fetch a user's comments
  comment-add <userId> <movieId> <text>
                                       post a comment on a movie
  comment-delete <userId> <commentId> [movieId]
                                       delete a comment
  guard <path>                         show the navigation decision for a path`)
	return fmt.Errorf("unknown or missing command")
}
