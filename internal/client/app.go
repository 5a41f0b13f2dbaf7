// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/MKhiriev/go-movie-catalog/internal/adapter"
	"github.com/MKhiriev/go-movie-catalog/internal/config"
	"github.com/MKhiriev/go-movie-catalog/internal/logger"
	"github.com/MKhiriev/go-movie-catalog/models"
)

const usage = `usage: movie-client <command> [args]

commands:
  version                  print the server version
  list                     list all movies
  get <id>                 show one movie
  category <name>          list movies of a category
  create <movie-json>      add a movie
  update <id> <movie-json> replace a movie
  delete <id>              remove a movie`

type App struct {
	adapter     adapter.CatalogAdapter
	credentials config.ClientCredentials
	out         io.Writer

	logger *logger.Logger
}

func NewApp(catalog adapter.CatalogAdapter, credentials config.ClientCredentials, out io.Writer, logger *logger.Logger) *App {
	return &App{
		adapter:     catalog,
		credentials: credentials,
		out:         out,
		logger:      logger,
	}
}

// command is one CLI verb. Commands with needsAuth log in before running.
type command struct {
	args      int
	needsAuth bool
	run       func(ctx context.Context, args []string) (any, error)
}

func (a *App) commands() map[string]command {
	return map[string]command{
		"version":  {run: a.version},
		"list":     {needsAuth: true, run: a.list},
		"get":      {args: 1, needsAuth: true, run: a.get},
		"category": {args: 1, needsAuth: true, run: a.category},
		"create":   {args: 1, needsAuth: true, run: a.create},
		"update":   {args: 2, needsAuth: true, run: a.update},
		"delete":   {args: 1, needsAuth: true, run: a.delete},
	}
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "help" {
		fmt.Fprintln(a.out, usage)
		return nil
	}

	cmd, ok := a.commands()[args[0]]
	if !ok {
		return fmt.Errorf("%w: %q\n%s", ErrUnknownCommand, args[0], usage)
	}
	if len(args)-1 < cmd.args {
		return fmt.Errorf("%w: %s needs %d", ErrMissingArgs, args[0], cmd.args)
	}

	if cmd.needsAuth && a.adapter.Token() == "" {
		user := models.User{Email: a.credentials.Email, Password: a.credentials.Password}
		if err := a.adapter.Login(ctx, user); err != nil {
			return fmt.Errorf("login: %w", err)
		}
	}

	result, err := cmd.run(ctx, args[1:])
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	return a.print(result)
}

func (a *App) print(v any) error {
	if s, ok := v.(string); ok {
		_, err := fmt.Fprintln(a.out, s)
		return err
	}

	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func (a *App) version(ctx context.Context, _ []string) (any, error) {
	return a.adapter.Version(ctx)
}

func (a *App) list(ctx context.Context, _ []string) (any, error) {
	return a.adapter.ListMovies(ctx)
}

func (a *App) get(ctx context.Context, args []string) (any, error) {
	id, err := parseID(args[0])
	if err != nil {
		return nil, err
	}
	return a.adapter.GetMovie(ctx, id)
}

func (a *App) category(ctx context.Context, args []string) (any, error) {
	return a.adapter.ListMoviesByCategory(ctx, args[0])
}

func (a *App) create(ctx context.Context, args []string) (any, error) {
	movie, err := parseMovie(args[0])
	if err != nil {
		return nil, err
	}
	return a.adapter.CreateMovie(ctx, movie)
}

func (a *App) update(ctx context.Context, args []string) (any, error) {
	id, err := parseID(args[0])
	if err != nil {
		return nil, err
	}
	movie, err := parseMovie(args[1])
	if err != nil {
		return nil, err
	}
	return a.adapter.UpdateMovie(ctx, id, movie)
}

func (a *App) delete(ctx context.Context, args []string) (any, error) {
	id, err := parseID(args[0])
	if err != nil {
		return nil, err
	}
	return a.adapter.DeleteMovie(ctx, id)
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}
	return id, nil
}

// parseMovie decodes a movie on top of the defaults the server would apply.
func parseMovie(raw string) (models.Movie, error) {
	movie := models.NewMovieWithDefaults()
	if err := json.Unmarshal([]byte(raw), &movie); err != nil {
		return models.Movie{}, fmt.Errorf("%w: %w", ErrInvalidMovie, err)
	}
	return movie, nil
}
