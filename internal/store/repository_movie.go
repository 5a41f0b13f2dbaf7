// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-movie-catalog/internal/logger"
	"github.com/MKhiriev/go-movie-catalog/models"
	sq "github.com/Masterminds/squirrel"
)

// movieColumns is the column order every SELECT on the movies table uses;
// scanMovie relies on it.
var movieColumns = []string{"id", "title", "overview", "year", "rating", "category"}

// movieRepository is the database/sql implementation of [MovieRepository].
// Queries are built with squirrel using the placeholder format of the
// configured driver, so the same code serves PostgreSQL and SQLite.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type movieRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMovieRepository constructs a [MovieRepository] backed by the provided
// database connection and logger.
func NewMovieRepository(db *DB, logger *logger.Logger) MovieRepository {
	logger.Debug().Msg("creating movie repository")
	return &movieRepository{
		db:     db,
		logger: logger,
	}
}

func (r *movieRepository) table() string {
	return models.Movie{}.TableName()
}

// ListAll returns every movie ordered by id. An empty table yields an empty,
// non-nil slice.
func (r *movieRepository) ListAll(ctx context.Context) ([]models.Movie, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(movieColumns...).
		From(r.table()).
		OrderBy("id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*movieRepository.ListAll").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var movies []models.Movie
	err = r.db.WithSession(ctx, func(ctx context.Context, conn *sql.Conn) error {
		movies, err = r.queryMovies(ctx, conn, query, args...)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*movieRepository.ListAll").Msg("error listing movies")
		return nil, err
	}

	return movies, nil
}

// GetByID returns the movie with the given id.
//
// Error handling:
//   - no row → [ErrMovieNotFound].
//   - driver-level error → wrapped [ErrExecutingQuery] / [ErrScanningRow].
func (r *movieRepository) GetByID(ctx context.Context, id int64) (models.Movie, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(movieColumns...).
		From(r.table()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*movieRepository.GetByID").Msg("error building query")
		return models.Movie{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var movie models.Movie
	err = r.db.WithSession(ctx, func(ctx context.Context, conn *sql.Conn) error {
		row := conn.QueryRowContext(ctx, query, args...)
		if scanErr := scanMovie(row, &movie); scanErr != nil {
			if errors.Is(scanErr, sql.ErrNoRows) {
				return ErrMovieNotFound
			}
			return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrMovieNotFound) {
			log.Err(err).Str("func", "*movieRepository.GetByID").Int64("id", id).Msg("error getting movie")
		}
		return models.Movie{}, err
	}

	return movie, nil
}

// ListByCategory returns the movies of exactly the given category,
// ordered by id. No match yields an empty slice, not an error.
func (r *movieRepository) ListByCategory(ctx context.Context, category string) ([]models.Movie, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(movieColumns...).
		From(r.table()).
		Where(sq.Eq{"category": category}).
		OrderBy("id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*movieRepository.ListByCategory").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var movies []models.Movie
	err = r.db.WithSession(ctx, func(ctx context.Context, conn *sql.Conn) error {
		movies, err = r.queryMovies(ctx, conn, query, args...)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*movieRepository.ListByCategory").Str("category", category).Msg("error listing movies by category")
		return nil, err
	}

	return movies, nil
}

// Create inserts the movie and returns it with the store-assigned id.
// The id is read back through a RETURNING clause, supported by both
// PostgreSQL and SQLite.
func (r *movieRepository) Create(ctx context.Context, movie models.Movie) (models.Movie, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(r.table()).
		Columns("title", "overview", "year", "rating", "category").
		Values(movie.Title, movie.Overview, movie.Year, movie.Rating, movie.Category).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*movieRepository.Create").Msg("error building query")
		return models.Movie{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.WithSession(ctx, func(ctx context.Context, conn *sql.Conn) error {
		if scanErr := conn.QueryRowContext(ctx, query, args...).Scan(&movie.ID); scanErr != nil {
			if isConstraintViolation(scanErr) {
				return fmt.Errorf("%w: %w", ErrInvalidMovieData, scanErr)
			}
			return fmt.Errorf("%w: %w", ErrExecutingStatement, scanErr)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*movieRepository.Create").Msg("error creating movie")
		return models.Movie{}, err
	}

	return movie, nil
}

// Update replaces title, overview, year, rating and category of the movie
// with the given id. It reports found=false when no row matched.
func (r *movieRepository) Update(ctx context.Context, id int64, movie models.Movie) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Update(r.table()).
		SetMap(map[string]any{
			"title":    movie.Title,
			"overview": movie.Overview,
			"year":     movie.Year,
			"rating":   movie.Rating,
			"category": movie.Category,
		}).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*movieRepository.Update").Msg("error building query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	found, err := r.execAffecting(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*movieRepository.Update").Int64("id", id).Msg("error updating movie")
		return false, err
	}

	return found, nil
}

// Delete removes the movie with the given id. It reports found=false when
// no row matched.
func (r *movieRepository) Delete(ctx context.Context, id int64) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Delete(r.table()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*movieRepository.Delete").Msg("error building query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	found, err := r.execAffecting(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*movieRepository.Delete").Int64("id", id).Msg("error deleting movie")
		return false, err
	}

	return found, nil
}

// execAffecting runs a DML statement in its own session and reports whether
// it touched at least one row.
func (r *movieRepository) execAffecting(ctx context.Context, query string, args ...any) (bool, error) {
	var affected int64
	err := r.db.WithSession(ctx, func(ctx context.Context, conn *sql.Conn) error {
		res, err := conn.ExecContext(ctx, query, args...)
		if err != nil {
			if isConstraintViolation(err) {
				return fmt.Errorf("%w: %w", ErrInvalidMovieData, err)
			}
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		affected, err = res.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrReadingAffectedRows, err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

func (r *movieRepository) queryMovies(ctx context.Context, conn *sql.Conn, query string, args ...any) ([]models.Movie, error) {
	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	movies := make([]models.Movie, 0)
	for rows.Next() {
		var movie models.Movie
		if err = scanMovie(rows, &movie); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		movies = append(movies, movie)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return movies, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMovie(row rowScanner, movie *models.Movie) error {
	return row.Scan(&movie.ID, &movie.Title, &movie.Overview, &movie.Year, &movie.Rating, &movie.Category)
}
