// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Default values applied to a movie body when the client omits the field.
const (
	DefaultMovieTitle    = "Movie Title"
	DefaultMovieOverview = "Movie description"
	DefaultMovieYear     = 2022
)

// Movie is a single catalog entry persisted in the "movies" table.
//
// The validate tags describe the constraints every movie must satisfy before
// it reaches the store; they are enforced by the validators package.
type Movie struct {
	// ID is assigned by the store on creation and never changes afterwards.
	// Any ID sent by a client in a create or update body is ignored.
	ID int64 `json:"id"`

	// Title is the display title of the movie (5-15 characters).
	Title string `json:"title" validate:"min=5,max=15"`

	// Overview is a short description of the plot (15-50 characters).
	Overview string `json:"overview" validate:"min=15,max=50"`

	// Year is the release year, no later than 2022.
	Year int `json:"year" validate:"lte=2022"`

	// Rating is the score in the closed range [1, 10].
	Rating float64 `json:"rating" validate:"gte=1,lte=10"`

	// Category is the genre used by the by-category lookup (5-15 characters).
	// Matching is exact and case-sensitive.
	Category string `json:"category" validate:"min=5,max=15"`
}

// NewMovieWithDefaults returns a Movie pre-filled with the defaults for
// title, overview and year. Decoding a request body into it leaves the
// defaults in place for every field the body does not mention.
func NewMovieWithDefaults() Movie {
	return Movie{
		Title:    DefaultMovieTitle,
		Overview: DefaultMovieOverview,
		Year:     DefaultMovieYear,
	}
}

// TableName returns the name of the database table
// associated with the Movie model.
func (m Movie) TableName() string {
	return "movies"
}

// MovieLookup identifies a movie by its path id on read endpoints.
type MovieLookup struct {
	ID int64 `json:"id" validate:"gte=1,lte=2000"`
}

// CategoryQuery is the query string of the by-category endpoint.
type CategoryQuery struct {
	Category string `json:"category" validate:"min=5,max=15"`
}
