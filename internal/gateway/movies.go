// Copyright (c) 2026 Kinora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package gateway

import (
	"context"
	"fmt"
	"net/url"

	"github.com/taibuivan/kinora/internal/models"
)

// # Movie Queries

/*
WeeklyTrending fetches one page of the weekly ranked movie collection.

Parameters:
  - context: context.Context
  - page: 1-based page number

Returns:
  - []models.Movie: Ranked collection for the page
  - error: Transport or server failures
*/
func (client *Client) WeeklyTrending(context context.Context, page int) ([]models.Movie, error) {
	var movies []models.Movie
	if err := client.getJSON(context, fmt.Sprintf("/movies/trending/week/%d", page), nil, &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

/*
DailyTrending fetches one page of the daily ranked movie collection.

Parameters:
  - context: context.Context
  - page: 1-based page number

Returns:
  - []models.Movie: Ranked collection for the page
  - error: Transport or server failures
*/
func (client *Client) DailyTrending(context context.Context, page int) ([]models.Movie, error) {
	var movies []models.Movie
	if err := client.getJSON(context, fmt.Sprintf("/movies/trending/day/%d", page), nil, &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

/*
MovieDetails fetches the detail payload for a single movie.

Parameters:
  - context: context.Context
  - movieID: int64

Returns:
  - *models.Movie: Detail payload
  - error: Transport or server failures
*/
func (client *Client) MovieDetails(context context.Context, movieID int64) (*models.Movie, error) {
	movie := &models.Movie{}
	if err := client.postJSON(context, fmt.Sprintf("/movies/more/%d", movieID), nil, nil, movie); err != nil {
		return nil, err
	}
	return movie, nil
}

// # Movie Mutations

/*
FetchAllMovies triggers a server-side ranking refresh.

Parameters:
  - context: context.Context

Returns:
  - *models.Ack: Acknowledgement payload
  - error: Transport or server failures
*/
func (client *Client) FetchAllMovies(context context.Context) (*models.Ack, error) {
	ack := &models.Ack{}
	if err := client.postJSON(context, "/movies/fetch-all", nil, nil, ack); err != nil {
		return nil, err
	}
	return ack, nil
}

// # Search

/*
SearchMovies fetches the search result collection for a free-text query.

Description: The query text is percent-encoded into the URL; normalization of
the text itself is the caller's concern.

Parameters:
  - context: context.Context
  - query: string

Returns:
  - []models.Movie: Search results
  - error: Transport or server failures
*/
func (client *Client) SearchMovies(context context.Context, query string) ([]models.Movie, error) {
	params := url.Values{}
	params.Set("query", query)

	var movies []models.Movie
	if err := client.getJSON(context, "/movies/search", params, &movies); err != nil {
		return nil, err
	}
	return movies, nil
}
