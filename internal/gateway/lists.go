// Copyright (c) 2026 Kinora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package gateway

import (
	"context"
	"net/url"
	"strconv"

	"github.com/taibuivan/kinora/internal/models"
)

// listQuery builds the userId/movieId query pair used by the list endpoints.
func listQuery(userID, movieID int64) url.Values {
	params := url.Values{}
	params.Set("userId", strconv.FormatInt(userID, 10))
	params.Set("movieId", strconv.FormatInt(movieID, 10))
	return params
}

// # List Mutations

/*
AddToList saves a movie into the user's personal list.

Parameters:
  - context: context.Context
  - userID: int64
  - movieID: int64

Returns:
  - *models.Ack: Acknowledgement payload
  - error: Transport or server failures
*/
func (client *Client) AddToList(context context.Context, userID, movieID int64) (*models.Ack, error) {
	ack := &models.Ack{}
	if err := client.postJSON(context, "/movieList/add", listQuery(userID, movieID), nil, ack); err != nil {
		return nil, err
	}
	return ack, nil
}

/*
RemoveFromList removes a movie from the user's personal list.

Parameters:
  - context: context.Context
  - userID: int64
  - movieID: int64

Returns:
  - *models.Ack: Acknowledgement payload
  - error: Transport or server failures
*/
func (client *Client) RemoveFromList(context context.Context, userID, movieID int64) (*models.Ack, error) {
	ack := &models.Ack{}
	if err := client.deleteJSON(context, "/movieList/delete", listQuery(userID, movieID), ack); err != nil {
		return nil, err
	}
	return ack, nil
}

// # List Queries

/*
GetList fetches the user's personal movie list.

Parameters:
  - context: context.Context
  - userID: int64

Returns:
  - []models.ListEntry: The saved-movie collection
  - error: Transport or server failures
*/
func (client *Client) GetList(context context.Context, userID int64) ([]models.ListEntry, error) {
	params := url.Values{}
	params.Set("userId", strconv.FormatInt(userID, 10))

	var entries []models.ListEntry
	if err := client.getJSON(context, "/movieList/getList", params, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
