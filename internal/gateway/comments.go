// Copyright (c) 2026 Kinora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package gateway

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/taibuivan/kinora/internal/models"
)

// # Comment Mutations

// addCommentPayload is the JSON body of the add-comment endpoint.
type addCommentPayload struct {
	UserID  int64  `json:"userId"`
	MovieID int64  `json:"movieId"`
	Comment string `json:"comment"`
}

/*
AddComment posts a new comment on a movie.

Parameters:
  - context: context.Context
  - userID: int64
  - movieID: int64
  - comment: The comment text

Returns:
  - *models.Ack: Acknowledgement payload
  - error: Transport or server failures
*/
func (client *Client) AddComment(context context.Context, userID, movieID int64, comment string) (*models.Ack, error) {
	params := url.Values{}
	params.Set("userId", strconv.FormatInt(userID, 10))

	payload := addCommentPayload{UserID: userID, MovieID: movieID, Comment: comment}

	ack := &models.Ack{}
	if err := client.postJSON(context, "/comments/add", params, payload, ack); err != nil {
		return nil, err
	}
	return ack, nil
}

/*
DeleteComment removes a comment by ID on behalf of the acting user.

Parameters:
  - context: context.Context
  - userID: int64
  - commentID: int64

Returns:
  - *models.Ack: Acknowledgement payload
  - error: Transport or server failures
*/
func (client *Client) DeleteComment(context context.Context, userID, commentID int64) (*models.Ack, error) {
	params := url.Values{}
	params.Set("userId", strconv.FormatInt(userID, 10))
	params.Set("commentId", strconv.FormatInt(commentID, 10))

	ack := &models.Ack{}
	if err := client.deleteJSON(context, "/comments/delete", params, ack); err != nil {
		return nil, err
	}
	return ack, nil
}

// # Comment Queries

/*
MovieComments fetches the comment collection for a movie.

Parameters:
  - context: context.Context
  - movieID: int64

Returns:
  - []models.Comment: Comments on the movie
  - error: Transport or server failures
*/
func (client *Client) MovieComments(context context.Context, movieID int64) ([]models.Comment, error) {
	var comments []models.Comment
	if err := client.getJSON(context, fmt.Sprintf("/comments/movie/%d", movieID), nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

/*
UserComments fetches the comment collection authored by a user.

Parameters:
  - context: context.Context
  - userID: int64

Returns:
  - []models.Comment: Comments by the user
  - error: Transport or server failures
*/
func (client *Client) UserComments(context context.Context, userID int64) ([]models.Comment, error) {
	var comments []models.Comment
	if err := client.getJSON(context, fmt.Sprintf("/comments/user/%d", userID), nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}
