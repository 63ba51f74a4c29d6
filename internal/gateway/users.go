// Copyright (c) 2026 Kinora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package gateway

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/taibuivan/kinora/internal/models"
	"github.com/taibuivan/kinora/internal/platform/apperr"
	"github.com/taibuivan/kinora/internal/platform/constants"
)

// # User Queries & Mutations

// RegisterInput holds the registration fields forwarded to the remote service.
type RegisterInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email,omitempty"`
}

/*
Register enrolls a new user on the remote service.

Description: Stateless with respect to the session — the created user payload
is returned but the caller is not authenticated by this call.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *models.User: Created-user payload
  - error: Transport or server failures
*/
func (client *Client) Register(context context.Context, input RegisterInput) (*models.User, error) {
	user := &models.User{}
	if err := client.postJSON(context, "/users/register", nil, input, user); err != nil {
		return nil, err
	}
	return user, nil
}

/*
Login authenticates a user with the remote service.

Description: This is the single form-encoded endpoint; credentials are sent as
'application/x-www-form-urlencoded' body fields, never as JSON.

Parameters:
  - context: context.Context
  - username: string
  - password: string

Returns:
  - *models.LoginResult: The authenticated user and bearer token
  - error: Transport or server failures
*/
func (client *Client) Login(context context.Context, username, password string) (*models.LoginResult, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	result := &models.LoginResult{}
	err := client.call(context, http.MethodPost, "/auth/login", nil,
		strings.NewReader(form.Encode()), constants.ContentTypeForm, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

/*
GetUser fetches the user payload for the given ID.

Parameters:
  - context: context.Context
  - userID: int64

Returns:
  - *models.User: User payload
  - error: Transport or server failures
*/
func (client *Client) GetUser(context context.Context, userID int64) (*models.User, error) {
	params := url.Values{}
	params.Set("userId", strconv.FormatInt(userID, 10))

	user := &models.User{}
	if err := client.getJSON(context, "/users/get", params, user); err != nil {
		return nil, err
	}
	return user, nil
}

/*
UploadAvatar uploads a new avatar image for the given user.

Description: This is the single multipart endpoint; the payload carries a
'file' part with the image bytes and a 'userId' field.

Parameters:
  - context: context.Context
  - userID: int64
  - filename: Original file name for the multipart part
  - file: io.Reader with the image bytes

Returns:
  - *models.AvatarResult: The new avatar URL
  - error: Transport or server failures
*/
func (client *Client) UploadAvatar(context context.Context, userID int64, filename string, file io.Reader) (*models.AvatarResult, error) {

	// Build the multipart body in memory; avatars are small by contract.
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, apperr.Transport(fmt.Errorf("gateway_multipart_failed: %w", err))
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, apperr.Transport(fmt.Errorf("gateway_multipart_failed: %w", err))
	}
	if err := writer.WriteField("userId", strconv.FormatInt(userID, 10)); err != nil {
		return nil, apperr.Transport(fmt.Errorf("gateway_multipart_failed: %w", err))
	}
	if err := writer.Close(); err != nil {
		return nil, apperr.Transport(fmt.Errorf("gateway_multipart_failed: %w", err))
	}

	result := &models.AvatarResult{}
	err = client.call(context, http.MethodPost, "/users/upload/avatar", nil,
		body, writer.FormDataContentType(), result)
	if err != nil {
		return nil, err
	}
	return result, nil
}
