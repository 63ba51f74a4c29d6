// Copyright (c) 2026 Kinora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/taibuivan/kinora/internal/comments"
	"github.com/taibuivan/kinora/internal/gateway"
	"github.com/taibuivan/kinora/internal/movielist"
	"github.com/taibuivan/kinora/internal/movies"
	"github.com/taibuivan/kinora/internal/nav"
	"github.com/taibuivan/kinora/internal/session"
)

// app bundles the wired state layer for command dispatch.
type app struct {
	api      *gateway.Client
	session  *session.Manager
	movies   *movies.Store
	list     *movielist.Store
	comments *comments.Store
	guard    *nav.Guard
	log      *slog.Logger
}

// run dispatches one command line invocation.
func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usage()
	}

	switch args[0] {

	case "login":
		if len(args) != 3 {
			return usage()
		}
		user, err := a.session.Login(ctx, args[1], args[2])
		if err != nil {
			return err
		}
		return print(user)

	case "register":
		if len(args) < 3 || len(args) > 4 {
			return usage()
		}
		input := gateway.RegisterInput{Username: args[1], Password: args[2]}
		if len(args) == 4 {
			input.Email = args[3]
		}
		user, err := a.session.Register(ctx, input)
		if err != nil {
			return err
		}
		return print(user)

	case "avatar":
		userID, err := parseID(args, 1)
		if err != nil {
			return err
		}
		if len(args) != 3 {
			return usage()
		}
		file, err := os.Open(args[2])
		if err != nil {
			return err
		}
		defer func() { _ = file.Close() }()
		result, err := a.session.UploadAvatar(ctx, userID, filepath.Base(args[2]), file)
		if err != nil {
			return err
		}
		return print(result)

	case "logout":
		if err := a.session.Logout(ctx); err != nil {
			return err
		}
		fmt.Println("logged out")
		return nil

	case "whoami":
		return print(map[string]interface{}{
			"authenticated": a.session.IsAuthenticated(),
			"user":          a.session.CurrentUser(),
		})

	case "user":
		userID, err := parseID(args, 1)
		if err != nil {
			return err
		}
		user, err := a.api.GetUser(ctx, userID)
		if err != nil {
			return err
		}
		return print(user)

	case "trending":
		if len(args) < 2 {
			return usage()
		}
		page := 1
		if len(args) > 2 {
			page, _ = strconv.Atoi(args[2])
		}
		switch args[1] {
		case "week":
			result, err := a.movies.WeeklyTrending(ctx, page)
			if err != nil {
				return err
			}
			return print(result)
		case "day":
			result, err := a.movies.DailyTrending(ctx, page)
			if err != nil {
				return err
			}
			return print(result)
		default:
			return usage()
		}

	case "movie":
		movieID, err := parseID(args, 1)
		if err != nil {
			return err
		}
		movie, err := a.movies.MovieDetails(ctx, movieID)
		if err != nil {
			return err
		}
		return print(movie)

	case "search":
		if len(args) != 2 {
			return usage()
		}
		result, err := a.movies.Search(ctx, args[1])
		if err != nil {
			return err
		}
		return print(result)

	case "list":
		userID, err := parseID(args, 1)
		if err != nil {
			return err
		}
		entries, err := a.list.Fetch(ctx, userID)
		if err != nil {
			return err
		}
		return print(entries)

	case "list-add", "list-remove":
		userID, err := parseID(args, 1)
		if err != nil {
			return err
		}
		movieID, err := parseID(args, 2)
		if err != nil {
			return err
		}
		if args[0] == "list-add" {
			ack, err := a.list.Add(ctx, userID, movieID)
			if err != nil {
				return err
			}
			return print(ack)
		}
		ack, err := a.list.Remove(ctx, userID, movieID)
		if err != nil {
			return err
		}
		return print(ack)

	case "comments":
		movieID, err := parseID(args, 1)
		if err != nil {
			return err
		}
		result, err := a.comments.FetchMovieComments(ctx, movieID)
		if err != nil {
			return err
		}
		return print(result)

	case "comment-add":
		userID, err := parseID(args, 1)
		if err != nil {
			return err
		}
		movieID, err := parseID(args, 2)
		if err != nil {
			return err
		}
		if len(args) != 4 {
			return usage()
		}
		ack, err := a.comments.Add(ctx, userID, movieID, args[3])
		if err != nil {
			return err
		}
		return print(ack)

	case "comment-delete":
		userID, err := parseID(args, 1)
		if err != nil {
			return err
		}
		commentID, err := parseID(args, 2)
		if err != nil {
			return err
		}
		movieID := int64(0)
		if len(args) > 3 {
			if movieID, err = parseID(args, 3); err != nil {
				return err
			}
		}
		ack, err := a.comments.Delete(ctx, userID, commentID, movieID)
		if err != nil {
			return err
		}
		return print(ack)

	case "refresh-movies":
		ack, err := a.movies.RefreshAll(ctx)
		if err != nil {
			return err
		}
		return print(ack)

	case "my-comments":
		userID, err := parseID(args, 1)
		if err != nil {
			return err
		}
		result, err := a.comments.FetchUserComments(ctx, userID)
		if err != nil {
			return err
		}
		return print(result)

	case "guard":
		if len(args) != 2 {
			return usage()
		}
		decision := a.guard.ResolvePath(args[1])
		return print(map[string]interface{}{
			"allowed":  decision.Allowed,
			"redirect": decision.RedirectURL(),
		})

	default:
		return usage()
	}
}

// parseID reads a positional int64 argument.
func parseID(args []string, index int) (int64, error) {
	if len(args) <= index {
		return 0, usage()
	}
	id, err := strconv.ParseInt(args[index], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", args[index])
	}
	return id, nil
}
