// Copyright (c) 2026 Kinora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package models defines the wire entities exchanged with the remote movie service.

The remote service owns the exact wire format; these structs mirror it verbatim
and are round-tripped without local interpretation. The only field the client
ever mutates locally is [User.AvatarURL] after an avatar upload.

# Architecture

  - Entities here have no dependencies and no behavior.
  - Both the gateway and the state stores depend on this package, never on
    each other's internals.
*/
package models

// # Identity

// User represents a registered member as reported by the remote service.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
	Bio       string `json:"bio,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// LoginResult is the payload of a successful authentication call.
type LoginResult struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// AvatarResult is the payload of a successful avatar upload.
type AvatarResult struct {
	AvatarURL string `json:"avatarUrl"`
	Message   string `json:"message,omitempty"`
}

// # Catalogue

// Movie is an opaque ranked/search/detail record keyed by MovieID.
// It is never mutated locally; each fetch replaces it wholesale.
type Movie struct {
	MovieID     int64    `json:"movieId"`
	Title       string   `json:"title"`
	Overview    string   `json:"overview,omitempty"`
	PosterURL   string   `json:"posterUrl,omitempty"`
	BackdropURL string   `json:"backdropUrl,omitempty"`
	ReleaseDate string   `json:"releaseDate,omitempty"`
	Rating      float64  `json:"rating,omitempty"`
	Genres      []string `json:"genres,omitempty"`
}

// # Social

// Comment is a remark associated with (movieId, userId, commentId).
type Comment struct {
	CommentID int64  `json:"commentId"`
	UserID    int64  `json:"userId"`
	MovieID   int64  `json:"movieId"`
	Comment   string `json:"comment"`
	Username  string `json:"username,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// ListEntry is a "user saved this movie" association. The remote service is
// the source of truth; the local list cache mirrors it read-through.
type ListEntry struct {
	UserID    int64  `json:"userId"`
	MovieID   int64  `json:"movieId"`
	Title     string `json:"title,omitempty"`
	PosterURL string `json:"posterUrl,omitempty"`
	AddedAt   string `json:"addedAt,omitempty"`
}

// # Envelopes

// Ack is the acknowledgement payload returned by mutation endpoints.
type Ack struct {
	Message string `json:"message,omitempty"`
	Success bool   `json:"success,omitempty"`
}
