package controllers

import (
	"context"

	"renthub/accounts"
	"renthub/lifecycle"
	"renthub/store"
)

// Handler carries the services every endpoint needs. Nothing is read from
// the gin context except the authenticated user.
type Handler struct {
	accounts  *accounts.Service
	lifecycle *lifecycle.Manager
	users     store.Users
	tokens    *TokenIssuer
	maxUpload int64
	ping      func(ctx context.Context) error
}

type Options struct {
	Accounts       *accounts.Service
	Lifecycle      *lifecycle.Manager
	Users          store.Users
	Tokens         *TokenIssuer
	MaxUploadBytes int64
	// Ping checks the database for /health. Optional.
	Ping func(ctx context.Context) error
}

func NewHandler(o Options) *Handler {
	maxUpload := o.MaxUploadBytes
	if maxUpload <= 0 {
		maxUpload = 8 << 20
	}
	return &Handler{
		accounts:  o.Accounts,
		lifecycle: o.Lifecycle,
		users:     o.Users,
		tokens:    o.Tokens,
		maxUpload: maxUpload,
		ping:      o.Ping,
	}
}
