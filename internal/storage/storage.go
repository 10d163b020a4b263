// Package storage provides the durable key-value store that survives
// application restarts. It is the Go counterpart of the browser
// localStorage the dashboard originally relied on: a handful of small
// string values (session token, last-viewed page), nothing more.
package storage

import (
	"context"
	"errors"
)

// Keys persisted by the application.
const (
	KeySession  = "glitzzera_admin_session"
	KeyLastPage = "glitzzera_admin_page"
)

// ErrNotFound is returned by Get when the key has never been set or was
// deleted.
var ErrNotFound = errors.New("storage: key not found")

// KV is a minimal durable key-value store.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
	Close() error
}
