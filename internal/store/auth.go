package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	"github.com/glitzzera/admin-core/internal/models"
	"github.com/glitzzera/admin-core/internal/storage"
)

// AuthState is the authentication gate state.
type AuthState int

const (
	// StateLoading: durable storage has not been consulted yet.
	StateLoading AuthState = iota
	StateUnauthenticated
	StateAuthenticated
)

func (s AuthState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	}
	return "unknown"
}

// AuthState returns the current gate state.
func (s *Store) AuthState() AuthState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.auth
}

// Authenticated reports whether the gate is open.
func (s *Store) Authenticated() bool {
	return s.AuthState() == StateAuthenticated
}

// Restore consults durable storage at startup. A valid, unexpired session
// token moves the gate to Authenticated, restores the last-viewed page, and
// populates the product and category caches; anything else lands on
// Unauthenticated. Cache population failures are logged but do not fail the
// restore: the dashboard renders with empty collections and the next fetch
// retries.
func (s *Store) Restore(ctx context.Context) error {
	token, err := s.kv.Get(ctx, storage.KeySession)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Error().Err(err).Msg("failed to read persisted session")
		}
		s.setAuth(StateUnauthenticated)
		return nil
	}

	if err := s.verifySession(token); err != nil {
		log.Info().Err(err).Msg("persisted session rejected, signing out")
		_ = s.kv.Delete(ctx, storage.KeySession, storage.KeyLastPage)
		s.setAuth(StateUnauthenticated)
		return nil
	}

	s.setAuth(StateAuthenticated)
	s.restoreLastPage(ctx)
	s.populateInitialCaches(ctx)
	return nil
}

// Login opens the gate unconditionally, persists a signed session token, and
// populates the product and category caches. There is no credential check on
// the client: the surrounding shell and the API are responsible for real
// authentication.
func (s *Store) Login(ctx context.Context) error {
	token, err := s.issueSession()
	if err != nil {
		return fmt.Errorf("failed to issue session token: %w", err)
	}

	s.setAuth(StateAuthenticated)

	if err := s.kv.Set(ctx, storage.KeySession, token); err != nil {
		// The in-memory session stays valid; only the reload-survival is lost.
		log.Error().Err(err).Msg("failed to persist session token")
	}

	s.populateInitialCaches(ctx)
	return nil
}

// Logout closes the gate: persisted session and last-page keys are removed,
// navigation resets to the default page, and all caches, selections, and
// transient state from the session are discarded.
func (s *Store) Logout(ctx context.Context) error {
	err := s.kv.Delete(ctx, storage.KeySession, storage.KeyLastPage)
	if err != nil {
		log.Error().Err(err).Msg("failed to clear persisted session")
	}

	s.mu.Lock()
	s.auth = StateUnauthenticated
	s.currentPage = DefaultPage
	s.sidebarOpen = false
	s.message = nil
	s.selectedProduct = nil
	s.selectedCategory = nil
	s.selectedOrder = nil
	s.products = nil
	s.categoryProducts = nil
	s.categories = nil
	s.coupons = nil
	s.orders = nil
	s.customers = nil
	s.stats = models.ProductStats{}
	s.mu.Unlock()

	return err
}

func (s *Store) setAuth(state AuthState) {
	s.mu.Lock()
	s.auth = state
	s.mu.Unlock()
}

// populateInitialCaches warms the caches every page needs right after the
// gate opens. Failures are logged per entity; the views fall back to their
// own fetches.
func (s *Store) populateInitialCaches(ctx context.Context) {
	if err := s.FetchProducts(ctx); err != nil {
		log.Error().Err(err).Msg("initial product fetch failed")
	}
	if err := s.FetchCategories(ctx); err != nil {
		log.Error().Err(err).Msg("initial category fetch failed")
	}
}

// issueSession signs a session token valid for the configured TTL.
func (s *Store) issueSession() (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   "admin",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.session.TTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.session.Secret))
}

// verifySession checks signature and expiry of a persisted session token.
func (s *Store) verifySession(raw string) error {
	_, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{},
		func(t *jwt.Token) (any, error) {
			return []byte(s.session.Secret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	return err
}
