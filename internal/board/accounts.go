// Package board implements the product dashboard's collaborators: the
// account and product services and the App that wires them to the toast
// manager.
package board

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/colonyops/toastboard/internal/core/catalog"
	"github.com/colonyops/toastboard/internal/core/eventbus"
	"github.com/colonyops/toastboard/internal/core/logging"
	"github.com/colonyops/toastboard/internal/core/validate"
)

// AccountService registers users and tracks logged-in sessions in memory.
type AccountService struct {
	bus  *eventbus.EventBus
	log  zerolog.Logger
	cost int
	now  func() time.Time

	mu       sync.RWMutex
	users    map[string]catalog.User // keyed by normalized email
	sessions map[string]string       // token -> email
}

// NewAccountService creates an AccountService. A cost of 0 uses
// bcrypt.DefaultCost.
func NewAccountService(bus *eventbus.EventBus, log zerolog.Logger, cost int) *AccountService {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &AccountService{
		bus:      bus,
		log:      log.With().Str("component", "account-service").Logger(),
		cost:     cost,
		now:      time.Now,
		users:    make(map[string]catalog.User),
		sessions: make(map[string]string),
	}
}

// Register validates and creates an account. The outcome is published as
// account.registered or account.register-failed.
func (s *AccountService) Register(ctx context.Context, name, email, password string) error {
	ctx = logging.WithOperation(logging.WithUser(ctx, email), "account.register")

	user, err := s.register(name, email, password)
	if err != nil {
		s.log.Warn().Ctx(ctx).Err(err).Msg("registration failed")
		s.publishRegisterFailed(email, err)
		return err
	}

	s.log.Info().Ctx(ctx).Str("user_id", user.ID).Msg("account registered")
	if s.bus != nil {
		s.bus.PublishAccountRegistered(eventbus.AccountRegisteredPayload{
			UserID: user.ID,
			Name:   user.Name,
			Email:  user.Email,
		})
	}
	return nil
}

func (s *AccountService) register(name, email, password string) (catalog.User, error) {
	if err := validate.SignUp(name, email, password); err != nil {
		return catalog.User{}, errors.Join(catalog.ErrValidation, err)
	}

	key := normalizeEmail(email)

	s.mu.RLock()
	_, exists := s.users[key]
	s.mu.RUnlock()
	if exists {
		return catalog.User{}, catalog.ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return catalog.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := catalog.User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(name),
		Email:        strings.TrimSpace(email),
		PasswordHash: hash,
		CreatedAt:    s.now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// Re-check under the write lock; a concurrent Register may have won.
	if _, exists := s.users[key]; exists {
		return catalog.User{}, catalog.ErrEmailExists
	}
	s.users[key] = user
	return user, nil
}

func (s *AccountService) publishRegisterFailed(email string, err error) {
	if s.bus == nil {
		return
	}
	s.bus.PublishAccountRegisterFailed(eventbus.AccountRegisterFailedPayload{Email: email, Err: err})
}

// Login checks credentials and returns a session token.
func (s *AccountService) Login(ctx context.Context, email, password string) (string, error) {
	ctx = logging.WithOperation(logging.WithUser(ctx, email), "account.login")

	s.mu.RLock()
	user, ok := s.users[normalizeEmail(email)]
	s.mu.RUnlock()
	if !ok {
		s.log.Debug().Ctx(ctx).Msg("login for unknown email")
		return "", catalog.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		s.log.Debug().Ctx(ctx).Msg("login with wrong password")
		return "", catalog.ErrInvalidCredentials
	}

	token := uuid.NewString()

	s.mu.Lock()
	s.sessions[token] = normalizeEmail(email)
	s.mu.Unlock()

	s.log.Info().Ctx(ctx).Msg("logged in")
	return token, nil
}

// Logout ends the session for token. Unknown tokens are ignored.
func (s *AccountService) Logout(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// Authenticate resolves a session token to its user.
func (s *AccountService) Authenticate(token string) (catalog.User, error) {
	if token == "" {
		return catalog.User{}, catalog.ErrUnauthorized
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	email, ok := s.sessions[token]
	if !ok {
		return catalog.User{}, catalog.ErrUnauthorized
	}
	user, ok := s.users[email]
	if !ok {
		return catalog.User{}, catalog.ErrUnauthorized
	}
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
