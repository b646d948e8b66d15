package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/johndosdos/micropost/internal/model"
	"github.com/johndosdos/micropost/internal/storage"
)

const minPasswordLen = 4

// AccountService applies registration and login rules.
type AccountService struct {
	store storage.Gateway
}

// NewAccountService creates an account service backed by the given gateway.
func NewAccountService(store storage.Gateway) *AccountService {
	return &AccountService{store: store}
}

// Register persists a new account and returns it with the store-assigned
// id. Rejected when the username is empty, the password is shorter than
// four characters, or the username is already taken. Nothing is written on
// rejection.
func (s *AccountService) Register(ctx context.Context, username, password string) (model.Account, error) {
	if username == "" {
		return model.Account{}, fmt.Errorf("username is required: %w", ErrRejected)
	}
	if utf8.RuneCountInString(password) < minPasswordLen {
		return model.Account{}, fmt.Errorf("password must be at least %d characters: %w", minPasswordLen, ErrRejected)
	}

	_, err := s.store.SelectAccountByUsername(ctx, username)
	switch {
	case err == nil:
		return model.Account{}, fmt.Errorf("username %q is taken: %w", username, ErrRejected)
	case !errors.Is(err, storage.ErrNotFound):
		return model.Account{}, err
	}

	acct, err := s.store.InsertAccount(ctx, username, password)
	if err != nil {
		// Two registrations can pass the existence check at the same
		// time; the unique constraint decides the loser.
		if errors.Is(err, storage.ErrConstraint) {
			return model.Account{}, fmt.Errorf("username %q is taken: %w", username, ErrRejected)
		}
		return model.Account{}, err
	}

	slog.InfoContext(ctx, "account registered",
		slog.Int("id", acct.ID),
		slog.String("username", acct.Username))

	return acct, nil
}

// Login returns the stored account on an exact, case-sensitive
// username/password match. An unknown username and a wrong password are
// the same outcome. The returned account carries the stored password;
// that is the response contract.
func (s *AccountService) Login(ctx context.Context, username, password string) (model.Account, error) {
	acct, err := s.store.SelectAccountByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return model.Account{}, ErrUnauthenticated
		}
		return model.Account{}, err
	}

	if subtle.ConstantTimeCompare([]byte(acct.Password), []byte(password)) != 1 {
		return model.Account{}, ErrUnauthenticated
	}

	slog.InfoContext(ctx, "user logged in",
		slog.String("username", acct.Username))

	return acct, nil
}
