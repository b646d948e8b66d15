package service

import (
	"context"
	"errors"
	"testing"

	"github.com/johndosdos/micropost/internal/storage"
)

func TestRegister(t *testing.T) {
	t.Run("valid_account", func(t *testing.T) {
		svc := NewAccountService(storage.NewMemory())

		acct, err := svc.Register(context.Background(), "user", "password")
		if err != nil {
			t.Fatalf("Register() error = %+v", err)
		}
		if acct.ID != 1 {
			t.Errorf("id: want = 1, got = %d", acct.ID)
		}
		if acct.Username != "user" || acct.Password != "password" {
			t.Errorf("unexpected account: %+v", acct)
		}
	})

	t.Run("rejected_input", func(t *testing.T) {
		tests := []struct {
			name     string
			username string
			password string
		}{
			{"empty_username", "", "password"},
			{"password_too_short", "user", "abc"},
			{"empty_password", "user", ""},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				store := storage.NewMemory()
				svc := NewAccountService(store)

				_, err := svc.Register(context.Background(), tt.username, tt.password)
				if !errors.Is(err, ErrRejected) {
					t.Fatalf("Register() error = %+v, want ErrRejected", err)
				}

				// Nothing may be persisted on rejection.
				if _, err := store.SelectAccountByUsername(context.Background(), tt.username); !errors.Is(err, storage.ErrNotFound) {
					t.Errorf("account was persisted despite rejection")
				}
			})
		}
	})

	t.Run("duplicate_username", func(t *testing.T) {
		store := storage.NewMemory()
		svc := NewAccountService(store)

		first, err := svc.Register(context.Background(), "user", "password")
		if err != nil {
			t.Fatalf("Register() error = %+v", err)
		}

		_, err = svc.Register(context.Background(), "user", "otherpassword")
		if !errors.Is(err, ErrRejected) {
			t.Fatalf("Register() error = %+v, want ErrRejected", err)
		}

		// The original row must be untouched.
		stored, err := store.SelectAccountByUsername(context.Background(), "user")
		if err != nil {
			t.Fatalf("SelectAccountByUsername() error = %+v", err)
		}
		if stored != first {
			t.Errorf("stored account changed: want = %+v, got = %+v", first, stored)
		}
	})

	t.Run("constraint_violation_is_rejected", func(t *testing.T) {
		// A racing insert slips past the existence check and hits the
		// unique constraint instead.
		store := &constraintGateway{Gateway: storage.NewMemory()}
		svc := NewAccountService(store)

		_, err := svc.Register(context.Background(), "user", "password")
		if !errors.Is(err, ErrRejected) {
			t.Fatalf("Register() error = %+v, want ErrRejected", err)
		}
	})
}

func TestLogin(t *testing.T) {
	store := storage.NewMemory()
	svc := NewAccountService(store)

	registered, err := svc.Register(context.Background(), "user", "password")
	if err != nil {
		t.Fatalf("Register() error = %+v", err)
	}

	t.Run("correct_credentials", func(t *testing.T) {
		acct, err := svc.Login(context.Background(), "user", "password")
		if err != nil {
			t.Fatalf("Login() error = %+v", err)
		}
		if acct != registered {
			t.Errorf("want = %+v, got = %+v", registered, acct)
		}
	})

	t.Run("wrong_password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "user", "Password")
		if !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("Login() error = %+v, want ErrUnauthenticated", err)
		}
	})

	t.Run("unknown_username", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "nobody", "password")
		if !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("Login() error = %+v, want ErrUnauthenticated", err)
		}
		if errors.Is(err, ErrRejected) {
			t.Error("unknown username must not look like a validation failure")
		}
	})

	t.Run("storage_failure_is_not_unauthenticated", func(t *testing.T) {
		broken := NewAccountService(&brokenGateway{Gateway: store})
		_, err := broken.Login(context.Background(), "user", "password")
		if errors.Is(err, ErrUnauthenticated) || errors.Is(err, ErrRejected) {
			t.Fatalf("Login() error = %+v, want plain storage failure", err)
		}
		if err == nil {
			t.Fatal("Login() expected error but got none")
		}
	})
}
