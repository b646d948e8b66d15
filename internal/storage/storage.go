// Package storage is the boundary to the relational store. Every gateway
// operation issues a single statement; there is no cross-statement
// transaction anywhere in the core.
package storage

import (
	"context"
	"errors"

	"github.com/johndosdos/micropost/internal/model"
)

// ErrNotFound reports that no row matched the lookup. Absence is an
// expected outcome for several operations, so callers must be able to
// tell it apart from a real store failure.
var ErrNotFound = errors.New("storage: not found")

// ErrConstraint reports a unique or foreign-key violation.
var ErrConstraint = errors.New("storage: constraint violation")

// Gateway issues queries and statements against the account and message
// tables.
type Gateway interface {
	InsertAccount(ctx context.Context, username, password string) (model.Account, error)
	SelectAccountByUsername(ctx context.Context, username string) (model.Account, error)
	SelectAccountByID(ctx context.Context, id int) (model.Account, error)

	InsertMessage(ctx context.Context, postedBy int, text string, epoch int64) (model.Message, error)
	SelectAllMessages(ctx context.Context) ([]model.Message, error)
	SelectMessageByID(ctx context.Context, id int) (model.Message, error)
	SelectMessagesByAccount(ctx context.Context, accountID int) ([]model.Message, error)
	UpdateMessageText(ctx context.Context, id int, text string) error
	DeleteMessageByID(ctx context.Context, id int) error
}
