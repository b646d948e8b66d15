package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/johndosdos/micropost/internal/model"
	"github.com/johndosdos/micropost/internal/storage"
)

const maxMessageLen = 255

// MessageService applies message CRUD rules.
type MessageService struct {
	store storage.Gateway
}

// NewMessageService creates a message service backed by the given gateway.
func NewMessageService(store storage.Gateway) *MessageService {
	return &MessageService{store: store}
}

// validText reports whether text is 1 to 255 characters long. Characters
// are counted as code points, matching the VARCHAR(255) column.
func validText(text string) bool {
	n := utf8.RuneCountInString(text)
	return n >= 1 && n <= maxMessageLen
}

// Create persists a message with the store-assigned id. The text must be
// 1-255 characters and the poster must be an existing account; the account
// check runs here, with the foreign key as the backstop for the race
// between check and insert.
func (s *MessageService) Create(ctx context.Context, postedBy int, text string, epoch int64) (model.Message, error) {
	if !validText(text) {
		return model.Message{}, fmt.Errorf("message text must be 1-%d characters: %w", maxMessageLen, ErrRejected)
	}

	if _, err := s.store.SelectAccountByID(ctx, postedBy); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return model.Message{}, fmt.Errorf("account %d does not exist: %w", postedBy, ErrRejected)
		}
		return model.Message{}, err
	}

	msg, err := s.store.InsertMessage(ctx, postedBy, text, epoch)
	if err != nil {
		if errors.Is(err, storage.ErrConstraint) {
			return model.Message{}, fmt.Errorf("account %d does not exist: %w", postedBy, ErrRejected)
		}
		return model.Message{}, err
	}

	slog.InfoContext(ctx, "message created",
		slog.Int("id", msg.ID),
		slog.Int("posted_by", msg.PostedBy))

	return msg, nil
}

// GetAll returns every message in id order. An empty store yields an
// empty slice.
func (s *MessageService) GetAll(ctx context.Context) ([]model.Message, error) {
	return s.store.SelectAllMessages(ctx)
}

// GetByID returns the message with the given id, or ErrNotFound.
func (s *MessageService) GetByID(ctx context.Context, id int) (model.Message, error) {
	return s.store.SelectMessageByID(ctx, id)
}

// GetAllByAccount returns the messages posted by the given account in id
// order. An unknown account yields an empty slice, not an error.
func (s *MessageService) GetAllByAccount(ctx context.Context, accountID int) ([]model.Message, error) {
	return s.store.SelectMessagesByAccount(ctx, accountID)
}

// DeleteByID removes a message and returns its pre-deletion snapshot.
// Deleting an id that does not exist returns ErrNotFound, every time.
func (s *MessageService) DeleteByID(ctx context.Context, id int) (model.Message, error) {
	msg, err := s.store.SelectMessageByID(ctx, id)
	if err != nil {
		return model.Message{}, err
	}

	if err := s.store.DeleteMessageByID(ctx, id); err != nil {
		return model.Message{}, err
	}

	slog.InfoContext(ctx, "message deleted", slog.Int("id", id))

	return msg, nil
}

// UpdateText replaces a message's text, leaving every other field alone,
// and returns the updated row. Invalid text is rejected whether or not the
// id exists, and a missing id is also a rejection; callers cannot tell the
// two apart.
func (s *MessageService) UpdateText(ctx context.Context, id int, text string) (model.Message, error) {
	if !validText(text) {
		return model.Message{}, fmt.Errorf("message text must be 1-%d characters: %w", maxMessageLen, ErrRejected)
	}

	if err := s.store.UpdateMessageText(ctx, id, text); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return model.Message{}, fmt.Errorf("message %d does not exist: %w", id, ErrRejected)
		}
		return model.Message{}, err
	}

	slog.InfoContext(ctx, "message updated", slog.Int("id", id))

	return s.store.SelectMessageByID(ctx, id)
}
