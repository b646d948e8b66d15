package service

import (
	"context"
	"errors"

	"github.com/johndosdos/micropost/internal/model"
	"github.com/johndosdos/micropost/internal/storage"
)

// constraintGateway fails every insert with ErrConstraint, standing in for
// the store rejecting a row that slipped past the service's pre-checks.
type constraintGateway struct {
	storage.Gateway
}

func (g *constraintGateway) InsertAccount(context.Context, string, string) (model.Account, error) {
	return model.Account{}, storage.ErrConstraint
}

func (g *constraintGateway) InsertMessage(context.Context, int, string, int64) (model.Message, error) {
	return model.Message{}, storage.ErrConstraint
}

// brokenGateway fails every operation with a non-domain error, standing in
// for a dead connection.
type brokenGateway struct {
	storage.Gateway
}

var errConnRefused = errors.New("connection refused")

func (g *brokenGateway) SelectAccountByUsername(context.Context, string) (model.Account, error) {
	return model.Account{}, errConnRefused
}

func (g *brokenGateway) SelectAllMessages(context.Context) ([]model.Message, error) {
	return nil, errConnRefused
}
