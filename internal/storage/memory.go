package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/johndosdos/micropost/internal/model"
)

// Memory implements Gateway with in-process maps. It mirrors the Postgres
// gateway's observable behavior, including serial id assignment that never
// reuses an id, so services and handlers can be exercised without a
// database.
type Memory struct {
	mu            sync.Mutex
	accounts      map[int]model.Account
	messages      map[int]model.Message
	nextAccountID int
	nextMessageID int
}

var _ Gateway = (*Memory)(nil)

// NewMemory creates an empty in-memory gateway.
func NewMemory() *Memory {
	return &Memory{
		accounts:      make(map[int]model.Account),
		messages:      make(map[int]model.Message),
		nextAccountID: 1,
		nextMessageID: 1,
	}
}

func (m *Memory) InsertAccount(_ context.Context, username, password string) (model.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, acct := range m.accounts {
		if acct.Username == username {
			return model.Account{}, ErrConstraint
		}
	}

	acct := model.Account{ID: m.nextAccountID, Username: username, Password: password}
	m.accounts[acct.ID] = acct
	m.nextAccountID++
	return acct, nil
}

func (m *Memory) SelectAccountByUsername(_ context.Context, username string) (model.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, acct := range m.accounts {
		if acct.Username == username {
			return acct, nil
		}
	}
	return model.Account{}, ErrNotFound
}

func (m *Memory) SelectAccountByID(_ context.Context, id int) (model.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	acct, ok := m.accounts[id]
	if !ok {
		return model.Account{}, ErrNotFound
	}
	return acct, nil
}

func (m *Memory) InsertMessage(_ context.Context, postedBy int, text string, epoch int64) (model.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.accounts[postedBy]; !ok {
		return model.Message{}, ErrConstraint
	}

	msg := model.Message{
		ID:              m.nextMessageID,
		PostedBy:        postedBy,
		MessageText:     text,
		TimePostedEpoch: epoch,
	}
	m.messages[msg.ID] = msg
	m.nextMessageID++
	return msg, nil
}

func (m *Memory) SelectAllMessages(_ context.Context) ([]model.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.collect(func(model.Message) bool { return true }), nil
}

func (m *Memory) SelectMessageByID(_ context.Context, id int) (model.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	msg, ok := m.messages[id]
	if !ok {
		return model.Message{}, ErrNotFound
	}
	return msg, nil
}

func (m *Memory) SelectMessagesByAccount(_ context.Context, accountID int) ([]model.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.collect(func(msg model.Message) bool { return msg.PostedBy == accountID }), nil
}

func (m *Memory) UpdateMessageText(_ context.Context, id int, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	msg, ok := m.messages[id]
	if !ok {
		return ErrNotFound
	}
	msg.MessageText = text
	m.messages[id] = msg
	return nil
}

func (m *Memory) DeleteMessageByID(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.messages[id]; !ok {
		return ErrNotFound
	}
	delete(m.messages, id)
	return nil
}

// collect returns matching messages in id order. Callers must hold mu.
func (m *Memory) collect(match func(model.Message) bool) []model.Message {
	messages := []model.Message{}
	for _, msg := range m.messages {
		if match(msg) {
			messages = append(messages, msg)
		}
	}
	sort.Slice(messages, func(i, j int) bool { return messages[i].ID < messages[j].ID })
	return messages
}
