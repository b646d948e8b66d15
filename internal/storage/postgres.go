package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/johndosdos/micropost/internal/model"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// Postgres implements Gateway on a database/sql handle backed by the pgx
// stdlib driver.
type Postgres struct {
	db *sql.DB
}

var _ Gateway = (*Postgres)(nil)

// NewPostgres creates a gateway using the provided database handle. The
// handle is owned by the caller for the process lifetime.
func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (p *Postgres) InsertAccount(ctx context.Context, username, password string) (model.Account, error) {
	var acct model.Account
	err := p.db.QueryRowContext(ctx, `
		INSERT INTO account (username, password)
		VALUES ($1, $2)
		RETURNING account_id, username, password
	`, username, password).Scan(&acct.ID, &acct.Username, &acct.Password)
	if err != nil {
		return model.Account{}, wrap("insert account", err)
	}
	return acct, nil
}

func (p *Postgres) SelectAccountByUsername(ctx context.Context, username string) (model.Account, error) {
	var acct model.Account
	err := p.db.QueryRowContext(ctx, `
		SELECT account_id, username, password
		FROM account
		WHERE username = $1
	`, username).Scan(&acct.ID, &acct.Username, &acct.Password)
	if err != nil {
		return model.Account{}, wrap("select account by username", err)
	}
	return acct, nil
}

func (p *Postgres) SelectAccountByID(ctx context.Context, id int) (model.Account, error) {
	var acct model.Account
	err := p.db.QueryRowContext(ctx, `
		SELECT account_id, username, password
		FROM account
		WHERE account_id = $1
	`, id).Scan(&acct.ID, &acct.Username, &acct.Password)
	if err != nil {
		return model.Account{}, wrap("select account by id", err)
	}
	return acct, nil
}

func (p *Postgres) InsertMessage(ctx context.Context, postedBy int, text string, epoch int64) (model.Message, error) {
	var msg model.Message
	err := p.db.QueryRowContext(ctx, `
		INSERT INTO message (posted_by, message_text, time_posted_epoch)
		VALUES ($1, $2, $3)
		RETURNING message_id, posted_by, message_text, time_posted_epoch
	`, postedBy, text, epoch).Scan(&msg.ID, &msg.PostedBy, &msg.MessageText, &msg.TimePostedEpoch)
	if err != nil {
		return model.Message{}, wrap("insert message", err)
	}
	return msg, nil
}

func (p *Postgres) SelectAllMessages(ctx context.Context) ([]model.Message, error) {
	rows, err := p.db.QueryContext(ctx, `
		SELECT message_id, posted_by, message_text, time_posted_epoch
		FROM message
		ORDER BY message_id
	`)
	if err != nil {
		return nil, wrap("select all messages", err)
	}
	defer rows.Close()

	return scanMessages(rows)
}

func (p *Postgres) SelectMessageByID(ctx context.Context, id int) (model.Message, error) {
	var msg model.Message
	err := p.db.QueryRowContext(ctx, `
		SELECT message_id, posted_by, message_text, time_posted_epoch
		FROM message
		WHERE message_id = $1
	`, id).Scan(&msg.ID, &msg.PostedBy, &msg.MessageText, &msg.TimePostedEpoch)
	if err != nil {
		return model.Message{}, wrap("select message by id", err)
	}
	return msg, nil
}

func (p *Postgres) SelectMessagesByAccount(ctx context.Context, accountID int) ([]model.Message, error) {
	rows, err := p.db.QueryContext(ctx, `
		SELECT message_id, posted_by, message_text, time_posted_epoch
		FROM message
		WHERE posted_by = $1
		ORDER BY message_id
	`, accountID)
	if err != nil {
		return nil, wrap("select messages by account", err)
	}
	defer rows.Close()

	return scanMessages(rows)
}

func (p *Postgres) UpdateMessageText(ctx context.Context, id int, text string) error {
	result, err := p.db.ExecContext(ctx, `
		UPDATE message
		SET message_text = $2
		WHERE message_id = $1
	`, id, text)
	if err != nil {
		return wrap("update message text", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("update message text: %w", ErrNotFound)
	}
	return nil
}

func (p *Postgres) DeleteMessageByID(ctx context.Context, id int) error {
	result, err := p.db.ExecContext(ctx, `
		DELETE FROM message
		WHERE message_id = $1
	`, id)
	if err != nil {
		return wrap("delete message by id", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("delete message by id: %w", ErrNotFound)
	}
	return nil
}

func scanMessages(rows *sql.Rows) ([]model.Message, error) {
	// Non-nil so an empty table serializes as [] rather than null.
	messages := []model.Message{}
	for rows.Next() {
		var msg model.Message
		if err := rows.Scan(&msg.ID, &msg.PostedBy, &msg.MessageText, &msg.TimePostedEpoch); err != nil {
			return nil, wrap("scan message row", err)
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("iterate message rows", err)
	}
	return messages, nil
}

// wrap translates driver errors into the gateway's sentinels.
func wrap(op string, err error) error {
	var pgErr *pgconn.PgError
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case errors.As(err, &pgErr) && (pgErr.Code == pgUniqueViolation || pgErr.Code == pgForeignKeyViolation):
		return fmt.Errorf("%s: %w", op, ErrConstraint)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
