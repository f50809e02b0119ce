package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/s21platform/dialog-service/internal/config"
	"github.com/s21platform/dialog-service/internal/model"
)

type Repository struct {
	connection *sqlx.DB
	conninfo   string
}

func New(cfg *config.Config) *Repository {
	conStr := connString(cfg)

	conn, err := sqlx.Connect("postgres", conStr)
	if err != nil {
		log.Fatal("error connect: ", err)
	}

	return &Repository{
		connection: conn,
		conninfo:   conStr,
	}
}

func connString(cfg *config.Config) string {
	return fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.Host, cfg.Postgres.Port)
}

func (r *Repository) Close() {
	_ = r.connection.Close()
}

type txKey string

const keyConnection = txKey("postgres_tx")

// WithTx runs cb with a transaction bound into ctx; Chk routes the
// callback's queries through it.
func (r *Repository) WithTx(ctx context.Context, cb func(ctx context.Context) error) error {
	transaction, err := r.connection.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}

	ctx = context.WithValue(ctx, keyConnection, transaction)
	if err = cb(ctx); err != nil {
		_ = transaction.Rollback()
		return err
	}

	return transaction.Commit()
}

type connection interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// Chk returns the transaction bound to ctx, or the pooled connection.
func (r *Repository) Chk(ctx context.Context) connection {
	if transaction, ok := ctx.Value(keyConnection).(*sqlx.Tx); ok {
		return transaction
	}
	return r.connection
}

type conversationRow struct {
	ID              string     `db:"id"`
	ParticipantA    string     `db:"participant_a"`
	ParticipantB    string     `db:"participant_b"`
	CreatedBy       string     `db:"created_by"`
	CreatedAt       time.Time  `db:"created_at"`
	LastMessageText *string    `db:"last_message_text"`
	LastMessageAt   *time.Time `db:"last_message_at"`
}

func (row conversationRow) toModel() model.Conversation {
	conversation := model.Conversation{
		ID:           row.ID,
		ParticipantA: row.ParticipantA,
		ParticipantB: row.ParticipantB,
		CreatedBy:    row.CreatedBy,
		CreatedAt:    row.CreatedAt,
	}

	if row.LastMessageText != nil && row.LastMessageAt != nil {
		conversation.LastMessage = &model.LastMessage{
			Text:   *row.LastMessageText,
			SentAt: *row.LastMessageAt,
		}
	}

	return conversation
}

var conversationColumns = []string{
	"id",
	"participant_a",
	"participant_b",
	"created_by",
	"created_at",
	"last_message_text",
	"last_message_at",
}

// EnsureConversation is the create-if-absent write: both participants race
// on the same canonical id, so the loser's insert is a clean no-op.
func (r *Repository) EnsureConversation(ctx context.Context, conversation *model.Conversation) error {
	query, args, err := sq.Insert("conversations").
		Columns("id", "participant_a", "participant_b", "created_by").
		Values(conversation.ID, conversation.ParticipantA, conversation.ParticipantB, conversation.CreatedBy).
		Suffix("ON CONFLICT (id) DO NOTHING").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	return r.notify(ctx, channelConversations, conversation.ID)
}

// GetConversation is the point read.
func (r *Repository) GetConversation(ctx context.Context, conversationID string) (*model.Conversation, error) {
	query, args, err := sq.Select(conversationColumns...).
		From("conversations").
		Where(sq.Eq{"id": conversationID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var row conversationRow
	err = r.Chk(ctx).GetContext(ctx, &row, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation: %v", err)
	}

	conversation := row.toModel()
	return &conversation, nil
}

// GetConversations returns every conversation the participant is a member
// of. Presentation order is recomputed by the caller on every batch.
func (r *Repository) GetConversations(ctx context.Context, participantID string) (model.ConversationList, error) {
	query, args, err := sq.Select(conversationColumns...).
		From("conversations").
		Where(sq.Or{
			sq.Eq{"participant_a": participantID},
			sq.Eq{"participant_b": participantID},
		}).
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var rows []conversationRow
	err = r.Chk(ctx).SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get conversations: %v", err)
	}

	conversations := make(model.ConversationList, len(rows))
	for i, row := range rows {
		conversations[i] = row.toModel()
	}

	return conversations, nil
}

// SetLastMessage is the merge-write behind the list preview: it touches the
// two preview columns and nothing else on the row.
func (r *Repository) SetLastMessage(ctx context.Context, conversationID string, preview model.LastMessage) error {
	query, args, err := sq.Update("conversations").
		Set("last_message_text", preview.Text).
		Set("last_message_at", preview.SentAt).
		Where(sq.Eq{"id": conversationID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	return r.notify(ctx, channelConversations, conversationID)
}

// SaveMessage is the durable append. The store assigns sent_at, which is
// written back into message so callers see the canonical timestamp.
func (r *Repository) SaveMessage(ctx context.Context, message *model.Message) error {
	query, args, err := sq.Insert("messages").
		Columns("id", "conversation_id", "sender_id", "content").
		Values(message.ID, message.ConversationID, message.SenderID, message.Text).
		Suffix("RETURNING sent_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	err = r.Chk(ctx).GetContext(ctx, &message.SentAt, query, args...)
	if err != nil {
		return fmt.Errorf("failed to save message: %v", err)
	}

	return r.notify(ctx, channelMessages, message.ConversationID)
}

// GetConversationMessages returns the conversation's full stream in
// chronological reading order.
func (r *Repository) GetConversationMessages(ctx context.Context, conversationID string) (model.MessageList, error) {
	query, args, err := sq.Select(
		"id",
		"conversation_id",
		"sender_id",
		"content",
		"sent_at",
	).
		From("messages").
		Where(sq.Eq{"conversation_id": conversationID}).
		OrderBy("sent_at ASC", "id ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var messages model.MessageList
	err = r.Chk(ctx).SelectContext(ctx, &messages, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get messages: %v", err)
	}

	return messages, nil
}

// IsParticipant checks conversation membership for the request guards.
func (r *Repository) IsParticipant(ctx context.Context, conversationID, userID string) (bool, error) {
	query, args, err := sq.
		Select("COUNT(*) > 0").
		From("conversations").
		Where(sq.And{
			sq.Eq{"id": conversationID},
			sq.Or{
				sq.Eq{"participant_a": userID},
				sq.Eq{"participant_b": userID},
			},
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build sql query: %v", err)
	}

	var isParticipant bool
	err = r.Chk(ctx).GetContext(ctx, &isParticipant, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to check conversation membership: %v", err)
	}

	return isParticipant, nil
}

// notify emits the change over postgres NOTIFY. Inside a transaction the
// notification is delivered on commit, which keeps feed refreshes in
// acknowledgment order.
func (r *Repository) notify(ctx context.Context, channel, conversationID string) error {
	_, err := r.Chk(ctx).ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, conversationID)
	if err != nil {
		return fmt.Errorf("failed to notify %s: %v", channel, err)
	}
	return nil
}
