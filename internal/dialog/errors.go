package dialog

import (
	"errors"
	"fmt"
)

// Scope identifies which live view a SyncError belongs to.
type Scope string

const (
	ScopeConversationList Scope = "conversation_list"
	ScopeMessageStream    Scope = "message_stream"
)

// ErrInvalidInput rejects a send before any remote call is made.
var ErrInvalidInput = errors.New("invalid input")

// ErrSuperseded reports that an opening subscription lost its slot to a
// newer one before it became active.
var ErrSuperseded = errors.New("subscription superseded")

// SyncError marks a live view as stale. The last good state stays visible;
// no further updates are applied until the caller re-opens the slot.
type SyncError struct {
	Scope Scope
	Err   error
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("sync failed for %s: %v", e.Scope, e.Err)
}

func (e *SyncError) Unwrap() error { return e.Err }

// SendError reports a failed durable append. The compose draft has already
// been restored, so the user can simply resubmit.
type SendError struct {
	ConversationID string
	Err            error
}

func (e *SendError) Error() string {
	return fmt.Sprintf("failed to send to conversation %s: %v", e.ConversationID, e.Err)
}

func (e *SendError) Unwrap() error { return e.Err }
