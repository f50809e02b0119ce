package auth

import (
	"context"
	"encoding/json"
	"fmt"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/dialog-service/internal/config"
)

const (
	eventSignedIn  = "signed_in"
	eventSignedOut = "signed_out"
)

// AccountEvent is the payload of the account lifecycle topic.
type AccountEvent struct {
	UserUUID string `json:"uuid"`
	Event    string `json:"event"`
}

type Handler struct {
	hub SessionHub
}

func New(hub SessionHub) *Handler {
	return &Handler{hub: hub}
}

func (h *Handler) Handler(ctx context.Context, in []byte) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("Handler")

	var event AccountEvent
	if err := json.Unmarshal(in, &event); err != nil {
		logger.Error(fmt.Sprintf("failed to unmarshal account event: %v", err))
		return
	}

	if event.UserUUID == "" {
		logger.Error("account event without uuid")
		return
	}

	switch event.Event {
	case eventSignedIn:
		if err := h.hub.SignedIn(ctx, event.UserUUID); err != nil {
			logger.Error(fmt.Sprintf("failed to start session for %s: %v", event.UserUUID, err))
		}
	case eventSignedOut:
		h.hub.SignedOut(event.UserUUID)
	default:
		logger.Error(fmt.Sprintf("unknown account event: %s", event.Event))
	}
}
