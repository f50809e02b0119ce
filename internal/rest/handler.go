package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/dialog-service/internal/config"
	"github.com/s21platform/dialog-service/internal/dialog"
	"github.com/s21platform/dialog-service/internal/pkg/identity"
	"github.com/s21platform/dialog-service/internal/pkg/tx"
	"github.com/s21platform/dialog-service/internal/rest/api"
)

type Handler struct {
	repository   DBRepo
	hub          SessionHub
	validator    Validator
	jwtGenerator JWTGenerator
}

func New(
	repo DBRepo,
	hub SessionHub,
	validator Validator,
	jwtGenerator JWTGenerator,
) *Handler {
	return &Handler{
		repository:   repo,
		hub:          hub,
		validator:    validator,
		jwtGenerator: jwtGenerator,
	}
}

func (h *Handler) CreateDialog(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("CreateDialog")

	var req api.CreateDialogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	creatorID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get creator ID")
		h.writeError(w, "failed to get creator ID", http.StatusInternalServerError)
		return
	}

	if err := h.validator.ValidateCreateDialog(&req, creatorID); err != nil {
		logger.Error(fmt.Sprintf("dialog validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("dialog validation failed: %v", err), http.StatusBadRequest)
		return
	}

	var conversationID string
	err := tx.TxExecute(r.Context(), func(ctx context.Context) error {
		var err error
		conversationID, err = h.hub.OpenConversation(ctx, creatorID, req.CompanionId)
		if err != nil {
			logger.Error(fmt.Sprintf("failed to open dialog: %v", err))
			return err
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, identity.ErrSameParticipant) {
			h.writeError(w, "cannot open a dialog with yourself", http.StatusBadRequest)
			return
		}
		logger.Error(fmt.Sprintf("failed to complete dialog creation transaction: %v", err))
		h.writeError(w, fmt.Sprintf("failed to create dialog: %v", err), http.StatusInternalServerError)
		return
	}

	response := api.CreateDialogResponse{
		Id: conversationID,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) GetDialogs(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetDialogs")

	requesterID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get requester id")
		h.writeError(w, "failed to get requester id", http.StatusInternalServerError)
		return
	}

	conversations, err := h.repository.GetConversations(r.Context(), requesterID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get dialogs: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get dialogs: %v", err), http.StatusInternalServerError)
		return
	}

	dialog.SortConversations(conversations)

	dialogs := make([]api.DialogPreview, len(conversations))
	for i, conversation := range conversations {
		var lastMessageContent *string
		var lastMessageTimestamp *string
		if conversation.LastMessage != nil {
			content := conversation.LastMessage.Text
			lastMessageContent = &content
			timestamp := conversation.LastMessage.SentAt.Format(time.RFC3339)
			lastMessageTimestamp = &timestamp
		}

		dialogs[i] = api.DialogPreview{
			Id:                   conversation.ID,
			CompanionId:          conversation.Companion(requesterID),
			LastMessageContent:   lastMessageContent,
			LastMessageTimestamp: lastMessageTimestamp,
		}
	}

	response := api.GetDialogsResponse{
		Dialogs: dialogs,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) GetDialogMessages(w http.ResponseWriter, r *http.Request, conversationId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetDialogMessages")

	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to find uuid")
		h.writeError(w, "failed to find uuid", http.StatusInternalServerError)
		return
	}

	isParticipant, err := h.repository.IsParticipant(r.Context(), conversationId, userUUID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to check dialog membership: %v", err))
		h.writeError(w, fmt.Sprintf("failed to check dialog membership: %v", err), http.StatusInternalServerError)
		return
	}

	if !isParticipant {
		logger.Error("user is not a participant of the dialog")
		h.writeError(w, "user is not a participant of the dialog", http.StatusForbidden)
		return
	}

	messages, err := h.repository.GetConversationMessages(r.Context(), conversationId)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to fetch messages: %v", err))
		h.writeError(w, fmt.Sprintf("failed to fetch messages: %v", err), http.StatusInternalServerError)
		return
	}

	apiMessages := make([]api.Message, len(messages))
	for i, msg := range messages {
		apiMessages[i] = api.Message{
			Uuid:     msg.ID.String(),
			SenderId: msg.SenderID,
			Content:  msg.Text,
			SentAt:   msg.SentAt.Format(time.RFC3339),
		}
	}

	response := api.GetDialogMessagesResponse{
		Messages: apiMessages,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request, conversationId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SendMessage")

	var req api.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	senderID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get sender ID")
		h.writeError(w, "failed to get sender ID", http.StatusInternalServerError)
		return
	}

	if err := h.validator.ValidateSendMessage(&req); err != nil {
		logger.Error(fmt.Sprintf("message validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("message validation failed: %v", err), http.StatusBadRequest)
		return
	}

	err := tx.TxExecute(r.Context(), func(ctx context.Context) error {
		isParticipant, err := h.repository.IsParticipant(ctx, conversationId, senderID)
		if err != nil {
			logger.Error(fmt.Sprintf("failed to check dialog membership: %v", err))
			return fmt.Errorf("failed to check dialog membership: %v", err)
		}

		if !isParticipant {
			logger.Error(fmt.Sprintf("user %s is not a participant of dialog %s", senderID, conversationId))
			return errNotParticipant
		}

		if err := h.hub.Send(ctx, senderID, conversationId, req.Content); err != nil {
			logger.Error(fmt.Sprintf("failed to send message: %v", err))
			return err
		}

		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, errNotParticipant):
			h.writeError(w, "user is not a participant of this dialog", http.StatusForbidden)
		case errors.Is(err, dialog.ErrInvalidInput):
			h.writeError(w, fmt.Sprintf("failed to send message: %v", err), http.StatusBadRequest)
		default:
			h.writeError(w, fmt.Sprintf("failed to send message: %v", err), http.StatusInternalServerError)
		}
		return
	}

	response := api.SendMessageResponse{
		Status: "sent",
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) GetConnectAccessToken(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetConnectAccessToken")

	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return
	}

	token, expiresAt, err := h.jwtGenerator.GenerateConnectToken(userUUID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to generate access token: %v", err))
		h.writeError(w, fmt.Sprintf("failed to generate access token: %v", err), http.StatusInternalServerError)
		return
	}

	logger.Info(fmt.Sprintf("generated access token for user %s", userUUID))

	response := api.GetConnectAccessTokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) GetDialogSubscribeToken(w http.ResponseWriter, r *http.Request, conversationId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetDialogSubscribeToken")

	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return
	}

	isParticipant, err := h.repository.IsParticipant(r.Context(), conversationId, userUUID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to check dialog membership: %v", err))
		h.writeError(w, fmt.Sprintf("failed to check dialog membership: %v", err), http.StatusInternalServerError)
		return
	}

	if !isParticipant {
		logger.Error("user is not a participant of the dialog")
		h.writeError(w, "user is not a participant of the dialog", http.StatusForbidden)
		return
	}

	token, expiresAt, err := h.jwtGenerator.GenerateSubscribeToken(userUUID, conversationId)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to generate subscribe token: %v", err))
		h.writeError(w, fmt.Sprintf("failed to generate subscribe token: %v", err), http.StatusInternalServerError)
		return
	}

	logger.Info(fmt.Sprintf("generated subscribe token for user %s, dialog %s", userUUID, conversationId))

	response := api.GetDialogSubscribeTokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Channel:   conversationId,
	}

	h.writeJSON(w, response, http.StatusOK)
}

var errNotParticipant = errors.New("user is not a participant of this dialog")

// ----------------------------- helpers -----------------------------

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.Error{Error: message})
}
