//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rest

import (
	"context"

	"github.com/s21platform/dialog-service/internal/model"
	"github.com/s21platform/dialog-service/internal/rest/api"
)

type DBRepo interface {
	GetConversations(ctx context.Context, participantID string) (model.ConversationList, error)
	GetConversationMessages(ctx context.Context, conversationID string) (model.MessageList, error)
	IsParticipant(ctx context.Context, conversationID, userID string) (bool, error)

	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

type SessionHub interface {
	OpenConversation(ctx context.Context, participantID, companionID string) (string, error)
	Send(ctx context.Context, participantID, conversationID, text string) error
}

type Validator interface {
	ValidateCreateDialog(req *api.CreateDialogRequest, creatorID string) error
	ValidateSendMessage(req *api.SendMessageRequest) error
}

type JWTGenerator interface {
	GenerateConnectToken(userID string) (string, int64, error)
	GenerateSubscribeToken(userID, conversationID string) (string, int64, error)
	ValidateConnectToken(tokenString string) (*model.CentrifugoConnectClaims, error)
	ValidateSubscribeToken(tokenString string) (*model.CentrifugoSubscribeClaims, error)
}
