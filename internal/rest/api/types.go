// Package api holds the request and response types of the dialog REST surface.
package api

type Error struct {
	Error string `json:"error"`
}

type CreateDialogRequest struct {
	CompanionId string `json:"companion_id"`
}

type CreateDialogResponse struct {
	Id string `json:"id"`
}

type DialogPreview struct {
	Id                   string  `json:"id"`
	CompanionId          string  `json:"companion_id"`
	LastMessageContent   *string `json:"last_message_content,omitempty"`
	LastMessageTimestamp *string `json:"last_message_timestamp,omitempty"`
}

type GetDialogsResponse struct {
	Dialogs []DialogPreview `json:"dialogs"`
}

type Message struct {
	Uuid     string `json:"uuid"`
	SenderId string `json:"sender_id"`
	Content  string `json:"content"`
	SentAt   string `json:"sent_at"`
}

type GetDialogMessagesResponse struct {
	Messages []Message `json:"messages"`
}

type SendMessageRequest struct {
	Content string `json:"content"`
}

type SendMessageResponse struct {
	Status string `json:"status"`
}

type GetConnectAccessTokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}

type GetDialogSubscribeTokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
	Channel   string `json:"channel"`
}
