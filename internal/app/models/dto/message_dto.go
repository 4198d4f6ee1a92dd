package dto

import (
	"time"

	"github.com/campushq/mentorhub/internal/app/models"
)

// SendMessageRequest represents a direct message send request
type SendMessageRequest struct {
	ReceiverID int64  `json:"receiverId" binding:"required,min=1"`
	Content    string `json:"content" binding:"required"`
}

// MessageResponse represents message information
type MessageResponse struct {
	ID         int64         `json:"id"`
	SenderID   int64         `json:"senderId"`
	ReceiverID int64         `json:"receiverId"`
	Content    string        `json:"content"`
	IsRead     bool          `json:"isRead"`
	CreatedAt  time.Time     `json:"createdAt"`
	Sender     *UserResponse `json:"sender,omitempty"`
	Receiver   *UserResponse `json:"receiver,omitempty"`
}

// NewMessageResponse maps a message model to its response shape
func NewMessageResponse(m *models.Message) MessageResponse {
	resp := MessageResponse{
		ID:         m.ID,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		Content:    m.Content,
		IsRead:     m.IsRead,
		CreatedAt:  m.CreatedAt,
	}
	if m.Sender != nil {
		sender := NewUserResponse(m.Sender)
		resp.Sender = &sender
	}
	if m.Receiver != nil {
		receiver := NewUserResponse(m.Receiver)
		resp.Receiver = &receiver
	}
	return resp
}

// NewMessageResponses maps a message slice to response shapes
func NewMessageResponses(messages []*models.Message) []MessageResponse {
	out := make([]MessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, NewMessageResponse(m))
	}
	return out
}
