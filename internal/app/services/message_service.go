package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/campushq/mentorhub/internal/app/access"
	"github.com/campushq/mentorhub/internal/app/models"
	"github.com/campushq/mentorhub/internal/app/models/dto"
	"github.com/campushq/mentorhub/internal/app/repositories"
	"github.com/campushq/mentorhub/internal/pkg/apperrors"
)

// MessageService handles direct messages
type MessageService struct {
	messageRepo *repositories.MessageRepository
	userRepo    *repositories.UserRepository
	logger      zerolog.Logger
}

// NewMessageService creates a new MessageService
func NewMessageService(
	messageRepo *repositories.MessageRepository,
	userRepo *repositories.UserRepository,
	logger zerolog.Logger,
) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// List returns the messages the principal sent or received, newest first
func (s *MessageService) List(ctx context.Context, principalID int64) ([]dto.MessageResponse, error) {
	messages, err := s.messageRepo.GetByParticipant(ctx, principalID)
	if err != nil {
		return nil, err
	}
	return dto.NewMessageResponses(access.VisibleMessages(principalID, messages)), nil
}

// Send creates a direct message from the principal to the receiver
func (s *MessageService) Send(ctx context.Context, senderID int64, req *dto.SendMessageRequest) (*dto.MessageResponse, error) {
	if req.ReceiverID == senderID {
		return nil, apperrors.NewValidationError("cannot send a message to yourself")
	}

	receiver, err := s.userRepo.GetUserByID(ctx, req.ReceiverID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewValidationError("receiver does not exist")
		}
		return nil, fmt.Errorf("failed to get receiver: %w", err)
	}
	if !receiver.IsActive {
		return nil, apperrors.NewValidationError("receiver account is disabled")
	}

	message := &models.Message{
		SenderID:   senderID,
		ReceiverID: req.ReceiverID,
		Content:    req.Content,
	}

	if _, err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	resp := dto.NewMessageResponse(message)
	return &resp, nil
}

// MarkRead flips the read flag of a message. Only the receiver may mark a
// message read; a message the principal is not party to is reported as not
// found.
func (s *MessageService) MarkRead(ctx context.Context, principalID, messageID int64) error {
	message, err := s.messageRepo.GetByID(ctx, messageID)
	if err != nil {
		return err
	}
	if message.SenderID != principalID && message.ReceiverID != principalID {
		return apperrors.ErrMessageNotFound
	}
	if message.ReceiverID != principalID {
		return apperrors.NewForbiddenError("only the receiver can mark a message read")
	}

	return s.messageRepo.MarkRead(ctx, messageID)
}
