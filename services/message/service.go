package message

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	messageRepo "alabraar/database/repository/message"
	userRepo "alabraar/database/repository/user"
	"alabraar/models"
	"alabraar/services/notification"
)

// MessageService handles direct messages between students and ustaadhs.
type MessageService interface {
	Send(ctx context.Context, senderID, receiverID, content, bookingID string) (*models.Message, error)
	GetConversation(ctx context.Context, userID, otherID string) ([]models.Message, error)
	MarkRead(ctx context.Context, receiverID, senderID string) error
	UnreadCount(ctx context.Context, receiverID string) (int64, error)
}

// DefaultMessageService implements MessageService.
type DefaultMessageService struct {
	Repo     messageRepo.MessageRepository
	Users    userRepo.UserRepository
	Notifier notification.NotificationService
}

func (s *DefaultMessageService) Send(ctx context.Context, senderID, receiverID, content, bookingID string) (*models.Message, error) {
	if content == "" {
		return nil, errors.New("message content is required")
	}
	if senderID == receiverID {
		return nil, errors.New("cannot message yourself")
	}
	receiver, err := s.Users.GetByID(receiverID)
	if err != nil {
		return nil, fmt.Errorf("receiver not found: %w", err)
	}

	msg := &models.Message{
		ID:         uuid.New().String(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		BookingID:  bookingID,
		Content:    content,
		Timestamp:  time.Now(),
	}
	if err := s.Repo.Create(ctx, msg); err != nil {
		return nil, err
	}

	if s.Notifier != nil {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			_ = s.Notifier.SendPush(ctx, receiver.ID, "New message", content,
				map[string]string{"type": "message", "senderId": senderID})
		}()
	}

	return msg, nil
}

func (s *DefaultMessageService) GetConversation(ctx context.Context, userID, otherID string) ([]models.Message, error) {
	return s.Repo.GetConversation(ctx, userID, otherID)
}

func (s *DefaultMessageService) MarkRead(ctx context.Context, receiverID, senderID string) error {
	return s.Repo.MarkRead(ctx, receiverID, senderID)
}

func (s *DefaultMessageService) UnreadCount(ctx context.Context, receiverID string) (int64, error) {
	return s.Repo.CountUnread(ctx, receiverID)
}
