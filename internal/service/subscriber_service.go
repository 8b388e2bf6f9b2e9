package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"tourney-hub/internal/domain"
	"tourney-hub/internal/repository"
)

// ErrAlreadySubscribed is returned when the email is already on the list.
var ErrAlreadySubscribed = errors.New("already subscribed")

// SubscriberService records newsletter signups.
type SubscriberService interface {
	Subscribe(ctx context.Context, email string) error
}

type subscriberService struct {
	subscribers repository.SubscriberRepository
}

func NewSubscriberService(subscribers repository.SubscriberRepository) SubscriberService {
	return &subscriberService{subscribers: subscribers}
}

func (s *subscriberService) Subscribe(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}

	subscriber := &domain.Subscriber{
		ID:        uuid.NewString(),
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.subscribers.Create(ctx, subscriber); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrAlreadySubscribed
		}
		return err
	}
	return nil
}
