package repository

import (
	"context"

	"tourney-hub/internal/domain"
)

// SubscriberRepository defines persistence operations for newsletter signups.
type SubscriberRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, subscriber *domain.Subscriber) error
}
