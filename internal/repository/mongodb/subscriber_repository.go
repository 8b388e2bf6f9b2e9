package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tourney-hub/internal/domain"
	"tourney-hub/internal/repository"
)

// SubscriberRepository persists newsletter signups in the "subscribers"
// collection, keyed by a unique index on email.
type SubscriberRepository struct {
	coll *mongo.Collection
}

func NewSubscriberRepository(db *mongo.Database) *SubscriberRepository {
	return &SubscriberRepository{coll: db.Collection("subscribers")}
}

// Init ensures the unique email index exists.
func (r *SubscriberRepository) Init(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create subscribers email index: %w", err)
	}
	return nil
}

func (r *SubscriberRepository) Create(ctx context.Context, subscriber *domain.Subscriber) error {
	if subscriber.CreatedAt.IsZero() {
		subscriber.CreatedAt = time.Now().UTC()
	}

	if _, err := r.coll.InsertOne(ctx, subscriber); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicate
		}
		return fmt.Errorf("insert subscriber: %w", err)
	}
	return nil
}
