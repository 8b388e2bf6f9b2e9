package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"tourney-hub/internal/domain"
	"tourney-hub/internal/repository"
)

// TournamentRepository persists tournaments in the "tournaments" collection.
type TournamentRepository struct {
	coll *mongo.Collection
}

func NewTournamentRepository(db *mongo.Database) *TournamentRepository {
	return &TournamentRepository{coll: db.Collection("tournaments")}
}

func (r *TournamentRepository) Create(ctx context.Context, tournament *domain.Tournament) error {
	if tournament.CreatedAt.IsZero() {
		tournament.CreatedAt = time.Now().UTC()
	}

	if _, err := r.coll.InsertOne(ctx, tournament); err != nil {
		return fmt.Errorf("insert tournament: %w", err)
	}
	return nil
}

func (r *TournamentRepository) Get(ctx context.Context, id string) (*domain.Tournament, error) {
	var tournament domain.Tournament
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&tournament); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("find tournament: %w", err)
	}
	return &tournament, nil
}

// List returns all tournaments in store-native order.
func (r *TournamentRepository) List(ctx context.Context) ([]domain.Tournament, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list tournaments: %w", err)
	}

	var tournaments []domain.Tournament
	if err := cursor.All(ctx, &tournaments); err != nil {
		return nil, fmt.Errorf("decode tournaments: %w", err)
	}
	return tournaments, nil
}

// AddParticipant appends userID via $addToSet so concurrent joins against
// the same tournament cannot lose each other's writes and duplicates
// cannot be introduced.
func (r *TournamentRepository) AddParticipant(ctx context.Context, id, userID string) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$addToSet": bson.M{"participants": userID}},
	)
	if err != nil {
		return fmt.Errorf("add participant: %w", err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
