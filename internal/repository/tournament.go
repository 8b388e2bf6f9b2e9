package repository

import (
	"context"

	"tourney-hub/internal/domain"
)

// TournamentRepository defines persistence operations for Tournament entities.
type TournamentRepository interface {
	Create(ctx context.Context, tournament *domain.Tournament) error
	Get(ctx context.Context, id string) (*domain.Tournament, error)
	List(ctx context.Context) ([]domain.Tournament, error)
	// AddParticipant appends userID to the tournament's participant set
	// atomically at the document level; adding an existing participant is
	// a no-op. Returns ErrNotFound for an unknown tournament id.
	AddParticipant(ctx context.Context, id, userID string) error
}
