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

// ErrTournamentNotFound is returned for operations on an unknown tournament id.
var ErrTournamentNotFound = errors.New("tournament not found")

// TournamentDetails is a tournament with its owner and participant
// references resolved to display emails.
type TournamentDetails struct {
	domain.Tournament
	OwnerEmail        string
	ParticipantEmails []string
}

// TournamentService coordinates the tournament lifecycle and the
// participant-set mutation rule.
type TournamentService interface {
	Create(ctx context.Context, name, description, ownerID string) (*TournamentDetails, error)
	List(ctx context.Context) ([]TournamentDetails, error)
	Join(ctx context.Context, id, userID string) (*TournamentDetails, error)
}

type tournamentService struct {
	tournaments repository.TournamentRepository
	users       repository.UserRepository
}

func NewTournamentService(tournaments repository.TournamentRepository, users repository.UserRepository) TournamentService {
	return &tournamentService{
		tournaments: tournaments,
		users:       users,
	}
}

// Create builds a new tournament owned by ownerID, who becomes the first
// participant.
func (s *tournamentService) Create(ctx context.Context, name, description, ownerID string) (*TournamentDetails, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}

	tournament := &domain.Tournament{
		ID:           uuid.NewString(),
		Name:         name,
		Description:  description,
		OwnerID:      ownerID,
		Participants: []string{ownerID},
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.tournaments.Create(ctx, tournament); err != nil {
		return nil, err
	}

	return s.resolve(ctx, tournament, map[string]string{})
}

// List returns all tournaments in store-native order.
func (s *tournamentService) List(ctx context.Context) ([]TournamentDetails, error) {
	tournaments, err := s.tournaments.List(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]TournamentDetails, 0, len(tournaments))
	emails := map[string]string{}
	for i := range tournaments {
		d, err := s.resolve(ctx, &tournaments[i], emails)
		if err != nil {
			return nil, err
		}
		details = append(details, *d)
	}
	return details, nil
}

// Join adds userID to the tournament's participant set. Joining twice is a
// no-op: membership is a set, and repeated joins return the same snapshot
// without error.
func (s *tournamentService) Join(ctx context.Context, id, userID string) (*TournamentDetails, error) {
	if err := s.tournaments.AddParticipant(ctx, id, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, err
	}

	tournament, err := s.tournaments.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, err
	}

	return s.resolve(ctx, tournament, map[string]string{})
}

// resolve looks up display emails for the owner and every participant.
// emails caches lookups across calls within a single request.
func (s *tournamentService) resolve(ctx context.Context, tournament *domain.Tournament, emails map[string]string) (*TournamentDetails, error) {
	details := &TournamentDetails{
		Tournament:        *tournament,
		ParticipantEmails: make([]string, 0, len(tournament.Participants)),
	}

	lookup := func(id string) (string, error) {
		if email, ok := emails[id]; ok {
			return email, nil
		}
		user, err := s.users.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				// Dangling reference: show the raw identifier.
				emails[id] = id
				return id, nil
			}
			return "", err
		}
		emails[id] = user.Email
		return user.Email, nil
	}

	ownerEmail, err := lookup(tournament.OwnerID)
	if err != nil {
		return nil, err
	}
	details.OwnerEmail = ownerEmail

	for _, participantID := range tournament.Participants {
		email, err := lookup(participantID)
		if err != nil {
			return nil, err
		}
		details.ParticipantEmails = append(details.ParticipantEmails, email)
	}

	return details, nil
}
