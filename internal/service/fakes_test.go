package service

import (
	"context"
	"errors"
	"sync"

	"tourney-hub/internal/domain"
	"tourney-hub/internal/repository"
)

// fakeUserRepository is an in-memory UserRepository with a unique email key.
type fakeUserRepository struct {
	mu    sync.Mutex
	users map[string]domain.User // keyed by id
	err   error                  // forced failure when set
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: map[string]domain.User{}}
}

func (r *fakeUserRepository) Init(ctx context.Context) error { return nil }

func (r *fakeUserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for _, user := range r.users {
		if user.Email == email {
			copied := user
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := user
	return &copied, nil
}

// fakeTournamentRepository is an in-memory TournamentRepository preserving
// insertion order for List.
type fakeTournamentRepository struct {
	mu          sync.Mutex
	tournaments map[string]*domain.Tournament
	order       []string
	err         error
}

func newFakeTournamentRepository() *fakeTournamentRepository {
	return &fakeTournamentRepository{tournaments: map[string]*domain.Tournament{}}
}

func (r *fakeTournamentRepository) Create(ctx context.Context, tournament *domain.Tournament) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	copied := *tournament
	copied.Participants = append([]string(nil), tournament.Participants...)
	r.tournaments[tournament.ID] = &copied
	r.order = append(r.order, tournament.ID)
	return nil
}

func (r *fakeTournamentRepository) Get(ctx context.Context, id string) (*domain.Tournament, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	tournament, ok := r.tournaments[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *tournament
	copied.Participants = append([]string(nil), tournament.Participants...)
	return &copied, nil
}

func (r *fakeTournamentRepository) List(ctx context.Context) ([]domain.Tournament, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	out := make([]domain.Tournament, 0, len(r.order))
	for _, id := range r.order {
		tournament := r.tournaments[id]
		copied := *tournament
		copied.Participants = append([]string(nil), tournament.Participants...)
		out = append(out, copied)
	}
	return out, nil
}

func (r *fakeTournamentRepository) AddParticipant(ctx context.Context, id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	tournament, ok := r.tournaments[id]
	if !ok {
		return repository.ErrNotFound
	}
	if !tournament.HasParticipant(userID) {
		tournament.Participants = append(tournament.Participants, userID)
	}
	return nil
}

// fakeSubscriberRepository is an in-memory SubscriberRepository with a
// unique email key.
type fakeSubscriberRepository struct {
	mu     sync.Mutex
	emails map[string]struct{}
	err    error
}

func newFakeSubscriberRepository() *fakeSubscriberRepository {
	return &fakeSubscriberRepository{emails: map[string]struct{}{}}
}

func (r *fakeSubscriberRepository) Init(ctx context.Context) error { return nil }

func (r *fakeSubscriberRepository) Create(ctx context.Context, subscriber *domain.Subscriber) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	if _, ok := r.emails[subscriber.Email]; ok {
		return repository.ErrDuplicate
	}
	r.emails[subscriber.Email] = struct{}{}
	return nil
}

var errStoreDown = errors.New("store unreachable")
