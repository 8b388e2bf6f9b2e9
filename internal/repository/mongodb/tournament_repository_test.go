package mongodb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"tourney-hub/internal/domain"
	"tourney-hub/internal/repository"
)

func TestTournamentRepository_Create(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("inserts tournament document", func(mt *mtest.T) {
		repo := NewTournamentRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		err := repo.Create(context.Background(), &domain.Tournament{
			ID:           "t1",
			Name:         "Cup",
			Description:  "desc",
			OwnerID:      "u1",
			Participants: []string{"u1"},
		})
		assert.NoError(t, err)
	})
}

func TestTournamentRepository_Get(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("decodes existing tournament", func(mt *mtest.T) {
		repo := NewTournamentRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(1, "tourney.tournaments", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "t1"},
			{Key: "name", Value: "Cup"},
			{Key: "owner_id", Value: "u1"},
			{Key: "participants", Value: bson.A{"u1", "u2"}},
		}))

		tournament, err := repo.Get(context.Background(), "t1")
		require.NoError(t, err)
		assert.Equal(t, "t1", tournament.ID)
		assert.Equal(t, "Cup", tournament.Name)
		assert.Equal(t, []string{"u1", "u2"}, tournament.Participants)
	})

	mt.Run("unknown id yields ErrNotFound", func(mt *mtest.T) {
		repo := NewTournamentRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "tourney.tournaments", mtest.FirstBatch))

		_, err := repo.Get(context.Background(), "missing")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestTournamentRepository_List(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns documents in cursor order", func(mt *mtest.T) {
		repo := NewTournamentRepository(mt.DB)
		first := mtest.CreateCursorResponse(1, "tourney.tournaments", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "t1"},
			{Key: "name", Value: "Cup"},
		})
		second := mtest.CreateCursorResponse(1, "tourney.tournaments", mtest.NextBatch, bson.D{
			{Key: "_id", Value: "t2"},
			{Key: "name", Value: "Open"},
		})
		killCursors := mtest.CreateCursorResponse(0, "tourney.tournaments", mtest.NextBatch)
		mt.AddMockResponses(first, second, killCursors)

		tournaments, err := repo.List(context.Background())
		require.NoError(t, err)
		require.Len(t, tournaments, 2)
		assert.Equal(t, "t1", tournaments[0].ID)
		assert.Equal(t, "t2", tournaments[1].ID)
	})
}

func TestTournamentRepository_AddParticipant(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("matched document succeeds", func(mt *mtest.T) {
		repo := NewTournamentRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		err := repo.AddParticipant(context.Background(), "t1", "u2")
		assert.NoError(t, err)
	})

	mt.Run("already a member still succeeds", func(mt *mtest.T) {
		repo := NewTournamentRepository(mt.DB)
		// $addToSet matches but modifies nothing.
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 0},
		))

		err := repo.AddParticipant(context.Background(), "t1", "u2")
		assert.NoError(t, err)
	})

	mt.Run("unknown id yields ErrNotFound", func(mt *mtest.T) {
		repo := NewTournamentRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		err := repo.AddParticipant(context.Background(), "missing", "u2")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}
