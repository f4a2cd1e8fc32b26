package games

import (
	"context"
	"testing"
	"time"

	"github.com/lfgames/gameslib/internal/common"
	"github.com/lfgames/gameslib/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func gameDoc(user primitive.ObjectID, gameID int64, name string, completed bool) bson.D {
	return bson.D{
		{Key: "_id", Value: primitive.NewObjectID()},
		{Key: "gameId", Value: gameID},
		{Key: "user", Value: user},
		{Key: "name", Value: name},
		{Key: "cover", Value: bson.D{{Key: "url", Value: "//img/" + name}}},
		{Key: "platforms", Value: bson.A{"PC"}},
		{Key: "completed", Value: completed},
		{Key: "createdAt", Value: time.Now()},
	}
}

func TestMongoRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	user := primitive.NewObjectID()

	mt.Run("create", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		g, err := repo.Create(context.Background(), &models.Game{GameID: 1, UserID: user.Hex(), Name: "Celeste", CoverURL: "//img"})
		require.NoError(mt, err)
		assert.Equal(mt, user.Hex(), g.UserID)
		assert.Equal(mt, "//img", g.CoverURL)
		assert.Equal(mt, []string{}, g.Genres)
	})

	mt.Run("create duplicate", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "duplicate key error"}))

		_, err := repo.Create(context.Background(), &models.Game{GameID: 1, UserID: user.Hex()})
		assert.ErrorIs(mt, err, common.ErrorAlreadyExists)
	})

	mt.Run("exists", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(1, "db.games", mtest.FirstBatch, bson.D{{Key: "n", Value: int32(1)}}))

		ok, err := repo.Exists(context.Background(), user.Hex(), 1)
		require.NoError(mt, err)
		assert.True(mt, ok)
	})

	mt.Run("list", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.DB)
		first := mtest.CreateCursorResponse(1, "db.games", mtest.FirstBatch,
			gameDoc(user, 2, "Hades", true), gameDoc(user, 1, "Celeste", false))
		end := mtest.CreateCursorResponse(0, "db.games", mtest.NextBatch)
		mt.AddMockResponses(first, end)

		list, err := repo.ListByUser(context.Background(), user.Hex())
		require.NoError(mt, err)
		require.Len(mt, list, 2)
		assert.Equal(mt, "Hades", list[0].Name)
		assert.Equal(mt, "//img/Hades", list[0].CoverURL)
		assert.Equal(mt, []string{"PC"}, list[0].Platforms)
	})

	mt.Run("set completed", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: gameDoc(user, 1, "Celeste", true)}))

		g, err := repo.SetCompleted(context.Background(), user.Hex(), 1, true)
		require.NoError(mt, err)
		assert.True(mt, g.Completed)
	})

	mt.Run("set completed not found", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		_, err := repo.SetCompleted(context.Background(), user.Hex(), 404, true)
		assert.ErrorIs(mt, err, common.ErrorNotFound)
	})
}
