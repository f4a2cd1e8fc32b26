package users

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

func TestMongoRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		u, err := repo.Create(context.Background(), &models.User{Email: "a@b.com", UserName: "x", PasswordHash: "h"})
		require.NoError(mt, err)
		assert.Len(mt, u.ID, 24)
		assert.Equal(mt, "h", u.PasswordHash)
	})

	mt.Run("create duplicate", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		_, err := repo.Create(context.Background(), &models.User{Email: "a@b.com"})
		assert.ErrorIs(mt, err, common.ErrorAlreadyExists)
	})

	mt.Run("get by email", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.DB)
		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(1, "db.users", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: oid},
			{Key: "email", Value: "a@b.com"},
			{Key: "userName", Value: "x"},
			{Key: "password", Value: "h"},
			{Key: "createdAt", Value: time.Now()},
		}))

		u, err := repo.GetByEmail(context.Background(), "a@b.com")
		require.NoError(mt, err)
		assert.Equal(mt, oid.Hex(), u.ID)
		assert.Equal(mt, "x", u.UserName)
		assert.Equal(mt, "h", u.PasswordHash)
	})

	mt.Run("get by id not found", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.users", mtest.FirstBatch))

		_, err := repo.GetByID(context.Background(), primitive.NewObjectID().Hex())
		assert.ErrorIs(mt, err, common.ErrorNotFound)
	})

	mt.Run("get by malformed id", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.DB)

		_, err := repo.GetByID(context.Background(), "1")
		assert.ErrorIs(mt, err, common.ErrorNotFound)
	})
}
