package mongox

import (
	"testing"

	"github.com/lfgames/gameslib/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestObjectID(t *testing.T) {
	want := primitive.NewObjectID()

	got, err := ObjectID(want.Hex())
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = ObjectID("1")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
