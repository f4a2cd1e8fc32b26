package migrations

import (
	"io/fs"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsEmbedded(t *testing.T) {
	names, err := fs.Glob(Migrations, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, names)

	for _, name := range names {
		b, err := fs.ReadFile(Migrations, name)
		require.NoError(t, err)
		body := string(b)
		assert.Contains(t, body, "-- +goose Up", name)
		assert.Contains(t, body, "-- +goose Down", name)
	}
}

func TestInitCreatesUniqueKeys(t *testing.T) {
	b, err := fs.ReadFile(Migrations, "00001_init.sql")
	require.NoError(t, err)
	body := string(b)

	assert.Regexp(t, regexp.MustCompile(`email\s+TEXT NOT NULL UNIQUE`), body)
	assert.Contains(t, body, "UNIQUE (game_id, user_id)")
	assert.Contains(t, body, "token_hash TEXT PRIMARY KEY")
}
