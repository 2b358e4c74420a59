package mongo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nwchen/chathub/internal/domain"
)

func TestParseID(t *testing.T) {
	t.Run("valid object id", func(t *testing.T) {
		oid := primitive.NewObjectID()

		got, err := ParseID(oid.Hex())
		assert.NoError(t, err)
		assert.Equal(t, oid, got)
	})

	t.Run("malformed id reports ErrInvalidID, not ErrNotFound", func(t *testing.T) {
		for _, id := range []string{"", "abc", "not-a-hex-object-id", "65a1b2c3d4e5f60718293a4"} {
			_, err := ParseID(id)
			assert.ErrorIs(t, err, domain.ErrInvalidID, "id %q", id)
			assert.NotErrorIs(t, err, domain.ErrNotFound)
		}
	})
}

func TestFindOptions(t *testing.T) {
	t.Run("empty projection returns full documents", func(t *testing.T) {
		opts := findOptions(nil)
		assert.Nil(t, opts.Projection)
	})

	t.Run("summary projection names the listed fields", func(t *testing.T) {
		opts := findOptions(domain.SummaryProjection)

		proj, ok := opts.Projection.(bson.D)
		assert.True(t, ok)
		assert.Equal(t, bson.D{
			{Key: "user", Value: 1},
			{Key: "title", Value: 1},
			{Key: "createdAt", Value: 1},
		}, proj)
	})
}

func TestSessionDocToDomain(t *testing.T) {
	oid := primitive.NewObjectID()
	created := time.Now().UTC().Truncate(time.Millisecond)

	doc := sessionDoc{
		ID:        oid,
		User:      "u1",
		Title:     "chat",
		Messages:  []string{"a", "b"},
		CreatedAt: created,
	}

	session := doc.toDomain()
	assert.Equal(t, oid.Hex(), session.ID)
	assert.Equal(t, "u1", session.User)
	assert.Equal(t, "chat", session.Title)
	assert.Equal(t, []string{"a", "b"}, session.Messages)
	assert.Equal(t, created, session.CreatedAt)
}
