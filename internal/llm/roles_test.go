package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildMessages(t *testing.T) {
	t.Run("tags every turn as user and preserves order", func(t *testing.T) {
		got := BuildMessages([]string{"first", "second", "third"})

		assert.Len(t, got, 3)
		for i, content := range []string{"first", "second", "third"} {
			assert.Equal(t, RoleUser, got[i].Role)
			assert.Equal(t, content, got[i].Content)
		}
	})

	t.Run("empty transcript maps to an empty slice", func(t *testing.T) {
		assert.Empty(t, BuildMessages(nil))
	})
}
