package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "gloss dev\ncommit: unknown\nbuilt: unknown", String())
}
