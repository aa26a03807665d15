package canvas

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "dot", Dot.String())
	assert.Equal(t, "count", Count.String())
	assert.Equal(t, "unknown", Mode(7).String())
	assert.Equal(t, Dot, Mode(0), "the zero Mode must be the default")
}
