package peyetribe

import (
	"testing"

	"github.com/Gurux/gxcommon-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModeParse(t *testing.T) {
	for in, want := range map[string]Mode{
		"PULL": ModePull,
		"pull": ModePull,
		"PUSH": ModePush,
		"Push": ModePush,
	} {
		m, err := ModeParse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, m, in)
	}

	_, err := ModeParse("stream")
	assert.ErrorIs(t, err, gxcommon.ErrUnknownEnum)
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "PULL", ModePull.String())
	assert.Equal(t, "PUSH", ModePush.String())
}
