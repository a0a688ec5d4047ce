package recovery

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrictModeSurfacesErrors(t *testing.T) {
	c := New(Strict)
	cause := errors.New("malformed directory entry")
	err := c.Recover(cause, "directory entry 2")
	require.Error(t, err)
	assert.Same(t, cause, err)
	assert.False(t, c.HasRecoveries())
}

func TestLenientModeRecordsAndSwallows(t *testing.T) {
	c := New(Lenient)
	cause := errors.New("invalid start position")
	err := c.Recover(cause, "directory entry 3")
	require.NoError(t, err)
	require.True(t, c.HasRecoveries())
	assert.Contains(t, c.Messages[0], "directory entry 3")
	assert.Contains(t, c.Messages[0], "invalid start position")
}

func TestPermissiveAllowsOverrun(t *testing.T) {
	assert.True(t, New(Permissive).AllowsOverrun())
	assert.False(t, New(Lenient).AllowsOverrun())
	assert.False(t, New(Strict).AllowsOverrun())
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "strict", Strict.String())
	assert.Equal(t, "lenient", Lenient.String())
	assert.Equal(t, "permissive", Permissive.String())
}
