package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONStringArrayValue(t *testing.T) {
	v, err := JSONStringArray{"a", "b"}.Value()
	require.NoError(t, err)
	assert.JSONEq(t, `["a","b"]`, string(v.([]byte)))

	v, err = JSONStringArray(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)
}

func TestJSONStringArrayScan(t *testing.T) {
	var a JSONStringArray
	require.NoError(t, a.Scan([]byte(`["x","y"]`)))
	assert.Equal(t, JSONStringArray{"x", "y"}, a)

	require.NoError(t, a.Scan(`["z"]`))
	assert.Equal(t, JSONStringArray{"z"}, a)

	require.NoError(t, a.Scan(nil))
	assert.Empty(t, a)
}
