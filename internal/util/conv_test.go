package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRate(t *testing.T) {
	assert.Equal(t, 0.0, Rate(0, 0))
	assert.Equal(t, 0.0, Rate(5, 0))
	assert.Equal(t, 50.0, Rate(1, 2))
	assert.Equal(t, 66.7, Rate(2, 3))
	assert.Equal(t, 100.0, Rate(3, 3))
	assert.Equal(t, 33.3, Rate(1, 3))
}

func TestMustParseUint(t *testing.T) {
	assert.Equal(t, uint(7), MustParseUint("7"))
	assert.Equal(t, uint(0), MustParseUint(""))
	assert.Equal(t, uint(0), MustParseUint("abc"))
	assert.Equal(t, uint(0), MustParseUint("-3"))
}
