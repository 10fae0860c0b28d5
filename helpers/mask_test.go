package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskKey(t *testing.T) {
	assert.Equal(t, "Ab****", MaskKey("Ab3dE9"))
	assert.Equal(t, "****", MaskKey("Ab"))
	assert.Equal(t, "****", MaskKey(""))
}
