package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPtr(t *testing.T) {
	s := Ptr("gpt-4o")
	assert.Equal(t, "gpt-4o", *s)

	n := Ptr(3)
	*n = 4
	assert.Equal(t, 4, *n)

	tags := Ptr([]string{})
	assert.NotNil(t, *tags)
	assert.Empty(t, *tags)

	a, b := Ptr(true), Ptr(true)
	assert.NotSame(t, a, b)
}
