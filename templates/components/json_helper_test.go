package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJSON(t *testing.T) {
	assert.Equal(t, `{"decision":"included"}`, JSON(map[string]string{"decision": "included"}))
	assert.Equal(t, "{}", JSON(make(chan int)))
}
