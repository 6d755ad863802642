package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixed(t *testing.T) {
	at := time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC)
	c := &Fixed{At: at}
	assert.Equal(t, at, c.Now())

	c.Set(at.AddDate(0, 1, 0))
	assert.Equal(t, time.April, c.Now().Month())
}

func TestSystem(t *testing.T) {
	before := time.Now()
	now := System{}.Now()
	assert.False(t, now.Before(before))
}
