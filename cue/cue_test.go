package cue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayer_DisabledNeverOpensDevice(t *testing.T) {
	p := NewPlayer(false)
	p.Shown()
	p.Hidden()

	assert.False(t, p.speakerOK)
	assert.NoError(t, p.speakerErr)
}

func TestPlayer_TonesNeverRunOnCaller(t *testing.T) {
	p := NewPlayer(true)
	var queued []func()
	p.start = func(fn func()) { queued = append(queued, fn) }

	p.Shown()
	p.Hidden()

	assert.Len(t, queued, 2)
	assert.False(t, p.speakerOK)
	assert.NoError(t, p.speakerErr)
}
