package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGateResolveWhileArmed(t *testing.T) {
	var g gate

	ch := g.arm()
	assert.True(t, g.resolve(true))
	assert.True(t, <-ch)
	g.disarm()
}

func TestGateDropsDecisionWhenIdle(t *testing.T) {
	var g gate
	assert.False(t, g.resolve(true))
	assert.False(t, g.resolve(false))
}

func TestGateFirstAnswerWins(t *testing.T) {
	var g gate

	ch := g.arm()
	assert.True(t, g.resolve(false))
	// the gate is no longer waiting, the late answer is dropped
	assert.False(t, g.resolve(true))
	assert.False(t, <-ch)
	g.disarm()
}

func TestGateRearmsForNextCycle(t *testing.T) {
	var g gate

	ch := g.arm()
	g.resolve(true)
	<-ch
	g.disarm()

	ch = g.arm()
	assert.True(t, g.resolve(false))
	assert.False(t, <-ch)
	g.disarm()
}
