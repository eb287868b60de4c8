package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	assert.Equal(t, 4096, Settings.Solver.SolutionCapacity)
	assert.Equal(t, 64, Settings.Solver.MaxRanks)
	assert.Equal(t, "info", Settings.Log.Level)
}

func TestSetupIdempotent(t *testing.T) {
	initialized = false
	ConfFile = "./does-not-exist.toml"
	Setup()
	Setup()
	assert.True(t, initialized)
	assert.Equal(t, 4096, Settings.Solver.SolutionCapacity)
}

func TestString(t *testing.T) {
	s := Settings.String()
	assert.Contains(t, s, "Solver Config:")
	assert.Contains(t, s, "Log Config:")
}
