package registry

import (
	"testing"

	"github.com/nfrund/resumio/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type greeter interface{ Greet() string }

type english struct{}

func (english) Greet() string { return "hello" }

func testConfig(t *testing.T) config.Provider {
	t.Helper()
	cfg, err := config.FromEnv(func(string) string { return "" })
	require.NoError(t, err)
	return cfg
}

func TestSetGet(t *testing.T) {
	reg := New(testConfig(t))
	defer reg.Shutdown()

	key := Key[greeter]("test.greeter")
	_, ok := Get(reg, key)
	assert.False(t, ok)

	Set[greeter](reg, key, english{})
	g, ok := Get(reg, key)
	require.True(t, ok)
	assert.Equal(t, "hello", g.Greet())
}

func TestSetReplaces(t *testing.T) {
	reg := New(testConfig(t))
	key := Key[int]("test.count")
	Set(reg, key, 1)
	Set(reg, key, 2)
	assert.Equal(t, 2, MustGet(reg, key))
}

func TestConfigIsRegistered(t *testing.T) {
	cfg := testConfig(t)
	reg := New(cfg)
	assert.Same(t, cfg, reg.Config())
	assert.Same(t, cfg, MustGet(reg, ConfigKey))
}

func TestMustGetPanics(t *testing.T) {
	reg := New(testConfig(t))
	assert.Panics(t, func() { MustGet(reg, Key[string]("missing")) })
}
