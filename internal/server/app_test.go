package server

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/picdiary/internal/logging"
	"github.com/dmitrijs2005/picdiary/internal/observe"
	"github.com/dmitrijs2005/picdiary/internal/server/config"
	"github.com/dmitrijs2005/picdiary/internal/server/imagestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_AnyLevel(t *testing.T) {
	for _, lvl := range []string{"debug", "info", "WARN", "error", "nonsense", ""} {
		assert.NotNil(t, NewLogger(lvl), lvl)
	}
}

func TestNewImageStore_Memory(t *testing.T) {
	c := &config.Config{ImageStore: config.ImageStoreMemory}
	s, err := newImageStore(context.Background(), c)
	require.NoError(t, err)
	_, ok := s.(*imagestore.MemoryStore)
	assert.True(t, ok)
}

func TestNewProviders(t *testing.T) {
	c := &config.Config{}
	c.LoadDefaults()
	m := observe.NewCollector("test")

	_, err := newLLM(c, m, logging.Nop())
	assert.Error(t, err, "missing key")

	c.OpenAIAPIKey = "sk-test"
	c.OpenAIBaseURL = "http://127.0.0.1:1"
	p, err := newLLM(c, m, logging.Nop())
	require.NoError(t, err)
	assert.NotNil(t, p)

	_, err = newImageGenerator(c, m, logging.Nop())
	assert.Error(t, err, "missing key")

	c.StabilityAPIKey = "st-test"
	g, err := newImageGenerator(c, m, logging.Nop())
	require.NoError(t, err)
	assert.NotNil(t, g)
}

func TestNewApp_InvalidConfig(t *testing.T) {
	c := &config.Config{}
	c.LoadDefaults()
	c.DeletePolicy = "shuffle"

	_, err := NewApp(context.Background(), c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shuffle")
}
