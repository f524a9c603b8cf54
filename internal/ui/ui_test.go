package ui

import (
	"context"
	"testing"
	"time"

	"github.com/Cyclone1070/termsearch/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestApplyConfig_DeliversToChannel(t *testing.T) {
	env := newTestEnv(t)
	ui := NewUI(context.Background(), env.channels, env.deps())
	cfg := config.DefaultConfig()

	err := ui.ApplyConfig(context.Background(), cfg)
	assert.NoError(t, err)

	select {
	case got := <-env.channels.ConfigChan:
		assert.Same(t, cfg, got)
	case <-time.After(100 * time.Millisecond):
		t.Fatal("Timeout waiting for config")
	}
}

func TestApplyConfig_ContextCancelled(t *testing.T) {
	env := newTestEnv(t)
	ui := NewUI(context.Background(), env.channels, env.deps())

	// Fill the buffer so the next send blocks.
	env.channels.ConfigChan <- config.DefaultConfig()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := ui.ApplyConfig(ctx, config.DefaultConfig())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReady_ReturnsChannel(t *testing.T) {
	env := newTestEnv(t)
	ui := NewUI(context.Background(), env.channels, env.deps())
	assert.NotNil(t, ui.Ready())
}

func TestListenForConfig(t *testing.T) {
	assert.Nil(t, listenForConfig(nil))

	ch := make(chan *config.Config, 1)
	cfg := config.DefaultConfig()
	ch <- cfg
	msg := listenForConfig(ch)()
	assert.Equal(t, configReloadedMsg{cfg: cfg}, msg)

	close(ch)
	assert.Nil(t, listenForConfig(ch)())
}
