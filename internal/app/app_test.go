package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRun_Scenario(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	err := Run(context.Background(), zap.New(core), &Config{
		CustomerName:    "John Doe",
		CustomerBalance: "1000",
	})
	require.NoError(t, err)

	var messages []string
	for _, e := range logs.All() {
		messages = append(messages, e.Message)
	}
	assert.Contains(t, messages, "Added to cart")
	assert.Contains(t, messages, "Shipment dispatched")
	assert.Contains(t, messages, "Checkout complete")
}

func TestRun_InsufficientBalance(t *testing.T) {
	err := Run(context.Background(), zap.NewNop(), &Config{
		CustomerName:    "John Doe",
		CustomerBalance: "50",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "checkout")
}

func TestRun_BadBalance(t *testing.T) {
	err := Run(context.Background(), zap.NewNop(), &Config{
		CustomerName:    "John Doe",
		CustomerBalance: "not-a-number",
	})
	require.Error(t, err)
}
