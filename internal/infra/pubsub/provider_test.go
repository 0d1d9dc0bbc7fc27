package pubsub

import (
	"context"
	"testing"

	"haven/config"
	"haven/internal/domain/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenPublisher(t *testing.T) {
	ctx := context.Background()

	t.Run("missing config drops events", func(t *testing.T) {
		publisher, err := openPublisher(ctx, nil, discardLogger())

		require.NoError(t, err)
		assert.IsType(t, &noopPublisher{}, publisher)
	})

	t.Run("empty provider drops events", func(t *testing.T) {
		publisher, err := openPublisher(ctx, &config.PubSubConfig{}, discardLogger())

		require.NoError(t, err)
		assert.IsType(t, &noopPublisher{}, publisher)
	})

	t.Run("local provider posts to the endpoint", func(t *testing.T) {
		publisher, err := openPublisher(ctx, &config.PubSubConfig{
			Provider:      constants.PubSubProviderLocal,
			LocalEndpoint: "http://localhost:8081/push",
		}, discardLogger())

		require.NoError(t, err)
		assert.IsType(t, &localHTTPPublisher{}, publisher)
	})

	t.Run("local provider needs an endpoint", func(t *testing.T) {
		_, err := openPublisher(ctx, &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, discardLogger())

		assert.ErrorContains(t, err, "localEndpoint")
	})

	t.Run("google provider needs a topic", func(t *testing.T) {
		_, err := openPublisher(ctx, &config.PubSubConfig{
			Provider:  constants.PubSubProviderGoogle,
			ProjectID: "haven-dev",
		}, discardLogger())

		assert.ErrorContains(t, err, "topicId")
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := openPublisher(ctx, &config.PubSubConfig{Provider: "kafka"}, discardLogger())

		assert.ErrorContains(t, err, "unknown pubsub provider")
	})
}
