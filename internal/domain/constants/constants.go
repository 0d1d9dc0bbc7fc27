// Package constants holds values shared between configuration and the layers reading it.
package constants

// Values of env.env.
const (
	EnvLocal      = "local"
	EnvProduction = "production"
)

// Values of pubsub.provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
