// Package constants holds shared domain-level constants.
package constants

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub provider identifiers, matching the config "pubsub.provider" value.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Marketplace event types published on the event bus.
const (
	EventBidPlaced        = "bid_placed"
	EventBidAccepted      = "bid_accepted"
	EventPaymentCompleted = "payment_completed"
)
