package constants

// Firestore collection names
const (
	CollectionUsers    = "users"
	CollectionProducts = "products"
)

// Marketplace event types
const (
	EventVerificationSubmitted = "seller.verification_submitted"
	EventProductCreated        = "product.created"
)

// Session cookie claims
const (
	SessionTokenIssuer = "pixorva"
)

// Event publisher providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderKafka  = "kafka"
)
