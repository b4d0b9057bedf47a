package types

// RunMode is the mode in which the application process runs
type RunMode string

const (
	// ModeLocal runs the API and the in process effect consumer together
	ModeLocal RunMode = "local"
	// ModeAPI runs only the HTTP API
	ModeAPI RunMode = "api"
	// ModeConsumer runs only the effect consumer
	ModeConsumer RunMode = "consumer"
)

// PubSubBackend selects the message transport for effect dispatch
type PubSubBackend string

const (
	MemoryPubSub PubSubBackend = "memory"
	KafkaPubSub  PubSubBackend = "kafka"
)
