package service

import (
	"context"
	"time"
)

// MarketplaceEvent is published after a submission workflow commits
type MarketplaceEvent struct {
	EventID    string            `json:"event_id"`
	Type       string            `json:"type"`
	RequestID  string            `json:"request_id,omitempty"` // For distributed tracing
	SubjectID  string            `json:"subject_id"`           // Principal id
	ResourceID string            `json:"resource_id,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishMarketplaceEvent publishes a marketplace event for downstream consumers
	PublishMarketplaceEvent(ctx context.Context, event *MarketplaceEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
