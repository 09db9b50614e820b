// Package notify implements the portal's notification core: the cadence gate for periodic digests,
// collection of not yet announced content, grouping of subscribers by their interest set,
// digest composition and the dispatch run tying them together. Instant single-item notifications
// share the same store, composer and mail transport.
package notify

import (
	"context"
	"errors"
	"time"

	"github.com/communityportal/notifier/pkg/domain"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/mailer.go -pkg mocks -skip-ensure -fmt goimports . Mailer

var (
	// ErrMissingCategory is returned for items without an interest category
	ErrMissingCategory = errors.New("item has no category")
	// ErrInvalidRequest is returned for malformed notification requests
	ErrInvalidRequest = errors.New("invalid request")
	// ErrNoTransport is returned when no mail transport is configured
	ErrNoTransport = errors.New("mail transport not configured")
)

// ContentStore provides access to services and events
type ContentStore interface {
	FindUnnotifiedApprovedServices(ctx context.Context) ([]domain.ContentItem, error)
	FindFuturePublishedEvents(ctx context.Context, now time.Time) ([]domain.ContentItem, error)
	GetContentItem(ctx context.Context, ref domain.ContentRef) (*domain.ContentItem, error)
	MarkNotified(ctx context.Context, refs []domain.ContentRef) error
}

// SubscriberStore provides access to newsletter subscribers
type SubscriberStore interface {
	GetNewsletterSubscribers(ctx context.Context) ([]domain.Subscriber, error)
	FindSubscribersByCategory(ctx context.Context, category domain.Category) ([]domain.Subscriber, error)
}

// SettingsStore provides access to the notification settings singleton
type SettingsStore interface {
	GetNotificationSettings(ctx context.Context) (domain.NotificationSettings, error)
	SaveNotificationSettings(ctx context.Context, settings domain.NotificationSettings) error
}

// Store combines everything the dispatcher and instant notifier read and write
type Store interface {
	ContentStore
	SubscriberStore
	SettingsStore
}

// Mailer sends composed emails
type Mailer interface {
	Send(ctx context.Context, email domain.Email) error
}
