package notify

import (
	"context"
	"fmt"

	"github.com/go-pkgz/lgr"

	"github.com/communityportal/notifier/pkg/domain"
)

// StatusNoSubscribers is reported when nobody follows the item's category
const StatusNoSubscribers = "no subscribed users"

// InstantResult summarizes a single-item notification
type InstantResult struct {
	Recipients int    `json:"recipients"`
	Status     string `json:"status"`
}

// InstantNotifier sends one email about a freshly created item, bypassing the digest schedule
type InstantNotifier struct {
	store    Store
	mailer   Mailer
	composer *Composer
}

// NewInstantNotifier makes an instant notifier, mailer may be nil
func NewInstantNotifier(store Store, mailer Mailer, composer *Composer) *InstantNotifier {
	return &InstantNotifier{store: store, mailer: mailer, composer: composer}
}

// NotifyInstant sends the item to every opted-in subscriber following its category and marks it
// notified. Any overlap of the subscriber's categories with the item's qualifies.
// Returns domain.ErrNotFound, ErrMissingCategory or ErrInvalidRequest for bad input. No retries.
func (n *InstantNotifier) NotifyInstant(ctx context.Context, itemID int64, itemType domain.ContentType) (InstantResult, error) {
	if itemID <= 0 {
		return InstantResult{}, fmt.Errorf("item id %d: %w", itemID, ErrInvalidRequest)
	}
	if _, err := domain.ParseContentType(string(itemType)); err != nil {
		return InstantResult{}, fmt.Errorf("%v: %w", err, ErrInvalidRequest)
	}

	ref := domain.ContentRef{ID: itemID, Type: itemType}
	item, err := n.store.GetContentItem(ctx, ref)
	if err != nil {
		return InstantResult{}, fmt.Errorf("load %s %d: %w", itemType, itemID, err)
	}
	cat := item.Category.Canonical()
	if cat == "" {
		return InstantResult{}, fmt.Errorf("%s %d: %w", itemType, itemID, ErrMissingCategory)
	}

	subs, err := n.store.FindSubscribersByCategory(ctx, cat)
	if err != nil {
		return InstantResult{}, fmt.Errorf("load subscribers: %w", err)
	}
	emails := make([]string, 0, len(subs))
	for _, s := range subs {
		if s.Eligible() && s.Wants(cat) {
			emails = append(emails, s.Email)
		}
	}
	if len(emails) == 0 {
		lgr.Printf("[INFO] no subscribers for %s %d in %s", itemType, itemID, cat)
		return InstantResult{Status: StatusNoSubscribers}, nil
	}

	if n.mailer == nil {
		return InstantResult{}, ErrNoTransport
	}

	body, err := n.composer.ComposeInstant(*item)
	if err != nil {
		return InstantResult{}, fmt.Errorf("compose: %w", err)
	}
	email := domain.Email{Bcc: emails, Subject: n.composer.InstantSubject(*item), HTML: body}
	if err := n.mailer.Send(ctx, email); err != nil {
		return InstantResult{}, fmt.Errorf("send %s %d: %w", itemType, itemID, err)
	}

	if err := n.store.MarkNotified(ctx, []domain.ContentRef{ref}); err != nil {
		return InstantResult{}, fmt.Errorf("mark %s %d notified: %w", itemType, itemID, err)
	}

	lgr.Printf("[INFO] instant notification for %s %d sent to %d subscribers", itemType, itemID, len(emails))
	return InstantResult{Recipients: len(emails), Status: "sent"}, nil
}
