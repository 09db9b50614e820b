package notify

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/communityportal/notifier/pkg/domain"
)

// Collection is the set of content not announced yet
type Collection struct {
	Items      []domain.ContentItem
	ByCategory map[domain.Category][]domain.ContentItem
}

// Empty reports whether there is nothing new at all, uncategorized items included
func (c Collection) Empty() bool {
	return len(c.Items) == 0
}

// ForCategories returns categorized items matching any of cats, in collection order
func (c Collection) ForCategories(cats []domain.Category) []domain.ContentItem {
	canon := domain.CanonicalCategories(cats)
	var res []domain.ContentItem
	for _, item := range c.Items {
		if cat := item.Category.Canonical(); cat != "" && slices.Contains(canon, cat) {
			res = append(res, item)
		}
	}
	return res
}

// Collector gathers unnotified services and future events
type Collector struct {
	store ContentStore
	now   func() time.Time
}

// NewCollector makes a collector, now defaults to time.Now
func NewCollector(store ContentStore, now func() time.Time) *Collector {
	if now == nil {
		now = time.Now
	}
	return &Collector{store: store, now: now}
}

// CollectUnnotified returns approved services and published future events with isNotified unset.
// Services go first, then events. Store errors are returned as is, no partial result.
func (c *Collector) CollectUnnotified(ctx context.Context) (Collection, error) {
	services, err := c.store.FindUnnotifiedApprovedServices(ctx)
	if err != nil {
		return Collection{}, fmt.Errorf("collect services: %w", err)
	}

	events, err := c.store.FindFuturePublishedEvents(ctx, c.now())
	if err != nil {
		return Collection{}, fmt.Errorf("collect events: %w", err)
	}

	res := Collection{
		Items:      make([]domain.ContentItem, 0, len(services)+len(events)),
		ByCategory: make(map[domain.Category][]domain.ContentItem),
	}
	res.Items = append(res.Items, services...)
	res.Items = append(res.Items, events...)
	for i := range res.Items {
		res.Items[i].Category = res.Items[i].Category.Canonical()
	}
	for _, item := range res.Items {
		if item.Category == "" {
			continue
		}
		res.ByCategory[item.Category] = append(res.ByCategory[item.Category], item)
	}
	return res, nil
}
