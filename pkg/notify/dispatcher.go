package notify

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/google/uuid"

	"github.com/communityportal/notifier/pkg/domain"
)

// reasons reported when a run does not send anything
const (
	SkipNotScheduled  = "not scheduled"
	SkipNoContent     = "no new content"
	SkipNoSubscribers = "no subscribers"
	SkipNoTransport   = "mail transport not configured"
)

// RunResult summarizes a single dispatch run
type RunResult struct {
	RunID         string `json:"runId"`
	SentGroups    int    `json:"sentGroups"`
	FailedGroups  int    `json:"failedGroups"`
	NotifiedItems int    `json:"notifiedItems"`
	SkippedReason string `json:"skippedReason,omitempty"`
}

// Status returns a short human readable outcome
func (r RunResult) Status() string {
	if r.SkippedReason != "" {
		return r.SkippedReason
	}
	if r.SentGroups == 0 {
		return fmt.Sprintf("no digests sent, %d groups failed", r.FailedGroups)
	}
	return fmt.Sprintf("sent %d digests, %d items notified", r.SentGroups, r.NotifiedItems)
}

// Dispatcher runs periodic digests: collects new content, groups subscribers,
// sends one digest per group and marks the delivered items as notified.
type Dispatcher struct {
	store     Store
	mailer    Mailer
	composer  *Composer
	collector *Collector
	location  *time.Location
	now       func() time.Time
}

// DispatcherParams defines dispatcher dependencies. Mailer may be nil, runs are skipped then.
type DispatcherParams struct {
	Store    Store
	Mailer   Mailer
	Composer *Composer
	Location *time.Location   // timezone deciding what "today" is, UTC by default
	Now      func() time.Time // time.Now by default
}

// NewDispatcher makes a dispatcher
func NewDispatcher(p DispatcherParams) *Dispatcher {
	if p.Now == nil {
		p.Now = time.Now
	}
	if p.Location == nil {
		p.Location = time.UTC
	}
	return &Dispatcher{
		store:     p.Store,
		mailer:    p.Mailer,
		composer:  p.Composer,
		collector: NewCollector(p.Store, p.Now),
		location:  p.Location,
		now:       p.Now,
	}
}

// Run performs one digest run. Groups are processed one by one, a failure to send or mark
// one group is logged and doesn't stop the others. LastSentAt is updated only if at least
// one group succeeded. Errors are returned only for failures affecting the whole run.
func (d *Dispatcher) Run(ctx context.Context, forced bool) (RunResult, error) {
	res := RunResult{RunID: uuid.New().String()[:8]}
	now := d.now()

	if d.mailer == nil {
		lgr.Printf("[WARN] run %s skipped, %s", res.RunID, SkipNoTransport)
		res.SkippedReason = SkipNoTransport
		return res, nil
	}

	settings, err := d.store.GetNotificationSettings(ctx)
	if err != nil {
		return res, fmt.Errorf("load notification settings: %w", err)
	}
	settings = settings.Normalize()

	if !ShouldRunToday(settings, now.In(d.location), forced) {
		lgr.Printf("[DEBUG] run %s skipped, frequency %s, forced %v", res.RunID, settings.Frequency, forced)
		res.SkippedReason = SkipNotScheduled
		return res, nil
	}

	collection, err := d.collector.CollectUnnotified(ctx)
	if err != nil {
		return res, fmt.Errorf("collect content: %w", err)
	}
	if collection.Empty() {
		lgr.Printf("[INFO] run %s, no new content", res.RunID)
		res.SkippedReason = SkipNoContent
		return res, nil
	}

	subscribers, err := d.store.GetNewsletterSubscribers(ctx)
	if err != nil {
		return res, fmt.Errorf("load subscribers: %w", err)
	}
	groups := GroupSubscribers(subscribers)
	if len(groups) == 0 {
		lgr.Printf("[INFO] run %s, %d new items but no subscribers", res.RunID, len(collection.Items))
		res.SkippedReason = SkipNoSubscribers
		return res, nil
	}

	lgr.Printf("[INFO] run %s started, %d new items, %d audience groups, frequency %s, forced %v",
		res.RunID, len(collection.Items), len(groups), settings.Frequency, forced)

	notified := make(map[domain.ContentRef]bool)
	for _, key := range slices.Sorted(maps.Keys(groups)) {
		group := groups[key]
		items := collection.ForCategories(group.Categories)
		if len(items) == 0 {
			lgr.Printf("[DEBUG] run %s, nothing new for group [%s]", res.RunID, key)
			continue
		}

		if err := d.dispatchGroup(ctx, group, items); err != nil {
			lgr.Printf("[WARN] run %s, group [%s] with %d subscribers failed: %v",
				res.RunID, key, len(group.Subscribers), err)
			res.FailedGroups++
			continue
		}

		res.SentGroups++
		for _, item := range items {
			notified[item.Ref()] = true
		}
		lgr.Printf("[DEBUG] run %s, sent %d items to group [%s], %d subscribers",
			res.RunID, len(items), key, len(group.Subscribers))
	}
	res.NotifiedItems = len(notified)

	if res.SentGroups > 0 {
		settings.LastSentAt = &now
		if err := d.store.SaveNotificationSettings(ctx, settings); err != nil {
			return res, fmt.Errorf("save last sent time: %w", err)
		}
	}

	lgr.Printf("[INFO] run %s completed, %s", res.RunID, res.Status())
	return res, nil
}

// dispatchGroup composes and sends a digest to one group, then marks its items in one batch
func (d *Dispatcher) dispatchGroup(ctx context.Context, group AudienceGroup, items []domain.ContentItem) error {
	body, err := d.composer.Compose(items)
	if err != nil {
		return fmt.Errorf("compose: %w", err)
	}

	email := domain.Email{Bcc: group.Emails(), Subject: d.composer.DigestSubject(), HTML: body}
	if err := d.mailer.Send(ctx, email); err != nil {
		return fmt.Errorf("send: %w", err)
	}

	refs := make([]domain.ContentRef, len(items))
	for i, item := range items {
		refs[i] = item.Ref()
	}
	if err := d.store.MarkNotified(ctx, refs); err != nil {
		return fmt.Errorf("mark %d items notified: %w", len(refs), err)
	}
	return nil
}
