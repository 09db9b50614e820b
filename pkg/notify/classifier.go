package notify

import (
	"strings"

	"github.com/communityportal/notifier/pkg/domain"
)

// groupKeyDelimiter joins categories in a group key, category tags never contain it
const groupKeyDelimiter = ","

// AudienceGroup is a set of subscribers sharing the exact same interest categories
type AudienceGroup struct {
	Key         string
	Categories  []domain.Category
	Subscribers []domain.Subscriber
}

// Emails returns the addresses of all group members
func (g AudienceGroup) Emails() []string {
	res := make([]string, 0, len(g.Subscribers))
	for _, s := range g.Subscribers {
		res = append(res, s.Email)
	}
	return res
}

// GroupKey returns the canonical key of a category set, independent of order and duplicates
func GroupKey(cats []domain.Category) string {
	canon := domain.CanonicalCategories(cats)
	parts := make([]string, len(canon))
	for i, c := range canon {
		parts[i] = string(c)
	}
	return strings.Join(parts, groupKeyDelimiter)
}

// GroupSubscribers groups opted-in subscribers with non-empty subscriptions by their category set
func GroupSubscribers(subs []domain.Subscriber) map[string]AudienceGroup {
	groups := make(map[string]AudienceGroup)
	for _, s := range subs {
		if !s.Eligible() {
			continue
		}
		key := GroupKey(s.SubscribedCategories)
		g, ok := groups[key]
		if !ok {
			g = AudienceGroup{Key: key, Categories: domain.CanonicalCategories(s.SubscribedCategories)}
		}
		g.Subscribers = append(g.Subscribers, s)
		groups[key] = g
	}
	return groups
}
