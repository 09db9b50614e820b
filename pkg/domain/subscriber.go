package domain

import "slices"

// Subscriber is a portal user who may receive notification emails
type Subscriber struct {
	ID                   int64
	Email                string
	SubscribedCategories []Category
	NewsletterOptIn      bool
}

// Eligible reports whether the subscriber should receive any notification
func (s Subscriber) Eligible() bool {
	return s.NewsletterOptIn && s.Email != "" && len(CanonicalCategories(s.SubscribedCategories)) > 0
}

// Wants reports whether the subscriber follows the given category
func (s Subscriber) Wants(c Category) bool {
	c = c.Canonical()
	if c == "" {
		return false
	}
	return slices.ContainsFunc(s.SubscribedCategories, func(sc Category) bool { return sc.Canonical() == c })
}
