package domain

import (
	"fmt"
	"time"
)

// ContentType discriminates services from events, values match the collection names
type ContentType string

const (
	ContentService ContentType = "services"
	ContentEvent   ContentType = "events"
)

// ParseContentType validates a content type coming from a request
func ParseContentType(s string) (ContentType, error) {
	switch ContentType(s) {
	case ContentService, ContentEvent:
		return ContentType(s), nil
	}
	return "", fmt.Errorf("unknown content type %q", s)
}

// ApprovalApproved is the approval status of a service visible to members
const ApprovalApproved = "approved"

// ContentItem is a service or an event that can be announced to subscribers.
// ServiceName and ShortDescription are set for services, Title and Date for events.
type ContentItem struct {
	ID         int64
	Type       ContentType
	Category   Category
	IsNotified bool

	ServiceName      string
	ShortDescription string

	Title string
	Date  time.Time

	CreatedAt time.Time
}

// Ref returns the reference used to address the item in batch updates
func (c ContentItem) Ref() ContentRef {
	return ContentRef{ID: c.ID, Type: c.Type}
}

// DisplayTitle returns the service name or the event title
func (c ContentItem) DisplayTitle() string {
	if c.Type == ContentService {
		return c.ServiceName
	}
	return c.Title
}

// ContentRef identifies a content item across both collections
type ContentRef struct {
	ID   int64
	Type ContentType
}

// Service is a member-submitted service listing
type Service struct {
	ID               int64
	ServiceName      string
	ShortDescription string
	Category         Category
	ApprovalStatus   string
	IsNotified       bool
	CreatedAt        time.Time
}

// Event is a community event
type Event struct {
	ID          int64
	Title       string
	Description string
	Category    Category
	Date        time.Time
	Published   bool
	IsNotified  bool
	CreatedAt   time.Time
}

// ContentItem converts a service to its notification view
func (s Service) ContentItem() ContentItem {
	return ContentItem{
		ID:               s.ID,
		Type:             ContentService,
		Category:         s.Category,
		IsNotified:       s.IsNotified,
		ServiceName:      s.ServiceName,
		ShortDescription: s.ShortDescription,
		CreatedAt:        s.CreatedAt,
	}
}

// ContentItem converts an event to its notification view
func (e Event) ContentItem() ContentItem {
	return ContentItem{
		ID:         e.ID,
		Type:       ContentEvent,
		Category:   e.Category,
		IsNotified: e.IsNotified,
		Title:      e.Title,
		Date:       e.Date,
		CreatedAt:  e.CreatedAt,
	}
}
