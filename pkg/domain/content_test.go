package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseContentType(t *testing.T) {
	ct, err := ParseContentType("services")
	require.NoError(t, err)
	assert.Equal(t, ContentService, ct)

	ct, err = ParseContentType("events")
	require.NoError(t, err)
	assert.Equal(t, ContentEvent, ct)

	_, err = ParseContentType("Events")
	require.EqualError(t, err, `unknown content type "Events"`)
}

func TestContentItem(t *testing.T) {
	date := time.Date(2026, 10, 20, 18, 0, 0, 0, time.UTC)
	svc := Service{ID: 1, ServiceName: "Legal aid", ShortDescription: "free", Category: CategoryLegal}.ContentItem()
	evt := Event{ID: 1, Title: "Job fair", Category: CategoryJobs, Date: date, Published: true}.ContentItem()

	assert.Equal(t, "Legal aid", svc.DisplayTitle())
	assert.Equal(t, "Job fair", evt.DisplayTitle())
	assert.Equal(t, ContentRef{ID: 1, Type: ContentService}, svc.Ref())
	assert.Equal(t, ContentRef{ID: 1, Type: ContentEvent}, evt.Ref())
	assert.NotEqual(t, svc.Ref(), evt.Ref(), "same id in different collections")
	assert.Equal(t, date, evt.Date)
}
