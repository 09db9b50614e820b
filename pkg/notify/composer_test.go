package notify

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/communityportal/notifier/pkg/domain"
)

func testComposer(t *testing.T) *Composer {
	t.Helper()
	c, err := NewComposer(ComposerConfig{PortalName: "Hromada", BaseURL: "https://portal.example.com/", Location: time.UTC})
	require.NoError(t, err)
	return c
}

func TestComposer_Compose(t *testing.T) {
	c := testComposer(t)
	items := []domain.ContentItem{
		{ID: 11, Type: domain.ContentEvent, Category: domain.CategoryCulture, Title: "Folk evening", Date: time.Date(2026, 10, 20, 18, 30, 0, 0, time.UTC)},
		{ID: 5, Type: domain.ContentService, Category: domain.CategoryLegal, ServiceName: "Visa consultations", ShortDescription: "Help with <b>residence</b> permits & visas"},
	}

	body, err := c.Compose(items)
	require.NoError(t, err)

	assert.Contains(t, body, "New in your community")
	assert.Contains(t, body, `href="https://portal.example.com/services/5"`)
	assert.Contains(t, body, `href="https://portal.example.com/events/11"`)
	assert.Contains(t, body, "Visa consultations")
	assert.Contains(t, body, "Help with residence permits &amp; visas")
	assert.NotContains(t, body, "<b>")
	assert.NotContains(t, body, "&amp;amp;")
	assert.Contains(t, body, "Tuesday, 20 October 2026, 18:30")
	assert.Contains(t, body, `href="https://portal.example.com/profile"`)

	// services section goes before events regardless of input order
	assert.Less(t, strings.Index(body, "Visa consultations"), strings.Index(body, "Folk evening"))
}

func TestComposer_Deterministic(t *testing.T) {
	c := testComposer(t)
	items := []domain.ContentItem{
		{ID: 1, Type: domain.ContentService, Category: domain.CategoryTech, ServiceName: "A", ShortDescription: "first"},
		{ID: 2, Type: domain.ContentService, Category: domain.CategoryTech, ServiceName: "B", ShortDescription: "second"},
		{ID: 3, Type: domain.ContentEvent, Category: domain.CategoryTech, Title: "C", Date: time.Date(2026, 11, 1, 10, 0, 0, 0, time.UTC)},
	}
	first, err := c.Compose(items)
	require.NoError(t, err)
	second, err := c.Compose(items)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// another composer with the same config renders the same bytes
	third, err := testComposer(t).Compose(items)
	require.NoError(t, err)
	assert.Equal(t, first, third)
}

func TestComposer_EmptySections(t *testing.T) {
	c := testComposer(t)
	body, err := c.Compose([]domain.ContentItem{{ID: 1, Type: domain.ContentService, ServiceName: "Only service"}})
	require.NoError(t, err)
	assert.Contains(t, body, "Services")
	assert.NotContains(t, body, "<h2 style=\"font-size: 18px;\">Events</h2>")
}

func TestComposer_Instant(t *testing.T) {
	c := testComposer(t)
	item := domain.ContentItem{ID: 9, Type: domain.ContentEvent, Category: domain.CategoryJobs, Title: "Job fair <script>x</script>", Date: time.Date(2026, 10, 30, 12, 0, 0, 0, time.UTC)}

	assert.Equal(t, "Hromada: new event - Job fair", c.InstantSubject(item))

	body, err := c.ComposeInstant(item)
	require.NoError(t, err)
	assert.Contains(t, body, "New event in Jobs")
	assert.Contains(t, body, `href="https://portal.example.com/events/9"`)
	assert.NotContains(t, body, "<script>")
}

func TestComposer_Subjects(t *testing.T) {
	c := testComposer(t)
	assert.Equal(t, "Hromada: new in your community", c.DigestSubject())

	def, err := NewComposer(ComposerConfig{})
	require.NoError(t, err)
	assert.Equal(t, "Community Portal: new in your community", def.DigestSubject())
	assert.Equal(t, "/services/3", def.ItemURL(domain.ContentItem{ID: 3, Type: domain.ContentService}))
}
