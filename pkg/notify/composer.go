package notify

import (
	"bytes"
	"embed"
	"fmt"
	"html"
	"html/template"
	"strconv"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/communityportal/notifier/pkg/domain"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	digestSubjectTmpl  = "%s: new in your community"
	instantSubjectTmpl = "%s: new %s - %s"
	eventDateLayout    = "Monday, 2 January 2006, 15:04"
)

// ComposerConfig defines how links and dates are rendered
type ComposerConfig struct {
	PortalName string
	BaseURL    string
	Location   *time.Location
}

// Composer renders content items into HTML email bodies
type Composer struct {
	portal   string
	baseURL  string
	location *time.Location
	tmpl     *template.Template
	policy   *bluemonday.Policy
}

type digestView struct {
	Subject    string
	Heading    string
	Portal     string
	ProfileURL string
	Services   []itemView
	Events     []itemView
}

type itemView struct {
	Title       string
	Description string
	When        string
	URL         string
}

// NewComposer parses the embedded templates
func NewComposer(cfg ComposerConfig) (*Composer, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse email templates: %w", err)
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.PortalName == "" {
		cfg.PortalName = "Community Portal"
	}
	return &Composer{
		portal:   cfg.PortalName,
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		location: cfg.Location,
		tmpl:     tmpl,
		policy:   bluemonday.StrictPolicy(),
	}, nil
}

// DigestSubject returns the subject line of periodic digests
func (c *Composer) DigestSubject() string {
	return fmt.Sprintf(digestSubjectTmpl, c.portal)
}

// InstantSubject returns the subject line of a single-item notification
func (c *Composer) InstantSubject(item domain.ContentItem) string {
	return fmt.Sprintf(instantSubjectTmpl, c.portal, kindName(item.Type), c.plain(item.DisplayTitle()))
}

// Compose renders a digest of items, services first then events, each keeping input order.
// The output depends only on the items and their order.
func (c *Composer) Compose(items []domain.ContentItem) (string, error) {
	return c.render(c.DigestSubject(), "New in your community", items)
}

// ComposeInstant renders a notification about a single new item
func (c *Composer) ComposeInstant(item domain.ContentItem) (string, error) {
	heading := fmt.Sprintf("New %s in %s", kindName(item.Type), item.Category)
	return c.render(c.InstantSubject(item), heading, []domain.ContentItem{item})
}

// ItemURL returns the deep link to the item's page
func (c *Composer) ItemURL(item domain.ContentItem) string {
	return c.baseURL + "/" + string(item.Type) + "/" + strconv.FormatInt(item.ID, 10)
}

func (c *Composer) render(subject, heading string, items []domain.ContentItem) (string, error) {
	view := digestView{
		Subject:    subject,
		Heading:    heading,
		Portal:     c.portal,
		ProfileURL: c.baseURL + "/profile",
	}
	for _, item := range items {
		v := itemView{Title: c.plain(item.DisplayTitle()), URL: c.ItemURL(item)}
		switch item.Type {
		case domain.ContentService:
			v.Description = c.plain(item.ShortDescription)
			view.Services = append(view.Services, v)
		case domain.ContentEvent:
			v.When = item.Date.In(c.location).Format(eventDateLayout)
			view.Events = append(view.Events, v)
		}
	}

	var buf bytes.Buffer
	if err := c.tmpl.ExecuteTemplate(&buf, "digest", view); err != nil {
		return "", fmt.Errorf("render digest: %w", err)
	}
	return buf.String(), nil
}

// plain strips any markup from member-supplied text. The sanitizer output is entity-encoded,
// it is decoded back so html/template escapes it exactly once.
func (c *Composer) plain(s string) string {
	return strings.TrimSpace(html.UnescapeString(c.policy.Sanitize(s)))
}

func kindName(t domain.ContentType) string {
	if t == domain.ContentEvent {
		return "event"
	}
	return "service"
}
