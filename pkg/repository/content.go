package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/communityportal/notifier/pkg/domain"
)

// ErrNotFound is returned when a requested record does not exist
var ErrNotFound = domain.ErrNotFound

// ContentRepository handles services and events tables
type ContentRepository struct {
	db *sqlx.DB
}

// serviceSQL represents a service for SQL operations
type serviceSQL struct {
	ID               int64     `db:"id"`
	ServiceName      string    `db:"service_name"`
	ShortDescription string    `db:"short_description"`
	Category         string    `db:"category"`
	ApprovalStatus   string    `db:"approval_status"`
	IsNotified       bool      `db:"is_notified"`
	CreatedAt        time.Time `db:"created_at"`
}

// eventSQL represents an event for SQL operations
type eventSQL struct {
	ID          int64     `db:"id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Category    string    `db:"category"`
	Date        time.Time `db:"date"`
	Published   bool      `db:"published"`
	IsNotified  bool      `db:"is_notified"`
	CreatedAt   time.Time `db:"created_at"`
}

// NewContentRepository creates a new content repository
func NewContentRepository(db *sqlx.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

// CreateService inserts a new service
func (r *ContentRepository) CreateService(ctx context.Context, svc *domain.Service) error {
	rec := &serviceSQL{
		ServiceName:      svc.ServiceName,
		ShortDescription: svc.ShortDescription,
		Category:         string(svc.Category),
		ApprovalStatus:   svc.ApprovalStatus,
		IsNotified:       svc.IsNotified,
	}
	if rec.ApprovalStatus == "" {
		rec.ApprovalStatus = "pending"
	}

	query := `
		INSERT INTO services (service_name, short_description, category, approval_status, is_notified)
		VALUES (:service_name, :short_description, :category, :approval_status, :is_notified)
	`
	result, err := r.db.NamedExecContext(ctx, query, rec)
	if err != nil {
		return fmt.Errorf("create service: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get insert id: %w", err)
	}
	svc.ID = id
	return nil
}

// CreateEvent inserts a new event
func (r *ContentRepository) CreateEvent(ctx context.Context, evt *domain.Event) error {
	rec := &eventSQL{
		Title:       evt.Title,
		Description: evt.Description,
		Category:    string(evt.Category),
		Date:        dbTime(evt.Date),
		Published:   evt.Published,
		IsNotified:  evt.IsNotified,
	}

	query := `
		INSERT INTO events (title, description, category, date, published, is_notified)
		VALUES (:title, :description, :category, :date, :published, :is_notified)
	`
	result, err := r.db.NamedExecContext(ctx, query, rec)
	if err != nil {
		return fmt.Errorf("create event: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get insert id: %w", err)
	}
	evt.ID = id
	return nil
}

// FindUnnotifiedApprovedServices returns approved services nobody was told about yet
func (r *ContentRepository) FindUnnotifiedApprovedServices(ctx context.Context) ([]domain.ContentItem, error) {
	query := `
		SELECT * FROM services
		WHERE is_notified = 0 AND approval_status = ?
		ORDER BY created_at, id
	`
	var recs []serviceSQL
	if err := r.db.SelectContext(ctx, &recs, query, domain.ApprovalApproved); err != nil {
		return nil, fmt.Errorf("find unnotified services: %w", err)
	}

	items := make([]domain.ContentItem, len(recs))
	for i := range recs {
		items[i] = recs[i].toDomain().ContentItem()
	}
	return items, nil
}

// FindFuturePublishedEvents returns published, not yet notified events dated at or after now
func (r *ContentRepository) FindFuturePublishedEvents(ctx context.Context, now time.Time) ([]domain.ContentItem, error) {
	query := `
		SELECT * FROM events
		WHERE is_notified = 0 AND published = 1 AND date >= ?
		ORDER BY created_at, id
	`
	var recs []eventSQL
	if err := r.db.SelectContext(ctx, &recs, query, dbTime(now)); err != nil {
		return nil, fmt.Errorf("find future events: %w", err)
	}

	items := make([]domain.ContentItem, len(recs))
	for i := range recs {
		items[i] = recs[i].toDomain().ContentItem()
	}
	return items, nil
}

// GetContentItem loads a single service or event, returns ErrNotFound if missing
func (r *ContentRepository) GetContentItem(ctx context.Context, ref domain.ContentRef) (*domain.ContentItem, error) {
	switch ref.Type {
	case domain.ContentService:
		var rec serviceSQL
		if err := r.db.GetContext(ctx, &rec, "SELECT * FROM services WHERE id = ?", ref.ID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, fmt.Errorf("service %d: %w", ref.ID, ErrNotFound)
			}
			return nil, fmt.Errorf("get service: %w", err)
		}
		item := rec.toDomain().ContentItem()
		return &item, nil
	case domain.ContentEvent:
		var rec eventSQL
		if err := r.db.GetContext(ctx, &rec, "SELECT * FROM events WHERE id = ?", ref.ID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, fmt.Errorf("event %d: %w", ref.ID, ErrNotFound)
			}
			return nil, fmt.Errorf("get event: %w", err)
		}
		item := rec.toDomain().ContentItem()
		return &item, nil
	}
	return nil, fmt.Errorf("get content item: unknown type %q", ref.Type)
}

// MarkNotified flags all referenced items as notified in one transaction
func (r *ContentRepository) MarkNotified(ctx context.Context, refs []domain.ContentRef) error {
	if len(refs) == 0 {
		return nil
	}

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		err := r.markNotifiedTx(ctx, refs)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("mark notified: %w", err)}
		}
		return nil
	})
}

func (r *ContentRepository) markNotifiedTx(ctx context.Context, refs []domain.ContentRef) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	for _, ref := range refs {
		var query string
		switch ref.Type {
		case domain.ContentService:
			query = "UPDATE services SET is_notified = 1 WHERE id = ?"
		case domain.ContentEvent:
			query = "UPDATE events SET is_notified = 1 WHERE id = ?"
		default:
			return fmt.Errorf("unknown content type %q for item %d", ref.Type, ref.ID)
		}
		if _, err := tx.ExecContext(ctx, query, ref.ID); err != nil {
			return fmt.Errorf("update %s %d: %w", ref.Type, ref.ID, err)
		}
	}

	return tx.Commit()
}

func (s *serviceSQL) toDomain() domain.Service {
	return domain.Service{
		ID:               s.ID,
		ServiceName:      s.ServiceName,
		ShortDescription: s.ShortDescription,
		Category:         domain.Category(s.Category).Canonical(),
		ApprovalStatus:   s.ApprovalStatus,
		IsNotified:       s.IsNotified,
		CreatedAt:        s.CreatedAt,
	}
}

func (e *eventSQL) toDomain() domain.Event {
	return domain.Event{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Category:    domain.Category(e.Category).Canonical(),
		Date:        e.Date,
		Published:   e.Published,
		IsNotified:  e.IsNotified,
		CreatedAt:   e.CreatedAt,
	}
}
