package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/jmoiron/sqlx"

	"github.com/communityportal/notifier/pkg/domain"
)

// UserRepository reads portal users as notification subscribers
type UserRepository struct {
	db *sqlx.DB
}

// userSQL represents a user for SQL operations
type userSQL struct {
	ID                   int64  `db:"id"`
	Email                string `db:"email"`
	SubscribedCategories string `db:"subscribed_categories"`
	NewsletterOptIn      bool   `db:"newsletter_opt_in"`
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser inserts a new user with its subscription preferences
func (r *UserRepository) CreateUser(ctx context.Context, sub *domain.Subscriber) error {
	cats := sub.SubscribedCategories
	if cats == nil {
		cats = []domain.Category{}
	}
	encoded, err := json.Marshal(cats)
	if err != nil {
		return fmt.Errorf("encode categories: %w", err)
	}

	rec := &userSQL{
		Email:                sub.Email,
		SubscribedCategories: string(encoded),
		NewsletterOptIn:      sub.NewsletterOptIn,
	}
	query := `
		INSERT INTO users (email, subscribed_categories, newsletter_opt_in)
		VALUES (:email, :subscribed_categories, :newsletter_opt_in)
	`
	result, err := r.db.NamedExecContext(ctx, query, rec)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get insert id: %w", err)
	}
	sub.ID = id
	return nil
}

// GetNewsletterSubscribers returns all users who opted in to the newsletter
func (r *UserRepository) GetNewsletterSubscribers(ctx context.Context) ([]domain.Subscriber, error) {
	query := `
		SELECT id, email, subscribed_categories, newsletter_opt_in FROM users
		WHERE newsletter_opt_in = 1
		ORDER BY id
	`
	var recs []userSQL
	if err := r.db.SelectContext(ctx, &recs, query); err != nil {
		return nil, fmt.Errorf("get newsletter subscribers: %w", err)
	}

	res := make([]domain.Subscriber, 0, len(recs))
	for _, rec := range recs {
		sub, err := rec.toDomain()
		if err != nil {
			return nil, err
		}
		res = append(res, sub)
	}
	return res, nil
}

// FindSubscribersByCategory returns opted-in users whose subscriptions include the category
func (r *UserRepository) FindSubscribersByCategory(ctx context.Context, category domain.Category) ([]domain.Subscriber, error) {
	subs, err := r.GetNewsletterSubscribers(ctx)
	if err != nil {
		return nil, fmt.Errorf("find subscribers by category: %w", err)
	}

	// filtered after decoding, a LIKE over the JSON text would match prefixes of other tags
	return slices.DeleteFunc(subs, func(s domain.Subscriber) bool { return !s.Wants(category) }), nil
}

func (u *userSQL) toDomain() (domain.Subscriber, error) {
	var cats []domain.Category
	if u.SubscribedCategories != "" {
		if err := json.Unmarshal([]byte(u.SubscribedCategories), &cats); err != nil {
			return domain.Subscriber{}, fmt.Errorf("decode categories of user %d: %w", u.ID, err)
		}
	}
	return domain.Subscriber{
		ID:                   u.ID,
		Email:                u.Email,
		SubscribedCategories: cats,
		NewsletterOptIn:      u.NewsletterOptIn,
	}, nil
}
