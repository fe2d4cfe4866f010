package posts

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/vannda/pencraft/internal/logger"
)

var (
	ErrNotFound  = errors.New("post not found")
	ErrForbidden = errors.New("not the post owner")

	// ErrSlugExhausted means the insert retry loop gave up. With an
	// always-advancing suffix this is practically unreachable; it exists so
	// the loop is provably bounded.
	ErrSlugExhausted = errors.New("could not allocate a unique slug")
)

// maxSlugAttempts bounds the conflict-retry loop in Create.
const maxSlugAttempts = 1000

type Repository interface {
	Create(ctx context.Context, ownerID uint, title, category, content string) (*Post, error)
	GetBySlug(ctx context.Context, slug string) (*Post, error)
	ListAll(ctx context.Context) ([]Post, error)
	Update(ctx context.Context, post *Post, title, category, content string, requesterID uint) error
	Delete(ctx context.Context, post *Post, requesterID uint) error
}

type repository struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRepository(db *gorm.DB, baseLog *logger.Logger) Repository {
	return &repository{db: db, log: baseLog.With("repo", "posts")}
}

// Create inserts a post under a freshly derived slug. The pre-probed
// candidate usually goes in first try; when a concurrent publish grabs the
// same slug, the unique index rejects the insert and the loop walks the
// suffix chain from -1 upward until a write lands.
func (r *repository) Create(ctx context.Context, ownerID uint, title, category, content string) (*Post, error) {
	candidate, err := uniqueSlug(ctx, r.db, title)
	if err != nil {
		return nil, err
	}

	post := Post{
		UserID:   ownerID,
		Title:    title,
		Category: category,
		Content:  content,
		Slug:     candidate,
	}

	err = r.db.WithContext(ctx).Omit("User").Create(&post).Error
	if err == nil {
		r.log.Info("post created", "id", post.ID, "slug", post.Slug, "owner", ownerID)
		return &post, nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, fmt.Errorf("inserting post: %w", err)
	}

	base := slugBase(title)
	for counter := 1; counter <= maxSlugAttempts; counter++ {
		post.ID = 0
		post.Slug = fmt.Sprintf("%s-%d", base, counter)
		err = r.db.WithContext(ctx).Omit("User").Create(&post).Error
		if err == nil {
			r.log.Info("post created after slug conflict", "id", post.ID, "slug", post.Slug, "attempts", counter)
			return &post, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("inserting post: %w", err)
		}
	}

	r.log.Error("slug retry attempts exhausted", "title", title)
	return nil, ErrSlugExhausted
}

func (r *repository) GetBySlug(ctx context.Context, slug string) (*Post, error) {
	var post Post
	err := r.db.WithContext(ctx).Preload("User").Where("slug = ?", slug).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (r *repository) ListAll(ctx context.Context) ([]Post, error) {
	var list []Post
	if err := r.db.WithContext(ctx).Preload("User").Order("id DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// Update mutates the content fields in place. The slug is deliberately left
// alone even when the title changes, so published URLs stay stable.
func (r *repository) Update(ctx context.Context, post *Post, title, category, content string, requesterID uint) error {
	if post.UserID != requesterID {
		return ErrForbidden
	}

	post.Title = title
	post.Category = category
	post.Content = content

	if err := r.db.WithContext(ctx).Omit("User").Save(post).Error; err != nil {
		return fmt.Errorf("updating post %d: %w", post.ID, err)
	}
	r.log.Info("post updated", "id", post.ID, "slug", post.Slug)
	return nil
}

// Delete removes the post when the requester owns it. A non-owner gets
// ErrNotFound, the same answer as an unknown slug, so deletion never confirms
// a post's existence to someone who may not touch it. Edit keeps the
// Forbidden distinction; delete does not.
func (r *repository) Delete(ctx context.Context, post *Post, requesterID uint) error {
	if post.UserID != requesterID {
		return ErrNotFound
	}

	if err := r.db.WithContext(ctx).Delete(&Post{}, post.ID).Error; err != nil {
		return fmt.Errorf("deleting post %d: %w", post.ID, err)
	}
	r.log.Info("post deleted", "id", post.ID, "slug", post.Slug)
	return nil
}
