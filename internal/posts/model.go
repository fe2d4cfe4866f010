package posts

import (
	"time"

	"github.com/vannda/pencraft/internal/users"
)

type Post struct {
	ID        uint       `gorm:"primaryKey"`
	UserID    uint       `gorm:"not null;index"`
	User      users.User `gorm:"constraint:OnDelete:CASCADE"`
	Title     string     `gorm:"size:200;not null"`
	Category  string     `gorm:"size:80;not null"`
	Content   string     `gorm:"type:text;not null"`
	Slug      string     `gorm:"size:255;uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PublicURL is the canonical path for a post, used in templates and
// post-submit redirects.
func (p Post) PublicURL() string {
	return "/post/" + p.Slug + "/"
}
