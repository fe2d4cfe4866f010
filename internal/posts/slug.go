package posts

import (
	"context"
	"fmt"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

const (
	// slugBaseMax leaves room in the 255-byte slug column for a "-" plus a
	// numeric suffix, so a long title can never push a suffixed candidate
	// past the column width.
	slugBaseMax = 240

	slugFallback = "post"
)

// slugBase normalizes a title into a lowercase hyphenated ASCII token.
// Titles that normalize to nothing (all symbols, whitespace) fall back to
// "post".
func slugBase(title string) string {
	base := slug.Make(title)
	if base == "" {
		base = slugFallback
	}
	if len(base) > slugBaseMax {
		base = base[:slugBaseMax]
		// don't end on a partial token
		for len(base) > 0 && base[len(base)-1] == '-' {
			base = base[:len(base)-1]
		}
		if base == "" {
			base = slugFallback
		}
	}
	return base
}

// uniqueSlug probes the post table for the first unused candidate: the bare
// base, then base-1, base-2, and so on. This is an optimization only; two
// concurrent writers can both see the same candidate as free. The unique
// index on the slug column is the authority, and the insert path retries on
// its violation.
func uniqueSlug(ctx context.Context, db *gorm.DB, title string) (string, error) {
	base := slugBase(title)
	candidate := base
	for counter := 1; ; counter++ {
		var n int64
		if err := db.WithContext(ctx).Model(&Post{}).Where("slug = ?", candidate).Count(&n).Error; err != nil {
			return "", fmt.Errorf("probing slug %q: %w", candidate, err)
		}
		if n == 0 {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, counter)
	}
}
