package posts

import (
	"context"
	"strings"
	"testing"
)

func TestSlugBase(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple", "Hello World", "hello-world"},
		{"mixed case and punctuation", "Go, Gin & GORM!", "go-gin-gorm"},
		{"symbols only", "!!! ???", "post"},
		{"whitespace only", "   ", "post"},
		{"empty", "", "post"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := slugBase(tt.title); got != tt.want {
				t.Errorf("slugBase(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestSlugBase_CapsLongTitles(t *testing.T) {
	long := strings.Repeat("word ", 100) // normalizes well past the cap
	base := slugBase(long)

	if len(base) > slugBaseMax {
		t.Errorf("base length %d exceeds cap %d", len(base), slugBaseMax)
	}
	if strings.HasSuffix(base, "-") {
		t.Errorf("capped base ends with hyphen: %q", base)
	}
	// worst case suffix still fits the column
	if len(base)+len("-1000") > 255 {
		t.Errorf("suffixed candidate can exceed slug column width")
	}
}

func TestUniqueSlug_ProbesSuffixChain(t *testing.T) {
	_, db := setupRepo(t)
	user := createTestUser(t, db, "A", "a@x.com")

	seed := []string{"hello-world", "hello-world-1"}
	for _, s := range seed {
		p := Post{UserID: user.ID, Title: "Hello World", Category: "general", Content: "0123456789", Slug: s}
		if err := db.Omit("User").Create(&p).Error; err != nil {
			t.Fatalf("seeding post %q: %v", s, err)
		}
	}

	got, err := uniqueSlug(context.Background(), db, "Hello World")
	if err != nil {
		t.Fatalf("uniqueSlug() error: %v", err)
	}
	if got != "hello-world-2" {
		t.Errorf("expected slug 'hello-world-2', got %q", got)
	}
}

func TestUniqueSlug_FreeBase(t *testing.T) {
	_, db := setupRepo(t)

	got, err := uniqueSlug(context.Background(), db, "Fresh Title")
	if err != nil {
		t.Fatalf("uniqueSlug() error: %v", err)
	}
	if got != "fresh-title" {
		t.Errorf("expected slug 'fresh-title', got %q", got)
	}
}
