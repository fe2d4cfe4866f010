package users

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/vannda/pencraft/internal/logger"
)

func setupDirectory(t *testing.T) (Directory, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	if err := db.AutoMigrate(&User{}); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})

	return NewDirectory(db, logger.NewNop()), db
}

func TestCreate_HashesPassword(t *testing.T) {
	dir, _ := setupDirectory(t)

	user, err := dir.Create(context.Background(), "Alice", "a@x.com", "sekret123")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if user.PasswordHash == "sekret123" || user.PasswordHash == "" {
		t.Error("password stored unhashed")
	}
	if !CheckPassword(user.PasswordHash, "sekret123") {
		t.Error("CheckPassword() rejects the original password")
	}
	if CheckPassword(user.PasswordHash, "wrong") {
		t.Error("CheckPassword() accepts a wrong password")
	}
}

func TestCreate_DuplicateEmailPreCheck(t *testing.T) {
	dir, _ := setupDirectory(t)
	ctx := context.Background()

	if _, err := dir.Create(ctx, "Alice", "a@x.com", "sekret123"); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	// exact and case-variant duplicates both hit the pre-check
	for _, email := range []string{"a@x.com", "A@X.COM"} {
		_, err := dir.Create(ctx, "Mallory", email, "sekret123")
		if !errors.Is(err, ErrDuplicateEmail) {
			t.Errorf("Create(%q): expected ErrDuplicateEmail, got %v", email, err)
		}
	}
}

// TestCreate_DuplicateEmailInsertRace forces the path where the pre-check
// passes but a concurrent signup wins the insert: a create callback claims
// the email just before our row goes in, so the unique index rejects it. The
// violation must degrade into ErrDuplicateEmail, not surface as a raw
// database error.
func TestCreate_DuplicateEmailInsertRace(t *testing.T) {
	dir, db := setupDirectory(t)

	raced := false
	err := db.Callback().Create().Before("gorm:create").Register("test:steal_email", func(tx *gorm.DB) {
		if raced {
			return
		}
		pending, ok := tx.Statement.Dest.(*User)
		if !ok {
			return
		}
		raced = true
		rival := User{Name: "Rival", Email: pending.Email, PasswordHash: "x"}
		if err := db.Create(&rival).Error; err != nil {
			t.Fatalf("inserting rival user: %v", err)
		}
	})
	if err != nil {
		t.Fatalf("registering callback: %v", err)
	}

	_, err = dir.Create(context.Background(), "Alice", "a@x.com", "sekret123")
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Errorf("expected ErrDuplicateEmail from insert race, got %v", err)
	}
}

func TestGetByEmail_CaseInsensitive(t *testing.T) {
	dir, _ := setupDirectory(t)
	ctx := context.Background()

	created, err := dir.Create(ctx, "Alice", "Alice@Example.com", "sekret123")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	got, err := dir.GetByEmail(ctx, "alice@example.COM")
	if err != nil {
		t.Fatalf("GetByEmail() error: %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("expected user %d, got %d", created.ID, got.ID)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	dir, _ := setupDirectory(t)

	_, err := dir.GetByID(context.Background(), 999)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
