package posts

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/vannda/pencraft/internal/logger"
	"github.com/vannda/pencraft/internal/users"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	if err := db.AutoMigrate(&users.User{}, &Post{}); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})

	return db
}

func setupRepo(t *testing.T) (Repository, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	return NewRepository(db, logger.NewNop()), db
}

func createTestUser(t *testing.T, db *gorm.DB, name, email string) *users.User {
	t.Helper()
	u := users.User{Name: name, Email: email, PasswordHash: "x"}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("creating test user: %v", err)
	}
	return &u
}
