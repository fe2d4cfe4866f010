package users

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/vannda/pencraft/internal/logger"
)

// ErrDuplicateEmail is returned when signup hits an email that is already
// registered, whether caught by the pre-check or by the unique index at
// insert time.
var ErrDuplicateEmail = errors.New("email already registered")

var ErrNotFound = errors.New("user not found")

type Directory interface {
	Create(ctx context.Context, name, email, password string) (*User, error)
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}

type directory struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDirectory(db *gorm.DB, baseLog *logger.Logger) Directory {
	return &directory{db: db, log: baseLog.With("service", "users")}
}

func (d *directory) Create(ctx context.Context, name, email, password string) (*User, error) {
	// Optimistic pre-check. The unique index remains the authority: a
	// concurrent signup between this check and the insert surfaces as
	// gorm.ErrDuplicatedKey below and degrades into the same outcome.
	if _, err := d.GetByEmail(ctx, email); err == nil {
		return nil, ErrDuplicateEmail
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := User{Name: name, Email: email, PasswordHash: hash}
	if err := d.db.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("inserting user: %w", err)
	}

	d.log.Info("user created", "id", user.ID, "email", user.Email)
	return &user, nil
}

func (d *directory) GetByID(ctx context.Context, id uint) (*User, error) {
	var user User
	if err := d.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (d *directory) GetByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	err := d.db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
