package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ecotoken/platform-api/internal/domain/repositories"
)

// Open connects to PostgreSQL. TranslateError is on so unique-constraint
// violations surface as gorm.ErrDuplicatedKey regardless of driver.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{DSN: dsn}), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}
	if err := db.Raw("select 1").Error; err != nil {
		return nil, err
	}
	return db, nil
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&SiteModel{},
		&RoleModel{},
		&AdminUserModel{},
		&UserModel{},
		&EcoLocationModel{},
		&EcoProjectModel{},
	)
}

// cursorKey is the stable ordering key shared by all paginated listings:
// insertion order, with the row ID as tie-breaker.
type cursorKey struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

// seekFrom loads the ordering key of the cursor row. The cursor is the ID of
// the first row of the requested page, so listings filter inclusively from
// this key.
func seekFrom(ctx context.Context, db *gorm.DB, table string, id uuid.UUID) (*cursorKey, error) {
	var key cursorKey
	err := db.WithContext(ctx).Table(table).Select("created_at", "id").Where("id = ?", id).Take(&key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repositories.ErrInvalidCursor
	}
	if err != nil {
		return nil, err
	}
	return &key, nil
}
