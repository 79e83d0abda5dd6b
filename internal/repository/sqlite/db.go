package sqlite

import (
	"context"

	"fittrack/internal/domain"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// Open opens (creating if needed) the embedded database file. The
// returned handle is shared by all repositories for the process lifetime.
func Open(path string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Dialector{
		DriverName: "sqlite",
		DSN:        path,
	}, &gorm.Config{})
}

// Close releases the underlying database handle. Call on shutdown.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// EnsureProfile seeds the singleton profile row with default values if
// absent. Safe to run on every startup; an existing profile is never
// overwritten.
func EnsureProfile(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&ProfileModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	p := domain.DefaultProfile()
	m := ProfileModel{Name: p.Name, Weight: p.Weight, Height: p.Height, Goal: p.Goal}
	return db.WithContext(ctx).Create(&m).Error
}
