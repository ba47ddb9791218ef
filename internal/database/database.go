package database

import (
	"fmt"
	"os"
	"path/filepath"

	"estatehub/server/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Database persists leads: contact inquiries and property view events. The
// listing snapshot itself is never written here; it stays read-only in the
// store for the process lifetime.
type Database struct {
	db *gorm.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &Database{db: db}, nil
}

// RunMigrations creates or updates the lead tables.
func (d *Database) RunMigrations() error {
	if err := d.db.AutoMigrate(&models.Inquiry{}, &models.PropertyView{}); err != nil {
		return fmt.Errorf("failed to migrate lead tables: %w", err)
	}
	return nil
}

// SaveInquiries writes a batch of inquiries inside tx.
func SaveInquiries(tx *gorm.DB, inquiries []*models.Inquiry) error {
	for _, inquiry := range inquiries {
		if err := tx.Create(inquiry).Error; err != nil {
			return fmt.Errorf("failed to save inquiry: %w", err)
		}
	}
	return nil
}

// RecordView stores a single view event for a listing slug.
func (d *Database) RecordView(slug string) error {
	view := models.PropertyView{Slug: slug}
	if err := d.db.Create(&view).Error; err != nil {
		return fmt.Errorf("failed to record view: %w", err)
	}
	return nil
}

// CountViews returns the number of view events recorded for a slug since
// this snapshot went live.
func (d *Database) CountViews(slug string) (int64, error) {
	var count int64
	err := d.db.Model(&models.PropertyView{}).Where("slug = ?", slug).Count(&count).Error
	return count, err
}

// RecentInquiries returns the latest inquiries, newest first.
func (d *Database) RecentInquiries(limit int) ([]models.Inquiry, error) {
	var inquiries []models.Inquiry
	err := d.db.Order("created_at DESC").Limit(limit).Find(&inquiries).Error
	return inquiries, err
}

// GetDB exposes the underlying gorm handle for transactional callers.
func (d *Database) GetDB() *gorm.DB {
	return d.db
}
