package journal

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"bucket-manager/feature/store"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	// DefaultLimit is the number of records returned when none is requested.
	DefaultLimit = 50
	// MaxLimit caps a single query.
	MaxLimit = 500
)

// Repository persists transfer records. It implements store.Recorder.
type Repository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewRepository creates a repository on db.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db, now: time.Now}
}

// Migrate creates or updates the transfer_records table.
func (r *Repository) Migrate() error {
	if err := r.db.AutoMigrate(&TransferRecord{}); err != nil {
		return fmt.Errorf("failed to migrate journal: %w", err)
	}
	return nil
}

// Record stores a transfer.
func (r *Repository) Record(ctx context.Context, t store.Transfer) error {
	rec := TransferRecord{
		ID:        uuid.NewString(),
		Operation: t.Operation,
		Bucket:    t.Bucket,
		Key:       t.Key,
		Size:      t.Size,
		ETag:      t.ETag,
		CreatedAt: r.now().UTC(),
	}
	if !t.LastModified.IsZero() {
		lm := t.LastModified.UTC()
		rec.LastModified = &lm
	}
	if t.Err != nil {
		rec.Error = truncate(t.Err.Error(), 1024)
	}

	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return fmt.Errorf("failed to record transfer: %w", err)
	}
	return nil
}

// Recent returns the latest records, newest first. An empty bucket matches
// every bucket; limit is clamped to [1, MaxLimit].
func (r *Repository) Recent(ctx context.Context, bucket string, limit int) ([]TransferRecord, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	query := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit)
	if bucket != "" {
		query = query.Where("bucket = ?", bucket)
	}

	var records []TransferRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to read journal: %w", err)
	}
	return records, nil
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
