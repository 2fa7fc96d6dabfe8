package sqlite

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/krisArias1990/FloristeriaSantaBarbara/internal/domain"
)

// Record is one row of the key-value table backing the store.
type Record struct {
	Key   string `gorm:"primaryKey;size:120"`
	Value string `gorm:"type:text"`
}

func (Record) TableName() string { return "records" }

// Store persists the application namespace in a single sqlite table. It is
// the local, serverless stand-in for the original storage substrate: one
// value per key, full-collection reads and writes, no cross-key atomicity.
type Store struct {
	db         *gorm.DB
	quotaBytes int
}

// New wraps an opened gorm connection. quotaBytes caps the total stored
// size (UTF-16 accounting); 0 disables the cap.
func New(db *gorm.DB, quotaBytes int) (*Store, error) {
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, err
	}
	return &Store{db: db, quotaBytes: quotaBytes}, nil
}

func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	var r Record
	err := s.db.WithContext(ctx).First(&r, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return r.Value, true, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	if s.quotaBytes > 0 {
		used, err := s.usedBytes(ctx, key)
		if err != nil {
			return err
		}
		if used+domain.UTF16Bytes(value) > s.quotaBytes {
			return domain.ErrStorageQuotaExceeded
		}
	}
	r := Record{Key: key, Value: value}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&r).Error
}

func (s *Store) Remove(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Delete(&Record{}, "key = ?", key).Error
}

func (s *Store) Keys(ctx context.Context) ([]string, error) {
	keys := []string{}
	err := s.db.WithContext(ctx).Model(&Record{}).Order("key asc").Pluck("key", &keys).Error
	if err != nil {
		return nil, err
	}
	return keys, nil
}

// usedBytes sums the stored size of every record except the one about to be
// rewritten.
func (s *Store) usedBytes(ctx context.Context, excludeKey string) (int, error) {
	var records []Record
	if err := s.db.WithContext(ctx).Where("key <> ?", excludeKey).Find(&records).Error; err != nil {
		return 0, err
	}
	total := 0
	for _, r := range records {
		total += domain.UTF16Bytes(r.Value)
	}
	return total, nil
}
