package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")

type PostgresDB struct {
	db *gorm.DB
}

func NewPostgresDB(dsn string) (*PostgresDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return &PostgresDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &PostgresDB{
		db: db,
	}, nil
}

func (f *PostgresDB) MigrateTable(tbl ...any) error {
	err := f.db.AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

func (f *PostgresDB) SaveToTable(ctx context.Context, record any) error {
	if err := f.db.WithContext(ctx).Save(record).Error; err != nil {
		return fmt.Errorf("save to table: %w", err)
	}

	return nil
}

// InsertIfAbsent inserts a record and reports whether the insert happened.
// Conflicts on the record's unique columns are swallowed (ON CONFLICT DO
// NOTHING), which gives callers create-if-absent semantics under concurrency.
func (f *PostgresDB) InsertIfAbsent(ctx context.Context, record any) (bool, error) {
	tx := f.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(record)
	if tx.Error != nil {
		return false, fmt.Errorf("insert if absent: %w", tx.Error)
	}

	return tx.RowsAffected > 0, nil
}

// UpdateWhere applies updates to rows of model matching the condition and
// returns the number of rows touched. A zero count with a status condition is
// how callers detect a lost optimistic-concurrency race.
func (f *PostgresDB) UpdateWhere(ctx context.Context, model any, updates map[string]any, query string, args ...any) (int64, error) {
	tx := f.db.WithContext(ctx).Model(model).Where(query, args...).Updates(updates)
	if tx.Error != nil {
		return 0, fmt.Errorf("guarded update: %w", tx.Error)
	}

	return tx.RowsAffected, nil
}

func (f *PostgresDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.db.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

func (f *PostgresDB) GetAllBy(ctx context.Context, column string, value any, entity any) error {
	tx := f.db.WithContext(ctx).Where(fmt.Sprintf("%s IN ?", column), value).Find(entity)
	if tx.Error != nil {
		return fmt.Errorf("getting records by %q: %w", column, tx.Error)
	}
	return nil
}

// GetAllWhere fetches rows matching an arbitrary condition, for queries the
// single-column helpers cannot express (expiry scans, status filters).
func (f *PostgresDB) GetAllWhere(ctx context.Context, entity any, query string, args ...any) error {
	tx := f.db.WithContext(ctx).Where(query, args...).Find(entity)
	if tx.Error != nil {
		return fmt.Errorf("getting records where %q: %w", query, tx.Error)
	}
	return nil
}
