// Package store adalah satu-satunya akses ke database. Handler menerima *Store
// secara eksplisit, tidak ada variabel global DB.
package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrNotFound            = errors.New("record not found")
	ErrConflict            = errors.New("record was modified concurrently")
	ErrIntegrity           = errors.New("dangling reference")
	ErrDuplicateEmail      = errors.New("email already registered")
	ErrUnknownHealthWorker = errors.New("health worker does not exist")
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// versioned adalah row yang di-update lewat compare-and-swap kolom version.
type versioned interface {
	KeyColumn() string
	UpdateColumns() map[string]interface{}
}

func (s *Store) tx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return s.db.WithContext(ctx).Transaction(fn)
}

func getByKey[T any](tx *gorm.DB, key string, id uint64) (*T, error) {
	var row T
	err := tx.Where(key+" = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func list[T any](tx *gorm.DB, order string) ([]T, error) {
	rows := []T{}
	if err := tx.Order(order).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// currentVersion membaca version row saat ini. ErrNotFound kalau row tidak ada.
func currentVersion[T any](tx *gorm.DB, key string, id uint64) (int64, error) {
	var versions []int64
	if err := tx.Model(new(T)).Where(key+" = ?", id).Pluck("version", &versions).Error; err != nil {
		return 0, err
	}
	if len(versions) == 0 {
		return 0, ErrNotFound
	}
	return versions[0], nil
}

// compareAndSwap menulis semua kolom row hanya jika version di database masih
// sama dengan expected. Kalau gagal: row hilang -> ErrNotFound, row berubah -> ErrConflict.
func compareAndSwap[T any, PT interface {
	*T
	versioned
}](tx *gorm.DB, id uint64, expected int64, row PT) (int64, error) {
	key := row.KeyColumn()
	cols := row.UpdateColumns()
	cols["version"] = gorm.Expr("version + 1")

	res := tx.Model(new(T)).Where(key+" = ? AND version = ?", id, expected).Updates(cols)
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 1 {
		return expected + 1, nil
	}

	var n int64
	if err := tx.Model(new(T)).Where(key+" = ?", id).Count(&n).Error; err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, ErrNotFound
	}
	return 0, fmt.Errorf("%T %d at version %d: %w", row, id, expected, ErrConflict)
}

// replace: load version saat ini, lalu CAS. version 0 dari client artinya
// "pakai version yang barusan dibaca".
func replace[T any, PT interface {
	*T
	versioned
}](tx *gorm.DB, id uint64, version int64, row PT) (int64, error) {
	current, err := currentVersion[T](tx, row.KeyColumn(), id)
	if err != nil {
		return 0, err
	}
	if version == 0 {
		version = current
	}
	return compareAndSwap[T, PT](tx, id, version, row)
}

func remove[T any](tx *gorm.DB, key string, id uint64) (*T, error) {
	row, err := getByKey[T](tx, key, id)
	if err != nil {
		return nil, err
	}
	if err := tx.Where(key+" = ?", id).Delete(new(T)).Error; err != nil {
		return nil, err
	}
	return row, nil
}
