package store

import (
	"context"

	"homecare-tracker/internal/models"

	"gorm.io/gorm"
)

func (s *Store) ListBenches(ctx context.Context) ([]models.Bench, error) {
	return list[models.Bench](s.db.WithContext(ctx), "id")
}

func (s *Store) GetBench(ctx context.Context, id uint64) (*models.Bench, error) {
	return getByKey[models.Bench](s.db.WithContext(ctx), "id", id)
}

func (s *Store) CreateBench(ctx context.Context, b *models.Bench) error {
	b.ID = 0
	b.Version = 1
	return s.db.WithContext(ctx).Create(b).Error
}

func (s *Store) UpdateBench(ctx context.Context, b *models.Bench) error {
	return s.tx(ctx, func(tx *gorm.DB) error {
		v, err := replace[models.Bench](tx, b.ID, b.Version, b)
		if err != nil {
			return err
		}
		b.Version = v
		return nil
	})
}

func (s *Store) DeleteBench(ctx context.Context, id uint64) (*models.Bench, error) {
	var out *models.Bench
	err := s.tx(ctx, func(tx *gorm.DB) error {
		b, err := remove[models.Bench](tx, "id", id)
		out = b
		return err
	})
	return out, err
}

// Appointment status hanya bisa dibaca lewat API. Isinya di-seed saat migrate.

func (s *Store) ListAppointmentStatuses(ctx context.Context) ([]models.AppointmentStatus, error) {
	return list[models.AppointmentStatus](s.db.WithContext(ctx), "id")
}

func (s *Store) GetAppointmentStatus(ctx context.Context, id uint64) (*models.AppointmentStatus, error) {
	return getByKey[models.AppointmentStatus](s.db.WithContext(ctx), "id", id)
}
