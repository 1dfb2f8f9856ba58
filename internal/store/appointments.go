package store

import (
	"context"
	"errors"
	"fmt"

	"homecare-tracker/internal/models"

	"gorm.io/gorm"
)

// AppointmentFilter: field nil = tidak difilter.
type AppointmentFilter struct {
	ClientID       *uint64
	HealthworkerID *uint64
}

// dangling mengubah ErrNotFound pada relasi wajib menjadi ErrIntegrity.
func dangling(err error, format string, args ...interface{}) error {
	if errors.Is(err, ErrNotFound) {
		return fmt.Errorf(format+": %w", append(args, ErrIntegrity)...)
	}
	return err
}

// appointmentView me-resolve client, healthworker, bench & status.
// Semua relasi wajib ada; kalau tidak, ErrIntegrity (500), bukan 404.
func appointmentView(tx *gorm.DB, a models.Appointment) (models.AppointmentView, error) {
	client, err := clientView(tx, a.ClientID)
	if err != nil {
		return models.AppointmentView{}, dangling(err, "appointment %d: client %d", a.ID, a.ClientID)
	}
	worker, err := healthWorkerView(tx, a.HealthworkerID)
	if err != nil {
		return models.AppointmentView{}, dangling(err, "appointment %d: health worker %d", a.ID, a.HealthworkerID)
	}
	bench, err := getByKey[models.Bench](tx, "id", a.BenchID)
	if err != nil {
		return models.AppointmentView{}, dangling(err, "appointment %d: bench %d", a.ID, a.BenchID)
	}
	status, err := getByKey[models.AppointmentStatus](tx, "id", a.StatusID)
	if err != nil {
		return models.AppointmentView{}, dangling(err, "appointment %d: status %d", a.ID, a.StatusID)
	}

	return models.AppointmentView{
		ID:           a.ID,
		Time:         a.Time,
		Status:       *status,
		Bench:        *bench,
		Client:       client,
		Healthworker: worker,
		Version:      a.Version,
	}, nil
}

func (s *Store) ListAppointments(ctx context.Context, f AppointmentFilter) ([]models.AppointmentView, error) {
	tx := s.db.WithContext(ctx)

	q := tx.Order("id")
	if f.ClientID != nil {
		q = q.Where("client_id = ?", *f.ClientID)
	}
	if f.HealthworkerID != nil {
		q = q.Where("healthworker_id = ?", *f.HealthworkerID)
	}
	var rows []models.Appointment
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	views := make([]models.AppointmentView, 0, len(rows))
	for _, a := range rows {
		v, err := appointmentView(tx, a)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func (s *Store) GetAppointment(ctx context.Context, id uint64) (*models.Appointment, error) {
	return getByKey[models.Appointment](s.db.WithContext(ctx), "id", id)
}

// GetAppointmentView: 404 kalau appointment tidak ada, ErrIntegrity kalau relasinya hilang.
func (s *Store) GetAppointmentView(ctx context.Context, id uint64) (models.AppointmentView, error) {
	tx := s.db.WithContext(ctx)
	a, err := getByKey[models.Appointment](tx, "id", id)
	if err != nil {
		return models.AppointmentView{}, err
	}
	return appointmentView(tx, *a)
}

// CreateAppointment menyimpan appointment baru dengan status pending.
// Id relasi tidak divalidasi di sini.
func (s *Store) CreateAppointment(ctx context.Context, a *models.Appointment) error {
	a.ID = 0
	a.StatusID = models.DefaultAppointmentStatusID
	a.Version = 1
	return s.db.WithContext(ctx).Create(a).Error
}

// UpdateAppointment: full replace. Tidak ada validasi transisi status.
func (s *Store) UpdateAppointment(ctx context.Context, a *models.Appointment) error {
	return s.tx(ctx, func(tx *gorm.DB) error {
		v, err := replace[models.Appointment](tx, a.ID, a.Version, a)
		if err != nil {
			return err
		}
		a.Version = v
		return nil
	})
}

func (s *Store) DeleteAppointment(ctx context.Context, id uint64) (*models.Appointment, error) {
	var out *models.Appointment
	err := s.tx(ctx, func(tx *gorm.DB) error {
		a, err := remove[models.Appointment](tx, "id", id)
		out = a
		return err
	})
	return out, err
}
