package store

import (
	"context"
	"fmt"

	"homecare-tracker/internal/models"

	"gorm.io/gorm"
)

func healthWorkerViews(tx *gorm.DB, profiles []models.HealthWorkerProfile) ([]models.HealthWorkerView, error) {
	views := make([]models.HealthWorkerView, 0, len(profiles))
	if len(profiles) == 0 {
		return views, nil
	}

	ids := make([]uint64, 0, len(profiles))
	for _, p := range profiles {
		ids = append(ids, p.AccountID)
	}
	var accounts []models.Account
	if err := tx.Where("id IN ?", ids).Find(&accounts).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint64]models.Account, len(accounts))
	for _, a := range accounts {
		byID[a.ID] = a
	}

	for _, p := range profiles {
		acc, ok := byID[p.AccountID]
		if !ok {
			return nil, fmt.Errorf("health worker profile %d without account: %w", p.AccountID, ErrIntegrity)
		}
		views = append(views, models.NewHealthWorkerView(acc, p))
	}
	return views, nil
}

func healthWorkerView(tx *gorm.DB, id uint64) (models.HealthWorkerView, error) {
	p, err := getByKey[models.HealthWorkerProfile](tx, "account_id", id)
	if err != nil {
		return models.HealthWorkerView{}, err
	}
	views, err := healthWorkerViews(tx, []models.HealthWorkerProfile{*p})
	if err != nil {
		return models.HealthWorkerView{}, err
	}
	return views[0], nil
}

func (s *Store) ListHealthWorkers(ctx context.Context) ([]models.HealthWorkerView, error) {
	tx := s.db.WithContext(ctx)
	profiles, err := list[models.HealthWorkerProfile](tx, "account_id")
	if err != nil {
		return nil, err
	}
	return healthWorkerViews(tx, profiles)
}

func (s *Store) GetHealthWorker(ctx context.Context, id uint64) (models.HealthWorkerView, error) {
	return healthWorkerView(s.db.WithContext(ctx), id)
}

// UpdateHealthWorker: full replace profile + email.
func (s *Store) UpdateHealthWorker(ctx context.Context, in models.UpdateHealthWorkerInput) error {
	return s.tx(ctx, func(tx *gorm.DB) error {
		p := models.HealthWorkerProfile{
			AccountID:   in.ID,
			FirstName:   in.FirstName,
			LastName:    in.LastName,
			Gender:      in.Gender,
			BirthDay:    in.BirthDay,
			PhoneNumber: in.PhoneNumber,
		}
		if _, err := currentVersion[models.HealthWorkerProfile](tx, "account_id", in.ID); err != nil {
			return err
		}
		if err := updateEmail(tx, in.ID, in.Email); err != nil {
			return err
		}
		_, err := replace[models.HealthWorkerProfile](tx, in.ID, in.Version, &p)
		return err
	})
}

// EditHealthWorker mengganti data pribadi healthworker tanpa menyentuh email.
func (s *Store) EditHealthWorker(ctx context.Context, id uint64, in models.EditHealthWorkerInput) error {
	return s.tx(ctx, func(tx *gorm.DB) error {
		p := models.HealthWorkerProfile{
			AccountID:   id,
			FirstName:   in.FirstName,
			LastName:    in.LastName,
			Gender:      in.Gender,
			BirthDay:    in.BirthDay,
			PhoneNumber: in.PhoneNumber,
		}
		_, err := replace[models.HealthWorkerProfile](tx, id, 0, &p)
		return err
	})
}

// DeleteHealthWorker melepas semua client yang terhubung, lalu hapus profile + account.
func (s *Store) DeleteHealthWorker(ctx context.Context, id uint64) (models.HealthWorkerView, error) {
	var view models.HealthWorkerView
	err := s.tx(ctx, func(tx *gorm.DB) error {
		v, err := healthWorkerView(tx, id)
		if err != nil {
			return err
		}
		err = tx.Model(&models.ClientProfile{}).Where("health_worker_id = ?", id).
			Updates(map[string]interface{}{"health_worker_id": nil, "version": gorm.Expr("version + 1")}).Error
		if err != nil {
			return err
		}
		if _, err := remove[models.HealthWorkerProfile](tx, "account_id", id); err != nil {
			return err
		}
		if _, err := remove[models.Account](tx, "id", id); err != nil {
			return err
		}
		view = v
		return nil
	})
	return view, err
}
