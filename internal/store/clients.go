package store

import (
	"context"
	"errors"
	"fmt"

	"homecare-tracker/internal/models"

	"gorm.io/gorm"
)

// checkHealthWorker: HealthWorker_Id harus null atau menunjuk healthworker yang ada.
func checkHealthWorker(tx *gorm.DB, id *uint64) error {
	if id == nil {
		return nil
	}
	var n int64
	if err := tx.Model(&models.HealthWorkerProfile{}).Where("account_id = ?", *id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("health worker %d: %w", *id, ErrUnknownHealthWorker)
	}
	return nil
}

// clientViews menggabungkan profile dengan account-nya (email).
func clientViews(tx *gorm.DB, profiles []models.ClientProfile) ([]models.ClientView, error) {
	views := make([]models.ClientView, 0, len(profiles))
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
			return nil, fmt.Errorf("client profile %d without account: %w", p.AccountID, ErrIntegrity)
		}
		views = append(views, models.NewClientView(acc, p))
	}
	return views, nil
}

func clientView(tx *gorm.DB, id uint64) (models.ClientView, error) {
	p, err := getByKey[models.ClientProfile](tx, "account_id", id)
	if err != nil {
		return models.ClientView{}, err
	}
	views, err := clientViews(tx, []models.ClientProfile{*p})
	if err != nil {
		return models.ClientView{}, err
	}
	return views[0], nil
}

func (s *Store) ListClients(ctx context.Context) ([]models.ClientView, error) {
	tx := s.db.WithContext(ctx)
	profiles, err := list[models.ClientProfile](tx, "account_id")
	if err != nil {
		return nil, err
	}
	return clientViews(tx, profiles)
}

func (s *Store) GetClient(ctx context.Context, id uint64) (models.ClientView, error) {
	return clientView(s.db.WithContext(ctx), id)
}

// ConnectedClients mengembalikan client yang terhubung ke healthworker dengan email tsb.
// ErrNotFound kalau healthworker-nya tidak ada.
func (s *Store) ConnectedClients(ctx context.Context, healthWorkerEmail string) ([]models.ClientView, error) {
	tx := s.db.WithContext(ctx)

	acc, err := findAccountByEmail(tx, healthWorkerEmail)
	if err != nil {
		return nil, err
	}
	if acc.Role != models.RoleHealthWorker {
		return nil, ErrNotFound
	}

	profiles := []models.ClientProfile{}
	if err := tx.Where("health_worker_id = ?", acc.ID).Order("account_id").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return clientViews(tx, profiles)
}

// updateEmail mengganti email account kalau berbeda, dengan cek duplikat.
func updateEmail(tx *gorm.DB, id uint64, email string) error {
	email = NormalizeEmail(email)

	acc, err := getByKey[models.Account](tx, "id", id)
	if err != nil {
		return err
	}
	if acc.Email == email {
		return nil
	}

	other, err := findAccountByEmail(tx, email)
	if err == nil && other.ID != id {
		return ErrDuplicateEmail
	}
	if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	return tx.Model(&models.Account{}).Where("id = ?", id).
		Updates(map[string]interface{}{"email": email, "version": gorm.Expr("version + 1")}).Error
}

// UpdateClient: full replace profile + email client. Version di input dipakai untuk CAS.
func (s *Store) UpdateClient(ctx context.Context, in models.UpdateClientInput) error {
	return s.tx(ctx, func(tx *gorm.DB) error {
		p := models.ClientProfile{
			AccountID:      in.ID,
			FirstName:      in.FirstName,
			LastName:       in.LastName,
			Gender:         in.Gender,
			BirthDay:       in.BirthDay,
			StreetName:     in.StreetName,
			HouseNumber:    in.HouseNumber,
			Province:       in.Province,
			District:       in.District,
			HealthWorkerID: in.HealthWorkerID,
		}
		if _, err := currentVersion[models.ClientProfile](tx, "account_id", in.ID); err != nil {
			return err
		}
		if err := checkHealthWorker(tx, in.HealthWorkerID); err != nil {
			return err
		}
		if err := updateEmail(tx, in.ID, in.Email); err != nil {
			return err
		}
		_, err := replace[models.ClientProfile](tx, in.ID, in.Version, &p)
		return err
	})
}

// clientByEmail mencari profile client dari email account-nya.
func clientByEmail(tx *gorm.DB, email string) (*models.ClientProfile, error) {
	acc, err := findAccountByEmail(tx, email)
	if err != nil {
		return nil, err
	}
	if acc.Role != models.RoleClient {
		return nil, ErrNotFound
	}
	return getByKey[models.ClientProfile](tx, "account_id", acc.ID)
}

// EditClientAddress hanya mengganti field alamat (PUT /api/account/edit/{email}).
func (s *Store) EditClientAddress(ctx context.Context, email string, in models.EditClientInput) error {
	return s.tx(ctx, func(tx *gorm.DB) error {
		p, err := clientByEmail(tx, email)
		if err != nil {
			return err
		}
		p.StreetName = in.StreetName
		p.HouseNumber = in.HouseNumber
		p.Province = in.Province
		p.District = in.District
		_, err = compareAndSwap[models.ClientProfile](tx, p.AccountID, p.Version, p)
		return err
	})
}

// SetClientHealthWorker mengganti relasi client -> healthworker (nil = lepas).
func (s *Store) SetClientHealthWorker(ctx context.Context, email string, healthWorkerID *uint64) error {
	return s.tx(ctx, func(tx *gorm.DB) error {
		p, err := clientByEmail(tx, email)
		if err != nil {
			return err
		}
		if err := checkHealthWorker(tx, healthWorkerID); err != nil {
			return err
		}
		p.HealthWorkerID = healthWorkerID
		_, err = compareAndSwap[models.ClientProfile](tx, p.AccountID, p.Version, p)
		return err
	})
}

// DeleteClient menghapus profile + account, mengembalikan data terakhir.
func (s *Store) DeleteClient(ctx context.Context, id uint64) (models.ClientView, error) {
	var view models.ClientView
	err := s.tx(ctx, func(tx *gorm.DB) error {
		v, err := clientView(tx, id)
		if err != nil {
			return err
		}
		if _, err := remove[models.ClientProfile](tx, "account_id", id); err != nil {
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
