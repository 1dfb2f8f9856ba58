package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"homecare-tracker/internal/models"

	"gorm.io/gorm"
)

// NormalizeEmail: email selalu disimpan lowercase tanpa spasi.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func findAccountByEmail(tx *gorm.DB, email string) (*models.Account, error) {
	var acc models.Account
	err := tx.Where("email = ?", NormalizeEmail(email)).First(&acc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

// FindAccountByEmail mencari account berdasarkan email (subject token).
func (s *Store) FindAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	return findAccountByEmail(s.db.WithContext(ctx), email)
}

func (s *Store) GetAccount(ctx context.Context, id uint64) (*models.Account, error) {
	return getByKey[models.Account](s.db.WithContext(ctx), "id", id)
}

// insertAccount cek duplikat email lalu simpan account baru (version 1).
func insertAccount(tx *gorm.DB, acc *models.Account) error {
	acc.Email = NormalizeEmail(acc.Email)

	_, err := findAccountByEmail(tx, acc.Email)
	if err == nil {
		return ErrDuplicateEmail
	}
	if !errors.Is(err, ErrNotFound) {
		return err
	}

	acc.Version = 1
	if err := tx.Create(acc).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// CreateAdmin menyimpan account admin (tanpa profile).
func (s *Store) CreateAdmin(ctx context.Context, acc *models.Account) error {
	acc.Role = models.RoleAdmin
	return s.tx(ctx, func(tx *gorm.DB) error {
		return insertAccount(tx, acc)
	})
}

// CreateClient menyimpan account + profile client dalam satu transaksi.
func (s *Store) CreateClient(ctx context.Context, acc *models.Account, p *models.ClientProfile) error {
	acc.Role = models.RoleClient
	return s.tx(ctx, func(tx *gorm.DB) error {
		if err := checkHealthWorker(tx, p.HealthWorkerID); err != nil {
			return err
		}
		if err := insertAccount(tx, acc); err != nil {
			return err
		}
		p.AccountID = acc.ID
		p.Version = 1
		return tx.Create(p).Error
	})
}

func (s *Store) CreateHealthWorker(ctx context.Context, acc *models.Account, p *models.HealthWorkerProfile) error {
	acc.Role = models.RoleHealthWorker
	return s.tx(ctx, func(tx *gorm.DB) error {
		if err := insertAccount(tx, acc); err != nil {
			return err
		}
		p.AccountID = acc.ID
		p.Version = 1
		return tx.Create(p).Error
	})
}

// SetFCMToken menyimpan (atau menghapus kalau kosong) token push device milik account.
func (s *Store) SetFCMToken(ctx context.Context, accountID uint64, token string) error {
	res := s.db.WithContext(ctx).Model(&models.Account{}).Where("id = ?", accountID).Update("fcm_token", token)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// MySQL melaporkan 0 kalau nilainya sama, jadi cek dulu apakah account-nya ada
		_, err := currentVersion[models.Account](s.db.WithContext(ctx), "id", accountID)
		return err
	}
	return nil
}

// AccountView memproyeksikan account beserta profile sesuai role-nya.
func (s *Store) AccountView(ctx context.Context, acc *models.Account) (models.AccountView, error) {
	view := models.AccountView{ID: acc.ID, Email: acc.Email, Role: acc.Role}
	tx := s.db.WithContext(ctx)

	switch acc.Role {
	case models.RoleClient:
		p, err := getByKey[models.ClientProfile](tx, "account_id", acc.ID)
		if err != nil {
			return view, profileErr(err, acc)
		}
		cv := models.NewClientView(*acc, *p)
		view.Client = &cv
	case models.RoleHealthWorker:
		p, err := getByKey[models.HealthWorkerProfile](tx, "account_id", acc.ID)
		if err != nil {
			return view, profileErr(err, acc)
		}
		hv := models.NewHealthWorkerView(*acc, *p)
		view.HealthWorker = &hv
	}
	return view, nil
}

// Account tanpa profile padahal role-nya butuh profile = data rusak.
func profileErr(err error, acc *models.Account) error {
	if errors.Is(err, ErrNotFound) {
		return fmt.Errorf("%s account %d has no profile: %w", acc.Role, acc.ID, ErrIntegrity)
	}
	return err
}
