package handlers

import (
	"context"
	"errors"
	"net/http"

	"homecare-tracker/internal/middleware"
	"homecare-tracker/internal/models"
	"homecare-tracker/internal/store"
	"homecare-tracker/pkg/utils"

	"github.com/gin-gonic/gin"
)

const registeredMessage = "User successfully registered"

var errWrongPassword = errors.New("wrong password")

// authenticate: store.ErrNotFound untuk email tak dikenal, errWrongPassword untuk password salah.
func (h *Handler) authenticate(ctx context.Context, email, password string) (*models.Account, error) {
	acc, err := h.store.FindAccountByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if !utils.CheckPassword(password, acc.PasswordHash) {
		return nil, errWrongPassword
	}
	return acc, nil
}

// newAccount hash password lalu siapkan row account.
func newAccount(email, password string) (*models.Account, error) {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	return &models.Account{Email: email, PasswordHash: hash}, nil
}

// registered: user baru langsung login, token ikut dikirim.
func (h *Handler) registered(c *gin.Context, acc *models.Account) {
	token, err := h.tokens.GenerateToken(acc.Email)
	if err != nil {
		h.fail(c, err, "Account")
		return
	}
	h.log.Info().Uint64("account_id", acc.ID).Str("role", acc.Role).Msg("account registered")
	utils.TokenResponse(c, http.StatusOK, registeredMessage, token)
}

// POST /api/account/register/client (anonymous)
func (h *Handler) RegisterClient(c *gin.Context) {
	var input models.RegisterClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BindError(c, err)
		return
	}

	acc, profile, err := clientFromInput(input)
	if err != nil {
		h.fail(c, err, "Account")
		return
	}
	if err := h.store.CreateClient(c.Request.Context(), acc, profile); err != nil {
		h.fail(c, err, "Account")
		return
	}
	h.registered(c, acc)
}

// POST /api/account/register/healthworker
func (h *Handler) RegisterHealthWorker(c *gin.Context) {
	var input models.RegisterHealthWorkerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BindError(c, err)
		return
	}

	acc, profile, err := healthWorkerFromInput(input)
	if err != nil {
		h.fail(c, err, "Account")
		return
	}
	if err := h.store.CreateHealthWorker(c.Request.Context(), acc, profile); err != nil {
		h.fail(c, err, "Account")
		return
	}
	h.registered(c, acc)
}

// POST /api/account/register/admin (khusus admin)
func (h *Handler) RegisterAdmin(c *gin.Context) {
	var input models.RegisterAdminInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BindError(c, err)
		return
	}

	acc, err := newAccount(input.Email, input.Password)
	if err != nil {
		h.fail(c, err, "Account")
		return
	}
	if err := h.store.CreateAdmin(c.Request.Context(), acc); err != nil {
		h.fail(c, err, "Account")
		return
	}
	h.registered(c, acc)
}

// POST /api/account/signin
func (h *Handler) SignIn(c *gin.Context) {
	var input models.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BindError(c, err)
		return
	}

	acc, err := h.authenticate(c.Request.Context(), input.Email, input.Password)
	if errors.Is(err, store.ErrNotFound) || errors.Is(err, errWrongPassword) {
		utils.APIResponse(c, http.StatusUnauthorized, "Unable to sign in")
		return
	}
	if err != nil {
		h.fail(c, err, "Account")
		return
	}

	token, ok := h.signIn(c, acc, input.FCMToken)
	if !ok {
		return
	}
	utils.TokenResponse(c, http.StatusOK, "User successfully signed in", token)
}

// POST /api/account/generatetoken: 404 email tidak ada, 401 password salah.
func (h *Handler) GenerateToken(c *gin.Context) {
	var input models.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BindError(c, err)
		return
	}

	acc, err := h.authenticate(c.Request.Context(), input.Email, input.Password)
	switch {
	case errors.Is(err, store.ErrNotFound):
		utils.APIResponse(c, http.StatusNotFound, "User not found")
		return
	case errors.Is(err, errWrongPassword):
		utils.APIResponse(c, http.StatusUnauthorized, "Invalid password")
		return
	case err != nil:
		h.fail(c, err, "Account")
		return
	}

	token, ok := h.signIn(c, acc, input.FCMToken)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// signIn simpan FCM token device (kalau dikirim) lalu buat JWT.
func (h *Handler) signIn(c *gin.Context, acc *models.Account, fcmToken string) (string, bool) {
	if fcmToken != "" {
		if err := h.store.SetFCMToken(c.Request.Context(), acc.ID, fcmToken); err != nil {
			h.fail(c, err, "Account")
			return "", false
		}
	}
	token, err := h.tokens.GenerateToken(acc.Email)
	if err != nil {
		h.fail(c, err, "Account")
		return "", false
	}
	return token, true
}

// POST /api/account/signout: hapus FCM token. JWT tetap berlaku sampai expired.
func (h *Handler) SignOut(c *gin.Context) {
	if acc, ok := middleware.CurrentAccount(c); ok {
		err := h.store.SetFCMToken(c.Request.Context(), acc.ID, "")
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			h.fail(c, err, "Account")
			return
		}
	}
	utils.APIResponse(c, http.StatusOK, "User is Logged out")
}

func clientFromInput(in models.RegisterClientInput) (*models.Account, *models.ClientProfile, error) {
	acc, err := newAccount(in.Email, in.Password)
	if err != nil {
		return nil, nil, err
	}
	return acc, &models.ClientProfile{
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Gender:         in.Gender,
		BirthDay:       in.BirthDay,
		StreetName:     in.StreetName,
		HouseNumber:    in.HouseNumber,
		Province:       in.Province,
		District:       in.District,
		HealthWorkerID: in.HealthWorkerID,
	}, nil
}

func healthWorkerFromInput(in models.RegisterHealthWorkerInput) (*models.Account, *models.HealthWorkerProfile, error) {
	acc, err := newAccount(in.Email, in.Password)
	if err != nil {
		return nil, nil, err
	}
	return acc, &models.HealthWorkerProfile{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Gender:      in.Gender,
		BirthDay:    in.BirthDay,
		PhoneNumber: in.PhoneNumber,
	}, nil
}
