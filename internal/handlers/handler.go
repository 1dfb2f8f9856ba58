package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"homecare-tracker/internal/store"
	"homecare-tracker/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Handler menyimpan semua dependency yang dipakai endpoint.
type Handler struct {
	store    *store.Store
	tokens   *utils.TokenService
	notifier utils.Notifier
	log      zerolog.Logger
}

func NewHandler(st *store.Store, tokens *utils.TokenService, notifier utils.Notifier, log zerolog.Logger) *Handler {
	if notifier == nil {
		notifier = utils.NopNotifier{}
	}
	return &Handler{store: st, tokens: tokens, notifier: notifier, log: log}
}

// fail memetakan error store ke status HTTP. resource dipakai di pesan 404/409.
func (h *Handler) fail(c *gin.Context, err error, resource string) {
	_ = c.Error(err)

	switch {
	case errors.Is(err, store.ErrNotFound):
		utils.APIResponse(c, http.StatusNotFound, resource+" not found")
	case errors.Is(err, store.ErrConflict):
		utils.APIResponse(c, http.StatusConflict, resource+" was modified by another request, reload and try again")
	case errors.Is(err, store.ErrDuplicateEmail):
		utils.FieldErrorResponse(c, "email", "Email is already registered")
	case errors.Is(err, store.ErrUnknownHealthWorker):
		utils.FieldErrorResponse(c, "healthWorker_Id", "Health worker does not exist")
	case errors.Is(err, utils.ErrPasswordTooLong):
		utils.FieldErrorResponse(c, "password", fmt.Sprintf("password can't be longer than %d bytes", utils.MaxPasswordBytes))
	case errors.Is(err, store.ErrIntegrity):
		h.log.Error().Err(err).Str("path", c.FullPath()).Msg("data integrity fault")
		utils.APIResponse(c, http.StatusInternalServerError, "Data integrity fault")
	default:
		h.log.Error().Err(err).Str("path", c.FullPath()).Msg("unexpected store error")
		utils.APIResponse(c, http.StatusInternalServerError, "Internal server error")
	}
}

// pathID membaca :id dari URL. Kalau tidak valid, 400 sudah dikirim dan ok=false.
func pathID(c *gin.Context) (uint64, bool) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		utils.FieldErrorResponse(c, "id", "id must be a positive integer")
	}
	return id, ok
}

// queryID membaca filter opsional dari query string.
func queryID(c *gin.Context, name string) (*uint64, bool) {
	id, err := utils.ParseOptionalID(c.Query(name))
	if err != nil {
		utils.FieldErrorResponse(c, name, err.Error())
		return nil, false
	}
	return id, true
}

// checkBodyID: id di body wajib sama dengan id di path.
func checkBodyID(c *gin.Context, pathID, bodyID uint64) bool {
	if pathID != bodyID {
		utils.FieldErrorResponse(c, "id", "id in body does not match id in path")
		return false
	}
	return true
}

// respondList: 204 tanpa body kalau kosong.
func respondList[T any](c *gin.Context, rows []T) {
	if len(rows) == 0 {
		utils.NoContent(c)
		return
	}
	c.JSON(http.StatusOK, rows)
}
