package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Format response standar: pesan + (opsional) error per field.
// Resource sukses dikirim apa adanya lewat c.JSON, tanpa envelope.
type Response struct {
	Message string       `json:"message"`
	Token   string       `json:"token,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"` // omitempty: kalau kosong, ga usah dimunculin
}

func APIResponse(c *gin.Context, code int, message string) {
	c.JSON(code, Response{Message: message})
}

// TokenResponse dipakai register/signin: pesan sukses + token baru.
func TokenResponse(c *gin.Context, code int, message, token string) {
	c.JSON(code, Response{Message: message, Token: token})
}

// NoContent: 204 tanpa body (list kosong, update sukses).
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// BindError mengirim 400 dengan daftar error per field dari binding gin.
func BindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, Response{
		Message: "Validation failed",
		Errors:  ValidationErrors(err),
	})
}

// FieldErrorResponse: 400 untuk satu field yang tidak valid (cek di luar binding).
func FieldErrorResponse(c *gin.Context, field, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Message: "Validation failed",
		Errors:  []FieldError{{Field: field, Message: message}},
	})
}
