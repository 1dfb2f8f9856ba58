package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"homecare-tracker/internal/store"
	"homecare-tracker/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestFail_MapsStoreErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewHandler(nil, nil, nil, zerolog.Nop())

	cases := []struct {
		err  error
		code int
	}{
		{store.ErrNotFound, http.StatusNotFound},
		{fmt.Errorf("bench 1 at version 3: %w", store.ErrConflict), http.StatusConflict},
		{store.ErrDuplicateEmail, http.StatusBadRequest},
		{fmt.Errorf("health worker 9: %w", store.ErrUnknownHealthWorker), http.StatusBadRequest},
		{utils.ErrPasswordTooLong, http.StatusBadRequest},
		{fmt.Errorf("appointment 1: bench 2: %w", store.ErrIntegrity), http.StatusInternalServerError},
		{errors.New("disk full"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		h.fail(c, tc.err, "Bench")
		assert.Equal(t, tc.code, rec.Code, tc.err.Error())
	}
}

func TestFail_NotFoundMessageNamesResource(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewHandler(nil, nil, nil, zerolog.Nop())

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	h.fail(c, store.ErrNotFound, "Questionnaire")
	assert.JSONEq(t, `{"message":"Questionnaire not found"}`, rec.Body.String())
}

func TestRespondList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/empty", func(c *gin.Context) { respondList(c, []int{}) })
	r.GET("/full", func(c *gin.Context) { respondList(c, []int{1, 2}) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/empty", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/full", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[1,2]`, rec.Body.String())
}

func TestPathIDAndBodyID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.PUT("/things/:id", func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		if !checkBodyID(c, id, 7) {
			return
		}
		c.Status(http.StatusNoContent)
	})

	for path, code := range map[string]int{
		"/things/7":   http.StatusNoContent,
		"/things/8":   http.StatusBadRequest,
		"/things/abc": http.StatusBadRequest,
		"/things/0":   http.StatusBadRequest,
	} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, path, nil))
		assert.Equal(t, code, rec.Code, path)
	}
}
