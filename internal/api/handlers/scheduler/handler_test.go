package scheduler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/aliskhannn/mail-dispatcher/internal/mocks/api/handlers/scheduler"
	"github.com/aliskhannn/mail-dispatcher/internal/scheduler"
)

func TestHandler_Tick(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockTicker := mocks.NewMockticker(ctrl)
	handler := NewHandler(mockTicker)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/scheduler/tick", nil)

	mockTicker.EXPECT().
		Tick(gomock.Any()).
		Return(scheduler.TickResult{FirstSend: 2, Retry: 1}, nil)

	handler.Tick(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"result":{"reclaimed":0,"first_send":2,"retry":1,"deferred":0}}`, w.Body.String())
}

func TestHandler_Tick_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockTicker := mocks.NewMockticker(ctrl)
	handler := NewHandler(mockTicker)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/scheduler/tick", nil)

	mockTicker.EXPECT().
		Tick(gomock.Any()).
		Return(scheduler.TickResult{}, errors.New("db down"))

	handler.Tick(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
