package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	require.NoError(t, Setup("debug", "json"))
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logrus.StandardLogger().Formatter)

	require.NoError(t, Setup("info", "text"))
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())

	assert.Error(t, Setup("loud", "text"))
	assert.Error(t, Setup("info", "xml"))
}

func TestRequestLogger(t *testing.T) {
	require.NoError(t, Setup("info", "text"))
	hook := test.NewGlobal()
	defer hook.Reset()

	e := echo.New()
	e.Use(RequestLogger())
	e.GET("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, "pong")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "/ping", entry.Data["uri"])
	assert.Equal(t, http.StatusOK, entry.Data["status"])
}
