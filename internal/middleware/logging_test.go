package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	log "github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogRequest(t *testing.T) {
	hook := logtest.NewGlobal()
	defer hook.Reset()
	level := log.GetLevel()
	log.SetLevel(log.TraceLevel)
	defer log.SetLevel(level)

	req := httptest.NewRequest(http.MethodPut, "/posts/3", nil)
	req.RemoteAddr = "127.0.0.1:51000"
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	LogRequest()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusAccepted, rr.Code)
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, log.TraceLevel, entry.Level)
	assert.Equal(t, "PUT", entry.Data["method"])
	assert.Equal(t, "/posts/3", entry.Data["path"])
	assert.Equal(t, "127.0.0.1", entry.Data["ip"])
	assert.Equal(t, true, entry.Data["local"])
}
