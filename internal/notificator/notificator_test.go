package notificator

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/smtp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-telegram/bot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/core-coin/tokenforge/internal/models"
	"github.com/core-coin/tokenforge/pkg/logger"
)

type recordingMirror struct {
	mu  sync.Mutex
	got []models.Notification
	ch  chan struct{}
}

func newRecordingMirror() *recordingMirror {
	return &recordingMirror{ch: make(chan struct{}, 16)}
}

func (m *recordingMirror) Name() string { return "recording" }

func (m *recordingMirror) Deliver(n models.Notification) {
	m.mu.Lock()
	m.got = append(m.got, n)
	m.mu.Unlock()
	m.ch <- struct{}{}
}

func (m *recordingMirror) wait(t *testing.T, count int) []models.Notification {
	t.Helper()
	for i := 0; i < count; i++ {
		select {
		case <-m.ch:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for mirror delivery %d", i+1)
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Notification(nil), m.got...)
}

type panickingMirror struct{}

func (panickingMirror) Name() string                { return "panicking" }
func (panickingMirror) Deliver(models.Notification) { panic("boom") }

func TestNotificator_PushAndUpdate(t *testing.T) {
	n := NewNotificator(logger.NewNop(), 10)

	loading := n.Push(models.NotificationLoading, "Creating token...")
	require.NotEmpty(t, loading.ID)

	updated, ok := n.Update(loading.ID, models.NotificationSuccess, "Token created")
	require.True(t, ok)
	assert.Equal(t, loading.ID, updated.ID)

	recent := n.Recent()
	require.Len(t, recent, 1)
	assert.Equal(t, models.NotificationSuccess, recent[0].Kind)
	assert.Equal(t, "Token created", recent[0].Message)
}

func TestNotificator_WindowIsBounded(t *testing.T) {
	n := NewNotificator(logger.NewNop(), 3)

	first := n.Push(models.NotificationInfo, "1")
	for i := 0; i < 5; i++ {
		n.Push(models.NotificationInfo, "x")
	}

	assert.Len(t, n.Recent(), 3)
	_, ok := n.Update(first.ID, models.NotificationError, "late")
	assert.False(t, ok)
}

func TestNotificator_Subscribe(t *testing.T) {
	n := NewNotificator(logger.NewNop(), 10)
	events, unsubscribe := n.Subscribe()

	pushed := n.Push(models.NotificationInfo, "hello")
	n.Update(pushed.ID, models.NotificationError, "bye")

	first := <-events
	second := <-events
	assert.Equal(t, models.NotificationInfo, first.Kind)
	assert.Equal(t, models.NotificationError, second.Kind)

	unsubscribe()
	unsubscribe()
	_, open := <-events
	assert.False(t, open)
}

func TestNotificator_MirrorsAndSurvivesPanics(t *testing.T) {
	mirror := newRecordingMirror()
	n := NewNotificator(logger.NewNop(), 10, panickingMirror{}, mirror)

	n.Push(models.NotificationSuccess, "done")

	got := mirror.wait(t, 1)
	require.Len(t, got, 1)
	assert.Equal(t, "done", got[0].Message)
}

func TestEmailNotificator_OnlyErrors(t *testing.T) {
	e := NewEmailNotificator(logger.NewNop(), "smtp.example.com", 587, "", "", "from@example.com", "ops@example.com")

	var sent []string
	e.sendMail = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		assert.Equal(t, "smtp.example.com:587", addr)
		assert.Equal(t, []string{"ops@example.com"}, to)
		sent = append(sent, string(msg))
		return nil
	}

	e.Deliver(models.Notification{Kind: models.NotificationSuccess, Message: "ok"})
	e.Deliver(models.Notification{Kind: models.NotificationError, Message: "token request failed"})

	require.Len(t, sent, 1)
	assert.Contains(t, sent[0], "token request failed")
}

func TestEmailNotificator_SendFailureIsLogged(t *testing.T) {
	e := NewEmailNotificator(logger.NewNop(), "smtp.example.com", 587, "", "", "from@example.com", "ops@example.com")
	e.sendMail = func(string, smtp.Auth, string, []string, []byte) error {
		return errors.New("connection refused")
	}

	assert.NotPanics(t, func() {
		e.Deliver(models.Notification{Kind: models.NotificationError, Message: "x"})
	})
}

func TestTelegramNotificator_SendsOutcomes(t *testing.T) {
	var mu sync.Mutex
	var bodies []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/sendMessage") {
			body, _ := io.ReadAll(r.Body)
			mu.Lock()
			bodies = append(bodies, string(body))
			mu.Unlock()
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":1,"date":0,"chat":{"id":42,"type":"private"}}}`))
	}))
	defer server.Close()

	tg, err := NewTelegramNotificator(logger.NewNop(), "123:abc", "42", bot.WithServerURL(server.URL))
	require.NoError(t, err)

	tg.Deliver(models.Notification{Kind: models.NotificationLoading, Message: "Creating token..."})
	tg.Deliver(models.Notification{Kind: models.NotificationSuccess, Message: "Token created"})

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, bodies, 1)
	assert.Contains(t, bodies[0], "Token created")
}
