package notificator

import (
	"runtime/debug"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/core-coin/tokenforge/internal/models"
	"github.com/core-coin/tokenforge/pkg/logger"
)

// subscriberBuffer is the per-subscriber channel size. A subscriber that
// falls this far behind misses events instead of blocking publishers.
const subscriberBuffer = 16

// Mirror receives a copy of every published or updated notification.
type Mirror interface {
	Name() string
	Deliver(notification models.Notification)
}

// Notificator keeps a bounded window of recent notifications, streams
// changes to subscribers and mirrors them to external channels.
type Notificator struct {
	logger *logger.Logger
	window int

	mu          sync.Mutex
	order       []string
	byID        map[string]*models.Notification
	subscribers map[chan models.Notification]struct{}

	mirrors []Mirror
	now     func() time.Time
}

func NewNotificator(logger *logger.Logger, window int, mirrors ...Mirror) *Notificator {
	if window <= 0 {
		window = 50
	}
	return &Notificator{
		logger:      logger,
		window:      window,
		byID:        make(map[string]*models.Notification),
		subscribers: make(map[chan models.Notification]struct{}),
		mirrors:     mirrors,
		now:         time.Now,
	}
}

// Push publishes a new notification.
func (n *Notificator) Push(kind models.NotificationKind, message string) models.Notification {
	now := n.now()
	notification := models.Notification{
		ID:        uuid.NewString(),
		Kind:      kind,
		Message:   message,
		CreatedAt: now,
		UpdatedAt: now,
	}

	n.mu.Lock()
	n.byID[notification.ID] = &notification
	n.order = append(n.order, notification.ID)
	for len(n.order) > n.window {
		delete(n.byID, n.order[0])
		n.order = n.order[1:]
	}
	n.mu.Unlock()

	n.dispatch(notification)
	return notification
}

// Update replaces the kind and message of an existing notification.
// It reports false when the notification has already left the window.
func (n *Notificator) Update(id string, kind models.NotificationKind, message string) (models.Notification, bool) {
	n.mu.Lock()
	existing, ok := n.byID[id]
	if !ok {
		n.mu.Unlock()
		return models.Notification{}, false
	}
	existing.Kind = kind
	existing.Message = message
	existing.UpdatedAt = n.now()
	updated := *existing
	n.mu.Unlock()

	n.dispatch(updated)
	return updated, true
}

// Recent returns the notifications in the window, oldest first.
func (n *Notificator) Recent() []models.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	out := make([]models.Notification, 0, len(n.order))
	for _, id := range n.order {
		out = append(out, *n.byID[id])
	}
	return out
}

// Subscribe returns a stream of published and updated notifications and a
// function that ends the subscription.
func (n *Notificator) Subscribe() (<-chan models.Notification, func()) {
	ch := make(chan models.Notification, subscriberBuffer)

	n.mu.Lock()
	n.subscribers[ch] = struct{}{}
	n.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			n.mu.Lock()
			delete(n.subscribers, ch)
			n.mu.Unlock()
			close(ch)
		})
	}
}

func (n *Notificator) dispatch(notification models.Notification) {
	n.logger.Info("Notification", "id", notification.ID, "kind", notification.Kind, "message", notification.Message)

	n.mu.Lock()
	for ch := range n.subscribers {
		select {
		case ch <- notification:
		default:
			n.logger.Warn("Dropping notification for slow subscriber", "id", notification.ID)
		}
	}
	n.mu.Unlock()

	for _, mirror := range n.mirrors {
		mirror := mirror
		go n.safeCall(func() { mirror.Deliver(notification) }, mirror.Name())
	}
}

// safeCall runs a function with panic recovery
func (n *Notificator) safeCall(fn func(), context string) {
	defer func() {
		if r := recover(); r != nil {
			n.logger.Error("Function panicked",
				"context", context,
				"panic", r,
				"stack", string(debug.Stack()))
		}
	}()
	fn()
}
