package notification

import (
	"sync"

	"github.com/amirhossein-jamali/lease-processor/internal/domain/port/collaborator"
	coreport "github.com/amirhossein-jamali/lease-processor/internal/domain/port/core"
)

// AsyncNotifier dispatches notifications on a background worker so a state
// transition never waits on delivery. When the queue is full the message is
// dropped and logged; delivery guarantees belong to the external
// notification service, not this process.
type AsyncNotifier struct {
	queue    chan collaborator.Notification
	logger   coreport.Logger
	wg       sync.WaitGroup
	stopOnce sync.Once
	stop     chan struct{}
}

// NewAsyncNotifier creates a notifier with the given queue capacity and
// starts its worker goroutine.
func NewAsyncNotifier(queueLen int, logger coreport.Logger) *AsyncNotifier {
	if queueLen <= 0 {
		queueLen = 256
	}

	n := &AsyncNotifier{
		queue:  make(chan collaborator.Notification, queueLen),
		logger: logger,
		stop:   make(chan struct{}),
	}

	n.wg.Add(1)
	go n.worker()

	return n
}

// Notify enqueues a notification without blocking the caller
func (n *AsyncNotifier) Notify(notification collaborator.Notification) {
	select {
	case n.queue <- notification:
	default:
		n.logger.Warn("Notification queue full, dropping message", map[string]any{
			"recipient_id": notification.RecipientID,
			"kind":         string(notification.Kind),
		})
	}
}

// Close stops the worker after draining queued messages
func (n *AsyncNotifier) Close() {
	n.stopOnce.Do(func() {
		close(n.stop)
	})
	n.wg.Wait()
}

func (n *AsyncNotifier) worker() {
	defer n.wg.Done()

	for {
		select {
		case notification := <-n.queue:
			n.deliver(notification)
		case <-n.stop:
			// Drain what is already queued, then exit
			for {
				select {
				case notification := <-n.queue:
					n.deliver(notification)
				default:
					return
				}
			}
		}
	}
}

// deliver hands the message to the delivery channel. The development build
// logs it; a production deployment would call the notification service here.
func (n *AsyncNotifier) deliver(notification collaborator.Notification) {
	n.logger.Info("Dispatching notification", map[string]any{
		"recipient_id": notification.RecipientID,
		"kind":         string(notification.Kind),
		"title":        notification.Title,
	})
}
