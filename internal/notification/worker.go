package notification

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"artist-booking-backend/internal/metrics"
)

// DefaultSendTimeout bounds a single sender call.
const DefaultSendTimeout = 10 * time.Second

// WorkerPool fans notices out to every configured sender.
type WorkerPool struct {
	size        int
	jobs        chan Notice
	senders     []Sender
	sendTimeout time.Duration
	log         *zap.Logger
	wg          sync.WaitGroup
}

// NewWorkerPool creates a new worker pool with a bounded queue.
func NewWorkerPool(size, queueSize int, log *zap.Logger, senders ...Sender) *WorkerPool {
	if size <= 0 {
		size = 1
	}
	if queueSize <= 0 {
		queueSize = size
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &WorkerPool{
		size:        size,
		jobs:        make(chan Notice, queueSize),
		senders:     senders,
		sendTimeout: DefaultSendTimeout,
		log:         log,
	}
}

// SetSendTimeout changes the per-sender deadline. Call it before Start.
func (wp *WorkerPool) SetSendTimeout(d time.Duration) {
	if d > 0 {
		wp.sendTimeout = d
	}
}

// Start launches the worker goroutines. They exit when ctx is cancelled.
func (wp *WorkerPool) Start(ctx context.Context) {
	for i := 0; i < wp.size; i++ {
		wp.wg.Add(1)
		go wp.worker(ctx, i)
	}
}

// Wait blocks until every worker has exited.
func (wp *WorkerPool) Wait() {
	wp.wg.Wait()
}

func (wp *WorkerPool) worker(ctx context.Context, id int) {
	defer wp.wg.Done()
	wp.log.Debug("notification worker started", zap.Int("worker", id))
	for {
		select {
		case n := <-wp.jobs:
			wp.deliver(ctx, n)
		case <-ctx.Done():
			wp.log.Debug("notification worker shutting down", zap.Int("worker", id))
			return
		}
	}
}

// Dispatch queues a notice without blocking. It reports false when the
// queue is full and the notice was dropped.
func (wp *WorkerPool) Dispatch(n Notice) bool {
	select {
	case wp.jobs <- n:
		return true
	default:
		wp.log.Warn("notification queue full, dropping notice", zap.String("booking_id", n.BookingID))
		metrics.IncNotification("queue", "dropped")
		return false
	}
}

// deliver runs every sender; one failing channel does not stop the rest.
func (wp *WorkerPool) deliver(ctx context.Context, n Notice) {
	for _, s := range wp.senders {
		if err := wp.send(ctx, s, n); err != nil {
			wp.log.Error("failed to send notification",
				zap.String("channel", s.Channel()),
				zap.String("booking_id", n.BookingID),
				zap.Error(err),
			)
			metrics.IncNotification(s.Channel(), "error")
			continue
		}
		metrics.IncNotification(s.Channel(), "sent")
	}
}

func (wp *WorkerPool) send(ctx context.Context, s Sender, n Notice) error {
	ctx, cancel := context.WithTimeout(ctx, wp.sendTimeout)
	defer cancel()
	return s.Send(ctx, n)
}
