package queue

import (
	"errors"
	"sync"

	"estatehub/server/internal/models"

	"github.com/sirupsen/logrus"
)

var (
	ErrQueueFull   = errors.New("queue is full")
	ErrQueueClosed = errors.New("queue is closed")
)

// InquiryQueue buffers inquiry batches between the HTTP handlers and the
// persistence pipeline. Handlers push and move on; subscribers drain.
type InquiryQueue struct {
	items    chan []*models.Inquiry
	done     chan struct{}
	maxSize  int
	closed   bool
	mu       sync.RWMutex
	logger   *logrus.Logger
	handlers []func([]*models.Inquiry) error
}

func NewInquiryQueue(bufferSize int, logger *logrus.Logger) *InquiryQueue {
	return &InquiryQueue{
		items:    make(chan []*models.Inquiry, bufferSize),
		done:     make(chan struct{}),
		maxSize:  bufferSize,
		logger:   logger,
		handlers: make([]func([]*models.Inquiry) error, 0),
	}
}

// Push enqueues a batch. A saturated queue returns ErrQueueFull immediately
// rather than blocking the request goroutine.
func (q *InquiryQueue) Push(inquiries []*models.Inquiry) error {
	q.mu.RLock()
	if q.closed {
		q.mu.RUnlock()
		return ErrQueueClosed
	}
	q.mu.RUnlock()

	select {
	case q.items <- inquiries:
		q.logger.WithField("batch_size", len(inquiries)).Debug("Queued inquiry batch")
		return nil
	default:
		return ErrQueueFull
	}
}

// Subscribe registers a handler for every dispatched batch.
func (q *InquiryQueue) Subscribe(handler func([]*models.Inquiry) error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.handlers = append(q.handlers, handler)
}

// Start spawns the dispatch loop.
func (q *InquiryQueue) Start() {
	go q.process()
}

func (q *InquiryQueue) process() {
	for {
		select {
		case <-q.done:
			return
		case batch := <-q.items:
			q.dispatch(batch)
		}
	}
}

// dispatch hands a batch to every handler; one handler failing does not stop
// the others.
func (q *InquiryQueue) dispatch(batch []*models.Inquiry) {
	q.mu.RLock()
	handlers := q.handlers
	q.mu.RUnlock()

	for _, handler := range handlers {
		if err := handler(batch); err != nil {
			q.logger.WithError(err).Error("Inquiry batch handler failed")
		}
	}
}

// Close stops dispatch and rejects further pushes. Closing twice is a no-op.
func (q *InquiryQueue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return nil
	}

	q.closed = true
	close(q.done)
	close(q.items)
	return nil
}

// Len reports the number of batches waiting for dispatch.
func (q *InquiryQueue) Len() int {
	return len(q.items)
}

func (q *InquiryQueue) IsClosed() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.closed
}
