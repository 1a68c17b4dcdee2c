package dispatch

import (
	"fmt"
	"runtime/debug"
	"sync"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Queue runs updates on a fixed set of workers. Updates with the same key
// always land on the same worker and run in submission order.
type Queue struct {
	shards []chan tele.Update
	handle func(tele.Update)
	logger *zap.Logger

	wg     sync.WaitGroup
	mu     sync.RWMutex
	closed bool
}

// NewQueue starts workers goroutines, each with a buffer of the given size
func NewQueue(workers, buffer int, handle func(tele.Update), logger *zap.Logger) *Queue {
	if workers <= 0 {
		workers = 1
	}

	q := &Queue{
		shards: make([]chan tele.Update, workers),
		handle: handle,
		logger: logger,
	}

	for i := range q.shards {
		q.shards[i] = make(chan tele.Update, buffer)
		q.wg.Add(1)
		go q.work(i)
	}

	return q
}

// Submit queues the update on the worker owning key. It blocks while that
// worker's buffer is full.
func (q *Queue) Submit(key int64, u tele.Update) error {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return fmt.Errorf("queue is closed")
	}

	q.shards[q.shard(key)] <- u
	return nil
}

// Close stops accepting updates and waits until the queued ones are handled
func (q *Queue) Close() {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		for _, ch := range q.shards {
			close(ch)
		}
	}
	q.mu.Unlock()

	q.wg.Wait()
}

func (q *Queue) shard(key int64) int {
	return int(uint64(key) % uint64(len(q.shards)))
}

func (q *Queue) work(id int) {
	defer q.wg.Done()

	for u := range q.shards[id] {
		q.run(id, u)
	}
}

func (q *Queue) run(id int, u tele.Update) {
	defer func() {
		if r := recover(); r != nil {
			q.logger.Error("Panic while processing update",
				zap.Int("worker", id),
				zap.Int("update_id", u.ID),
				zap.Any("panic", r),
				zap.String("stack", string(debug.Stack())),
			)
		}
	}()

	q.handle(u)
}
