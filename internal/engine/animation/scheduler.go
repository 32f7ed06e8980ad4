package animation

import (
	"sync"
	"sync/atomic"
	"time"
)

// FrameID identifies a requested frame callback.
type FrameID uint64

// FrameScheduler runs a callback on the next display frame.
type FrameScheduler interface {
	RequestFrame(cb func()) FrameID
	CancelFrame(id FrameID)
}

type frameEntry struct {
	id FrameID
	cb func()
}

// frameQueue holds callbacks for the next frame.
type frameQueue struct {
	mu    sync.Mutex
	next  FrameID
	queue []frameEntry
}

func (q *frameQueue) RequestFrame(cb func()) FrameID {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.next++
	q.queue = append(q.queue, frameEntry{id: q.next, cb: cb})
	return q.next
}

func (q *frameQueue) CancelFrame(id FrameID) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for i, e := range q.queue {
		if e.id == id {
			q.queue = append(q.queue[:i], q.queue[i+1:]...)
			return
		}
	}
}

// Pending returns the number of queued callbacks.
func (q *frameQueue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.queue)
}

// run executes the callbacks queued so far. Callbacks requested while
// running wait for the next frame.
func (q *frameQueue) run() int {
	q.mu.Lock()
	batch := q.queue
	q.queue = nil
	q.mu.Unlock()

	for _, e := range batch {
		e.cb()
	}
	return len(batch)
}

// VSyncScheduler is driven by the window loop: RunFrame is called once per
// presented frame, right after the buffer swap.
type VSyncScheduler struct {
	frameQueue
}

// NewVSyncScheduler creates an empty scheduler.
func NewVSyncScheduler() *VSyncScheduler {
	return &VSyncScheduler{}
}

// RunFrame runs the callbacks queued for this frame and returns how many ran.
func (s *VSyncScheduler) RunFrame() int {
	return s.run()
}

// TickerScheduler runs frame callbacks from its own goroutine at a fixed
// rate, for rendering without a display.
type TickerScheduler struct {
	frameQueue

	interval time.Duration
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewTickerScheduler creates a scheduler ticking fps times per second.
func NewTickerScheduler(fps int) *TickerScheduler {
	if fps <= 0 {
		fps = 60
	}
	return &TickerScheduler{
		interval: time.Second / time.Duration(fps),
		stopChan: make(chan struct{}),
	}
}

// Start begins ticking.
func (s *TickerScheduler) Start() {
	if s.running.CompareAndSwap(false, true) {
		s.wg.Add(1)
		go s.loop()
	}
}

// Stop halts ticking and waits for an in-flight frame to finish.
func (s *TickerScheduler) Stop() {
	s.stopOnce.Do(func() {
		if s.running.CompareAndSwap(true, false) {
			close(s.stopChan)
			s.wg.Wait()
		}
	})
}

func (s *TickerScheduler) loop() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.run()
		}
	}
}
