// Package resttimer is the between-sets countdown. One timer per owner,
// ticking once a second while running. The timer owns no shared data and
// never blocks other components.
package resttimer

import (
	"sync"
	"time"
)

// Timer counts down from a fixed number of seconds. Start resumes from
// where Pause left off; Reset rearms the full duration. Done is closed when
// the countdown reaches zero and stays closed until the next Reset.
type Timer struct {
	mutex     sync.Mutex
	total     int
	remaining int
	running   bool
	tick      time.Duration
	stopCh    chan struct{}
	doneCh    chan struct{}
}

func NewTimer(seconds int) *Timer {
	if seconds <= 0 {
		seconds = 1
	}
	return &Timer{
		total:     seconds,
		remaining: seconds,
		tick:      time.Second,
		doneCh:    make(chan struct{}),
	}
}

func (t *Timer) Start() {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	if t.running || t.remaining <= 0 {
		return
	}
	t.running = true
	t.stopCh = make(chan struct{})
	go t.run(t.stopCh, t.doneCh)
}

func (t *Timer) Pause() {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	t.stopLocked()
}

// Reset stops the countdown and rearms the full duration, with a fresh done
// channel.
func (t *Timer) Reset() {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.stopLocked()
	t.remaining = t.total
	t.doneCh = make(chan struct{})
}

// Rearm sets a new total duration and resets.
func (t *Timer) Rearm(seconds int) {
	if seconds <= 0 {
		seconds = 1
	}

	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.stopLocked()
	t.total = seconds
	t.remaining = seconds
	t.doneCh = make(chan struct{})
}

func (t *Timer) stopLocked() {
	if !t.running {
		return
	}
	t.running = false
	close(t.stopCh)
	t.stopCh = nil
}

func (t *Timer) Remaining() int {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return t.remaining
}

func (t *Timer) Total() int {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return t.total
}

func (t *Timer) Running() bool {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return t.running
}

func (t *Timer) Done() <-chan struct{} {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return t.doneCh
}

func (t *Timer) run(stopCh, doneCh chan struct{}) {
	ticker := time.NewTicker(t.tick)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			t.mutex.Lock()
			if !t.running || t.doneCh != doneCh {
				t.mutex.Unlock()
				return
			}
			t.remaining--
			if t.remaining <= 0 {
				t.remaining = 0
				t.running = false
				t.stopCh = nil
				close(doneCh)
				t.mutex.Unlock()
				return
			}
			t.mutex.Unlock()
		}
	}
}
