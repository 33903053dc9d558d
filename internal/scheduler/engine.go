package scheduler

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/sandeepkv93/routined/internal/model"
)

// DayEvent announces a local calendar day change.
type DayEvent struct {
	Day       string
	TriggerAt time.Time
}

// Clock emits one DayEvent per local midnight so the UI can move its
// today marker and recompute streaks without polling.
type Clock struct {
	mu      sync.Mutex
	out     chan DayEvent
	stopCh  chan struct{}
	doneCh  chan struct{}
	started bool
	stopped bool
	dropped uint64
	now     func() time.Time
}

func NewClock(bufferSize int) *Clock {
	return NewClockAt(bufferSize, time.Now)
}

func NewClockAt(bufferSize int, now func() time.Time) *Clock {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	return &Clock{
		out:    make(chan DayEvent, bufferSize),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
		now:    now,
	}
}

func (c *Clock) C() <-chan DayEvent {
	return c.out
}

func (c *Clock) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.started {
		return
	}
	c.started = true
	go c.loop()
}

func (c *Clock) Stop() {
	c.mu.Lock()
	if !c.started || c.stopped {
		c.mu.Unlock()
		return
	}
	c.stopped = true
	close(c.stopCh)
	c.mu.Unlock()
	<-c.doneCh
}

func (c *Clock) Dropped() uint64 {
	return atomic.LoadUint64(&c.dropped)
}

func (c *Clock) loop() {
	defer close(c.doneCh)
	defer close(c.out)

	var timer *time.Timer
	next := NextRollover(c.now())
	for {
		wait := next.Sub(c.now())
		if wait < 0 {
			wait = 0
		}
		timer = resetTimer(timer, wait)

		select {
		case <-timer.C:
			ev := DayEvent{Day: model.DayKey(next), TriggerAt: next}
			select {
			case c.out <- ev:
			default:
				atomic.AddUint64(&c.dropped, 1)
			}
			next = NextRollover(next)
		case <-c.stopCh:
			stopTimer(timer)
			return
		}
	}
}

// NextRollover is the first local midnight strictly after t.
func NextRollover(t time.Time) time.Time {
	y, m, d := t.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	return model.AddDays(midnight, 1)
}

func resetTimer(timer *time.Timer, d time.Duration) *time.Timer {
	if timer == nil {
		return time.NewTimer(d)
	}
	stopTimer(timer)
	timer.Reset(d)
	return timer
}

func stopTimer(timer *time.Timer) {
	if timer == nil {
		return
	}
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
}
