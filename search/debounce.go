package search

import (
	"sync"
	"time"
)

// DefaultDebounce is the quiescence window applied to overlay keystrokes.
const DefaultDebounce = 250 * time.Millisecond

// Debouncer mirrors a rapidly-changing input value, emitting it only after
// the input has been stable for the full delay. Every Set restarts the
// timer; intermediate values of a burst are dropped, never queued. After
// Close nothing is ever emitted again.
type Debouncer struct {
	delay time.Duration
	in    chan string
	out   chan string
	done  chan struct{}
	once  sync.Once
}

func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	d := &Debouncer{
		delay: delay,
		in:    make(chan string),
		out:   make(chan string),
		done:  make(chan struct{}),
	}
	go d.run()
	return d
}

// Set feeds a new input value. Safe to call from any goroutine; a no-op
// after Close.
func (d *Debouncer) Set(v string) {
	select {
	case d.in <- v:
	case <-d.done:
	}
}

// Out delivers settled values. The channel is never closed; consumers should
// select against their own shutdown signal.
func (d *Debouncer) Out() <-chan string {
	return d.out
}

// Close cancels any pending timer. A value whose window has not yet elapsed
// is discarded, not flushed.
func (d *Debouncer) Close() {
	d.once.Do(func() { close(d.done) })
}

func (d *Debouncer) run() {
	var (
		timer   *time.Timer
		fire    <-chan time.Time
		pending string
	)
	stopTimer := func() {
		if timer != nil {
			timer.Stop()
			timer = nil
			fire = nil
		}
	}
	for {
		select {
		case v := <-d.in:
			pending = v
			stopTimer()
			timer = time.NewTimer(d.delay)
			fire = timer.C
		case <-fire:
			timer = nil
			fire = nil
			select {
			case d.out <- pending:
			case <-d.done:
				return
			}
		case <-d.done:
			stopTimer()
			return
		}
	}
}
