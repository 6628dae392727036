package session

import (
	"sync"
	"time"
)

// Tick is a single elapsed-second event.
type Tick struct {
	At time.Time
}

// Clock emits ticks at a fixed interval while armed. Ticks are read from
// Ticks until Done is closed. Once Stop returns, no further tick is sent.
type Clock interface {
	Start()
	Stop()
	Ticks() <-chan Tick
	Done() <-chan struct{}
}

// Ticker is a Clock driven by a time.Ticker.
type Ticker struct {
	ticks    chan Tick
	done     chan struct{}
	wg       sync.WaitGroup
	stopOnce sync.Once
	interval time.Duration
	started  bool
}

// NewTicker returns an unarmed Ticker that fires every interval.
func NewTicker(interval time.Duration) *Ticker {
	return &Ticker{
		interval: interval,
		ticks:    make(chan Tick),
		done:     make(chan struct{}),
	}
}

// Start arms the clock. It may only be called once; later calls and calls
// after Stop are ignored.
func (t *Ticker) Start() {
	select {
	case <-t.done:
		return
	default:
	}

	if t.started {
		return
	}

	t.started = true

	t.wg.Add(1)

	go t.run()
}

func (t *Ticker) run() {
	defer t.wg.Done()

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-t.done:
			return
		case now := <-ticker.C:
			select {
			case t.ticks <- Tick{At: now}:
			case <-t.done:
				return
			}
		}
	}
}

// Stop disarms the clock and waits for the ticking goroutine to exit.
func (t *Ticker) Stop() {
	t.stopOnce.Do(func() {
		close(t.done)
	})

	t.wg.Wait()
}

// Ticks returns the channel on which ticks are delivered. It is never closed;
// select on Done as well.
func (t *Ticker) Ticks() <-chan Tick {
	return t.ticks
}

// Done is closed when the clock is stopped.
func (t *Ticker) Done() <-chan struct{} {
	return t.done
}
