package notify

import (
	"io"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"
)

// Balloon is a fallback tray notice emitted when the primary channel is
// unavailable or fails, and for notices that are tray-only by design.
type Balloon struct {
	Title string
	Body  string
}

// Dispatcher delivers messages off the UI thread. Enqueue never blocks;
// messages that do not fit the queue are counted and dropped. Primary
// delivery failure degrades unconditionally to a Balloon on C(), which
// the update loop marshals back onto the Bubble Tea thread. Delivery
// errors are logged for diagnostics and never surfaced to the user.
type Dispatcher struct {
	mu       sync.Mutex
	primary  Notifier
	queue    chan Message
	balloons chan Balloon
	stopCh   chan struct{}
	doneCh   chan struct{}
	logger   *log.Logger
	started  bool
	stopped  bool
	dropped  uint64
}

func NewDispatcher(primary Notifier, bufferSize int, logger *log.Logger) *Dispatcher {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	if primary == nil {
		primary = NoopNotifier{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Dispatcher{
		primary:  primary,
		queue:    make(chan Message, bufferSize),
		balloons: make(chan Balloon, bufferSize),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
		logger:   logger,
	}
}

// C is the fallback balloon channel. Closed on Stop.
func (d *Dispatcher) C() <-chan Balloon {
	return d.balloons
}

func (d *Dispatcher) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.started {
		return
	}
	d.started = true
	go d.loop()
}

func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if !d.started || d.stopped {
		d.mu.Unlock()
		return
	}
	d.stopped = true
	close(d.stopCh)
	d.mu.Unlock()
	<-d.doneCh
}

// Enqueue hands a message to the delivery goroutine without blocking.
func (d *Dispatcher) Enqueue(msg Message) {
	select {
	case d.queue <- msg:
	default:
		atomic.AddUint64(&d.dropped, 1)
	}
}

// Dropped reports how many messages did not fit the queue.
func (d *Dispatcher) Dropped() uint64 {
	return atomic.LoadUint64(&d.dropped)
}

func (d *Dispatcher) loop() {
	defer close(d.doneCh)
	defer close(d.balloons)

	for {
		select {
		case msg := <-d.queue:
			d.deliver(msg)
		case <-d.stopCh:
			return
		}
	}
}

func (d *Dispatcher) deliver(msg Message) {
	err := d.primary.Send(msg)
	if err == nil {
		return
	}
	d.logger.Warn("primary notification failed, using tray balloon", "title", msg.Title, "err", err)
	select {
	case d.balloons <- Balloon{Title: msg.Title, Body: msg.Body}:
	default:
		atomic.AddUint64(&d.dropped, 1)
	}
}
