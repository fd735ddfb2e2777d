package hidapi

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/ruabmbua/hidapi-go/internal/native"
)

// runLoopSlice bounds one native event-loop call so the pump re-checks its
// flags at least this often even if the wake source is never signaled.
const runLoopSlice = time.Second

// reportPump owns the state shared between a device handle and its dedicated
// reader goroutine. The goroutine schedules the device on its own run loop,
// receives asynchronous input-report callbacks and funnels them into the
// bounded queue; the foreground side reads from the queue and drives shutdown.
type reportPump struct {
	log zerolog.Logger

	// devMu guards every native call on dev: the device object is not safe
	// for concurrent use from two threads.
	devMu sync.Mutex
	dev   native.Device

	// loopMu guards loop and wakeSrc, which are written once by the pump
	// goroutine during startup and read by the foreground during teardown.
	loopMu  sync.Mutex
	loop    native.RunLoop
	wakeSrc native.WakeSource

	// disconnected is set by the removal callback and never cleared.
	disconnected atomic.Bool
	// shutdown is set by Close and never cleared.
	shutdown atomic.Bool

	queue *reportQueue

	// started is closed once callbacks are installed and the run-loop handle
	// is published; open blocks on it before returning.
	started chan struct{}
	// stopped is closed when the pump reaches its terminal state; Close
	// blocks on it before releasing the native handle.
	stopped chan struct{}
}

func newReportPump(dev native.Device, log zerolog.Logger) *reportPump {
	return &reportPump{
		log:     log,
		dev:     dev,
		queue:   newReportQueue(),
		started: make(chan struct{}),
		stopped: make(chan struct{}),
	}
}

// run is the reader goroutine body. mode is the run-loop mode private to this
// device, so multiple open devices never dispatch through each other's loops.
func (p *reportPump) run(sys native.System, mode string, inputBufSize int) {
	// The run loop below belongs to this OS thread; the goroutine must not
	// migrate while the device is scheduled on it.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	loop := sys.CurrentRunLoop()

	// The callback registration keeps a reference to this buffer for its
	// whole lifetime; the guard holds it alive until Unregister.
	inputBuf := make([]byte, inputBufSize)

	p.devMu.Lock()
	guard := p.dev.RegisterInputReportCallback(inputBuf, p.onReport)
	p.dev.RegisterRemovalCallback(p.onRemoval)
	p.dev.ScheduleWithRunLoop(loop, mode)
	p.devMu.Unlock()

	wakeSrc := sys.NewWakeSource()
	loop.AddSource(wakeSrc, mode)

	p.loopMu.Lock()
	p.loop = loop
	p.wakeSrc = wakeSrc
	p.loopMu.Unlock()

	// Startup handshake: from here on the pump can receive and queue reports.
	close(p.started)

	for !p.shutdown.Load() && !p.disconnected.Load() {
		switch res := loop.RunInMode(mode, runLoopSlice); res {
		case native.RunFinished:
			// The device's loop source was invalidated: it is gone.
			p.disconnected.Store(true)
			p.log.Debug().Msg("run loop finished, device removed")
		case native.RunTimedOut, native.RunHandledSource:
		default:
			// Anything else is a loop fault. The disconnected flag keeps
			// meaning "the removal callback fired", so mark the generic
			// shutdown instead: readers blocked past the drain broadcast
			// must still find a terminal flag set when they re-check.
			p.log.Warn().Int("result", int(res)).Msg("run loop fault, stopping reader")
			p.shutdown.Store(true)
			p.drain(guard)
			return
		}
	}

	p.drain(guard)
}

// drain is the Draining state: release blocked readers, tear the callbacks
// down, and signal the shutdown barrier. The run loop is not touched again.
func (p *reportPump) drain(guard native.CallbackGuard) {
	p.queue.broadcast()

	p.devMu.Lock()
	guard.Unregister()
	p.dev.UnregisterRemovalCallback()
	p.devMu.Unlock()

	p.loopMu.Lock()
	wakeSrc := p.wakeSrc
	p.loopMu.Unlock()
	wakeSrc.Invalidate()

	close(p.stopped)
}

// onReport runs on the pump goroutine via the native input-report callback.
// The native buffer is reused between callbacks, so the report is copied
// before it goes into the queue.
func (p *reportPump) onReport(report []byte) {
	buf := make([]byte, len(report))
	copy(buf, report)

	if p.queue.push(buf) {
		p.log.Debug().Int("len", len(buf)).Msg("report queue full, dropped oldest")
	}
}

// onRemoval runs on the pump goroutine via the native removal callback. It
// marks the device gone and kicks the run loop so the blocking RunInMode call
// returns promptly instead of waiting out its slice.
func (p *reportPump) onRemoval() {
	p.disconnected.Store(true)
	p.log.Debug().Msg("device removal callback fired")
	p.wake()
}

// wake forces a blocked RunInMode call on the pump goroutine to return. Safe
// from any goroutine: the wake source and the loop waker are the documented
// cross-thread entry points.
func (p *reportPump) wake() {
	p.loopMu.Lock()
	wakeSrc, loop := p.wakeSrc, p.loop
	p.loopMu.Unlock()

	if wakeSrc != nil {
		wakeSrc.Signal()
	}
	if loop != nil {
		loop.Waker().WakeUp()
	}
}
