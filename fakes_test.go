package hidapi

import (
	"sync"
	"time"

	"github.com/ruabmbua/hidapi-go/internal/native"
)

// Scripted fakes for the native layer. The fake run loop blocks like the real
// one but can be fed results and woken from the test goroutine, which keeps
// the pump's startup and shutdown handshakes observable without real IOKit.

type fakeSystem struct {
	loop *fakeRunLoop
	main *fakeRunLoop
}

func newFakeSystem() *fakeSystem {
	return &fakeSystem{
		loop: newFakeRunLoop(),
		main: newFakeRunLoop(),
	}
}

func (s *fakeSystem) NewDeviceManager() (native.DeviceManager, int32) { return nil, -1 }
func (s *fakeSystem) ResolvePath(string) (native.Device, bool)        { return nil, false }
func (s *fakeSystem) CurrentRunLoop() native.RunLoop                  { return s.loop }
func (s *fakeSystem) MainRunLoop() native.RunLoop                     { return s.main }

func (s *fakeSystem) NewWakeSource() native.WakeSource {
	return &fakeWakeSource{loop: s.loop}
}

type fakeRunLoop struct {
	mu      sync.Mutex
	results []native.RunResult
	wake    chan struct{}

	added   []native.WakeSource
	removed []native.WakeSource
}

func newFakeRunLoop() *fakeRunLoop {
	return &fakeRunLoop{wake: make(chan struct{}, 16)}
}

// script queues results for upcoming RunInMode calls.
func (l *fakeRunLoop) script(results ...native.RunResult) {
	l.mu.Lock()
	l.results = append(l.results, results...)
	l.mu.Unlock()
	l.signal()
}

func (l *fakeRunLoop) signal() {
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

func (l *fakeRunLoop) RunInMode(mode string, timeout time.Duration) native.RunResult {
	for {
		l.mu.Lock()
		if len(l.results) > 0 {
			res := l.results[0]
			l.results = l.results[1:]
			l.mu.Unlock()
			return res
		}
		l.mu.Unlock()

		select {
		case <-l.wake:
			// A scripted result may have been queued with the wake-up;
			// otherwise behave like a loop that dispatched a source.
			l.mu.Lock()
			empty := len(l.results) == 0
			l.mu.Unlock()
			if empty {
				return native.RunHandledSource
			}
		case <-time.After(timeout):
			return native.RunTimedOut
		}
	}
}

func (l *fakeRunLoop) AddSource(src native.WakeSource, mode string) {
	l.mu.Lock()
	l.added = append(l.added, src)
	l.mu.Unlock()
}

func (l *fakeRunLoop) RemoveSource(src native.WakeSource, mode string) {
	l.mu.Lock()
	l.removed = append(l.removed, src)
	l.mu.Unlock()
}

func (l *fakeRunLoop) Waker() native.LoopWaker { return &fakeWaker{loop: l} }

type fakeWaker struct {
	loop *fakeRunLoop
}

func (w *fakeWaker) WakeUp() { w.loop.signal() }
func (w *fakeWaker) Stop()   {}

type fakeWakeSource struct {
	loop *fakeRunLoop

	mu          sync.Mutex
	signals     int
	invalidated bool
}

func (s *fakeWakeSource) Signal() {
	s.mu.Lock()
	s.signals++
	s.mu.Unlock()
	s.loop.signal()
}

func (s *fakeWakeSource) Invalidate() {
	s.mu.Lock()
	s.invalidated = true
	s.mu.Unlock()
}

func (s *fakeWakeSource) wasInvalidated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.invalidated
}

type fakeGuard struct {
	mu           sync.Mutex
	unregistered bool
}

func (g *fakeGuard) Unregister() {
	g.mu.Lock()
	g.unregistered = true
	g.mu.Unlock()
}

func (g *fakeGuard) wasUnregistered() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.unregistered
}

// fakeDevice records every native call and lets tests fire the registered
// callbacks as if the run loop dispatched them.
type fakeDevice struct {
	mu sync.Mutex

	intProps    map[string]int32
	stringProps map[string]string
	dataProps   map[string][]byte

	reportCB  native.ReportCallback
	removalCB func()
	guard     *fakeGuard

	openStatus  int32
	closeStatus int32
	openOpts    []native.OpenOptions
	closeOpts   []native.OpenOptions

	setReportStatus int32
	setReportCalls  int
	lastSetType     native.ReportType
	lastSetID       int32
	lastSetData     []byte

	getReportStatus int32
	getReportCalls  int
	getReportData   []byte
	lastGetType     native.ReportType
	lastGetID       int32

	scheduled   []native.RunLoop
	unscheduled []native.RunLoop

	releases int
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		intProps:    map[string]int32{},
		stringProps: map[string]string{},
		dataProps:   map[string][]byte{},
	}
}

func (d *fakeDevice) IntProperty(key string) (int32, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	v, ok := d.intProps[key]
	return v, ok
}

func (d *fakeDevice) StringProperty(key string) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	v, ok := d.stringProps[key]
	return v, ok
}

func (d *fakeDevice) DataProperty(key string) ([]byte, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	v, ok := d.dataProps[key]
	return v, ok
}

func (d *fakeDevice) UsagePairs() []native.UsagePair           { return nil }
func (d *fakeDevice) AncestorIntProperty(string) (int32, bool) { return 0, false }
func (d *fakeDevice) RegistryEntryID() (uint64, bool)          { return 0x1234, true }
func (d *fakeDevice) Addr() uintptr                            { return 0xfeed }

func (d *fakeDevice) Open(opts native.OpenOptions) int32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.openOpts = append(d.openOpts, opts)
	return d.openStatus
}

func (d *fakeDevice) Close(opts native.OpenOptions) int32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closeOpts = append(d.closeOpts, opts)
	return d.closeStatus
}

func (d *fakeDevice) SetReport(typ native.ReportType, reportID int32, data []byte) int32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.setReportCalls++
	d.lastSetType = typ
	d.lastSetID = reportID
	d.lastSetData = append([]byte(nil), data...)
	return d.setReportStatus
}

func (d *fakeDevice) GetReport(typ native.ReportType, reportID int32, buf []byte) (int, int32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.getReportCalls++
	d.lastGetType = typ
	d.lastGetID = reportID
	if d.getReportStatus != native.StatusOK {
		return 0, d.getReportStatus
	}
	return copy(buf, d.getReportData), native.StatusOK
}

func (d *fakeDevice) ScheduleWithRunLoop(loop native.RunLoop, mode string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.scheduled = append(d.scheduled, loop)
}

func (d *fakeDevice) UnscheduleFromRunLoop(loop native.RunLoop, mode string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.unscheduled = append(d.unscheduled, loop)
}

func (d *fakeDevice) RegisterInputReportCallback(buf []byte, cb native.ReportCallback) native.CallbackGuard {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.reportCB = cb
	d.guard = &fakeGuard{}
	return d.guard
}

func (d *fakeDevice) RegisterRemovalCallback(cb func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.removalCB = cb
}

func (d *fakeDevice) UnregisterRemovalCallback() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.removalCB = nil
}

func (d *fakeDevice) Release() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.releases++
}

// deliverReport fires the registered input-report callback the way the run
// loop would.
func (d *fakeDevice) deliverReport(report []byte) {
	d.mu.Lock()
	cb := d.reportCB
	d.mu.Unlock()
	cb(report)
}

// unplug fires the removal callback.
func (d *fakeDevice) unplug() {
	d.mu.Lock()
	cb := d.removalCB
	d.mu.Unlock()
	if cb != nil {
		cb()
	}
}

func (d *fakeDevice) releaseCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.releases
}

func (d *fakeDevice) scheduledLoops() []native.RunLoop {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]native.RunLoop(nil), d.scheduled...)
}
