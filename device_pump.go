package hidapi

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/ruabmbua/hidapi-go/internal/native"
)

// defaultInputBufSize is used when the device does not report a maximum
// input report size.
const defaultInputBufSize = 64

// pumpDevice is the Device implementation backed by the asynchronous report
// pump. It is the native backend used on macOS; the engine itself is platform
// neutral and runs against the native interfaces.
type pumpDevice struct {
	sys  native.System
	pump *reportPump
	info DeviceInfo
	log  zerolog.Logger

	// blocking selects whether Read waits for a report or polls.
	blocking atomic.Bool

	// openOptions is captured at open time and reused at close time.
	openOptions native.OpenOptions

	// reader is the join handle for the pump goroutine, joined exactly once.
	reader    sync.WaitGroup
	closeOnce sync.Once
}

var _ Device = (*pumpDevice)(nil)

// openPumpDevice opens dev, spawns its reader goroutine and blocks until the
// pump has installed its callbacks and published its run-loop handle. By the
// time it returns, input reports are being received and queued.
func openPumpDevice(sys native.System, dev native.Device, info DeviceInfo, opts native.OpenOptions, log zerolog.Logger) (*pumpDevice, error) {
	if status := dev.Open(opts); status != native.StatusOK {
		dev.Release()
		return nil, nativeErr("open", status)
	}

	inputBufSize := defaultInputBufSize
	if size, ok := dev.IntProperty(native.KeyMaxInputReportSize); ok && size > 0 {
		inputBufSize = int(size)
	}

	// A run-loop mode private to this device: two open devices must never
	// dispatch through each other's loop activity.
	mode := fmt.Sprintf("HIDAPI_%#x", dev.Addr())

	d := &pumpDevice{
		sys:         sys,
		pump:        newReportPump(dev, log),
		info:        info,
		log:         log,
		openOptions: opts,
	}
	d.blocking.Store(true)

	d.reader.Add(1)
	go func() {
		defer d.reader.Done()
		d.pump.run(sys, mode, inputBufSize)
	}()

	<-d.pump.started
	d.log.Debug().Str("path", info.Path).Msg("device opened, report pump running")
	return d, nil
}

// Close tears the handle down: reschedule the device back onto the main run
// loop (unless it already disconnected), signal shutdown, wake the pump, wait
// for it to stop touching shared state, join the goroutine, close the native
// handle with the original open options, and clear the queue.
func (d *pumpDevice) Close() error {
	d.closeOnce.Do(func() {
		p := d.pump

		if !p.disconnected.Load() {
			// The platform requires moving a device scheduled on a worker
			// loop back to the main loop before closing it. Skipped after a
			// disconnect: the object may no longer accept scheduling calls.
			p.devMu.Lock()
			p.dev.ScheduleWithRunLoop(d.sys.MainRunLoop(), native.DefaultRunLoopMode)
			p.devMu.Unlock()
		}

		p.shutdown.Store(true)
		p.wake()

		// Shutdown barrier: after this the pump no longer touches shared
		// state. Then join the goroutine itself.
		<-p.stopped
		d.reader.Wait()

		p.devMu.Lock()
		if !p.disconnected.Load() {
			if status := p.dev.Close(d.openOptions); status != native.StatusOK {
				d.log.Warn().Int32("status", status).Msg("native close failed")
			}
		}
		p.dev.Release()
		p.devMu.Unlock()

		p.queue.clear()
		d.log.Debug().Str("path", d.info.Path).Msg("device closed")
	})
	return nil
}

// ReadTimeout reads the next queued input report into buf. A report that is
// already queued is always delivered, even when the device has since
// disconnected; only an empty queue surfaces terminal errors.
func (d *pumpDevice) ReadTimeout(buf []byte, timeout time.Duration) (int, error) {
	p := d.pump
	q := p.queue

	var deadline time.Time
	if timeout > 0 {
		deadline = time.Now().Add(timeout)
	}

	q.mu.Lock()
	for {
		if len(q.reports) > 0 {
			rep := q.popLocked()
			q.mu.Unlock()
			return copy(buf, rep), nil
		}
		if p.disconnected.Load() {
			q.mu.Unlock()
			return 0, ErrDeviceDisconnected
		}
		if p.shutdown.Load() {
			q.mu.Unlock()
			return 0, ErrThreadShutdown
		}
		if timeout == 0 {
			// Pure poll.
			q.mu.Unlock()
			return 0, nil
		}

		wake := q.wake
		q.mu.Unlock()

		if timeout < 0 {
			// Block until the pump enqueues a report or drains.
			<-wake
		} else {
			remaining := time.Until(deadline)
			if remaining <= 0 {
				return 0, nil
			}
			timer := time.NewTimer(remaining)
			select {
			case <-wake:
				timer.Stop()
			case <-timer.C:
				// Fall through for one final queue check; expiry with an
				// empty queue is not an error.
			}
		}

		q.mu.Lock()
	}
}

func (d *pumpDevice) Read(buf []byte) (int, error) {
	if d.blocking.Load() {
		return d.ReadTimeout(buf, -1)
	}
	return d.ReadTimeout(buf, 0)
}

func (d *pumpDevice) Write(data []byte) (int, error) {
	return d.setReport(native.ReportOutput, data)
}

func (d *pumpDevice) SendFeatureReport(data []byte) (int, error) {
	return d.setReport(native.ReportFeature, data)
}

func (d *pumpDevice) GetFeatureReport(buf []byte) (int, error) {
	return d.getReport(native.ReportFeature, buf)
}

func (d *pumpDevice) GetInputReport(buf []byte) (int, error) {
	return d.getReport(native.ReportInput, buf)
}

// setReport sends data through the synchronous set-report path. The first
// byte is the report ID; ID 0 means the device does not use numbered reports
// and the byte is stripped before the native call.
func (d *pumpDevice) setReport(typ native.ReportType, data []byte) (int, error) {
	if len(data) == 0 {
		return 0, ErrInvalidInput
	}

	reportID := data[0]
	payload := data
	if reportID == 0 {
		payload = data[1:]
	}

	p := d.pump
	p.devMu.Lock()
	defer p.devMu.Unlock()

	// Checked under the device lock so a concurrent disconnect cannot race a
	// stale read of the flag.
	if p.disconnected.Load() {
		return 0, ErrDeviceDisconnected
	}

	if status := p.dev.SetReport(typ, int32(reportID), payload); status != native.StatusOK {
		return 0, nativeErr("set report", status)
	}
	return len(data), nil
}

// getReport mirrors setReport on the receiving side. When the report ID is 0
// the returned length is incremented to account for the leading ID byte the
// caller's buffer reserves.
func (d *pumpDevice) getReport(typ native.ReportType, buf []byte) (int, error) {
	if len(buf) == 0 {
		return 0, ErrInvalidInput
	}

	reportID := buf[0]
	target := buf
	if reportID == 0 {
		target = buf[1:]
	}

	p := d.pump
	p.devMu.Lock()
	defer p.devMu.Unlock()

	if p.disconnected.Load() {
		return 0, ErrDeviceDisconnected
	}

	n, status := p.dev.GetReport(typ, int32(reportID), target)
	if status != native.StatusOK {
		return 0, nativeErr("get report", status)
	}
	if reportID == 0 {
		n++
	}
	return n, nil
}

func (d *pumpDevice) SetBlockingMode(blocking bool) error {
	d.blocking.Store(blocking)
	return nil
}

func (d *pumpDevice) Info() (DeviceInfo, error) {
	return d.info, nil
}

func (d *pumpDevice) ManufacturerString() (string, error) {
	return d.stringProperty(native.KeyManufacturer)
}

func (d *pumpDevice) ProductString() (string, error) {
	return d.stringProperty(native.KeyProduct)
}

func (d *pumpDevice) SerialNumberString() (string, error) {
	return d.stringProperty(native.KeySerialNumber)
}

func (d *pumpDevice) stringProperty(key string) (string, error) {
	p := d.pump
	p.devMu.Lock()
	defer p.devMu.Unlock()

	if p.disconnected.Load() {
		return "", ErrDeviceDisconnected
	}
	s, _ := p.dev.StringProperty(key)
	return s, nil
}

func (d *pumpDevice) ReportDescriptor(buf []byte) (int, error) {
	p := d.pump
	p.devMu.Lock()
	defer p.devMu.Unlock()

	if p.disconnected.Load() {
		return 0, ErrDeviceDisconnected
	}
	desc, ok := p.dev.DataProperty(native.KeyReportDescriptor)
	if !ok {
		return 0, nativeErr("report descriptor", -1)
	}
	return copy(buf, desc), nil
}
