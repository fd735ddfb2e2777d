package hidapi

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruabmbua/hidapi-go/internal/native"
)

func openTestDevice(t *testing.T, opts native.OpenOptions) (*pumpDevice, *fakeSystem, *fakeDevice) {
	t.Helper()

	sys := newFakeSystem()
	dev := newFakeDevice()
	dev.stringProps[native.KeyManufacturer] = "ACME"
	dev.stringProps[native.KeyProduct] = "Widget"
	dev.stringProps[native.KeySerialNumber] = "SN-1"

	d, err := openPumpDevice(sys, dev, DeviceInfo{Path: "DevSrvsID:4660"}, opts, zerolog.Nop())
	require.NoError(t, err)
	return d, sys, dev
}

func TestOpenPumpDevice_NativeOpenFailure(t *testing.T) {
	sys := newFakeSystem()
	dev := newFakeDevice()
	dev.openStatus = -536870206

	d, err := openPumpDevice(sys, dev, DeviceInfo{}, native.OpenNone, zerolog.Nop())
	assert.Nil(t, d)

	var apiErr *NativeAPIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, int32(-536870206), apiErr.Code)
	assert.Equal(t, 1, dev.releaseCount(), "failed open must release the enumeration reference")
}

func TestOpenPumpDevice_StartupHandshake(t *testing.T) {
	d, sys, dev := openTestDevice(t, native.OpenNone)
	defer d.Close()

	// openPumpDevice returned, so the pump published everything it owns:
	// callbacks installed, device scheduled on the pump loop, wake source
	// added to the same loop.
	dev.mu.Lock()
	hasReportCB := dev.reportCB != nil
	hasRemovalCB := dev.removalCB != nil
	dev.mu.Unlock()
	assert.True(t, hasReportCB)
	assert.True(t, hasRemovalCB)

	require.Len(t, dev.scheduledLoops(), 1)
	assert.Same(t, sys.loop, dev.scheduledLoops()[0].(*fakeRunLoop))

	sys.loop.mu.Lock()
	added := len(sys.loop.added)
	sys.loop.mu.Unlock()
	assert.Equal(t, 1, added)
}

func TestReadTimeout_PollOnEmptyQueue(t *testing.T) {
	d, _, _ := openTestDevice(t, native.OpenNone)
	defer d.Close()

	start := time.Now()
	buf := make([]byte, 8)
	n, err := d.ReadTimeout(buf, 0)
	assert.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Less(t, time.Since(start), 100*time.Millisecond, "a poll must not block")
}

func TestReadTimeout_BlockingReadWokenByReport(t *testing.T) {
	d, _, dev := openTestDevice(t, native.OpenNone)
	defer d.Close()

	const delay = 50 * time.Millisecond
	go func() {
		time.Sleep(delay)
		dev.deliverReport([]byte{0x01, 0xde, 0xad})
	}()

	start := time.Now()
	buf := make([]byte, 8)
	n, err := d.ReadTimeout(buf, -1)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []byte{0x01, 0xde, 0xad}, buf[:n])
	assert.GreaterOrEqual(t, time.Since(start), delay, "read must not return before the report exists")
}

func TestRoundTrip_ReportsDeliveredInOrder(t *testing.T) {
	d, _, dev := openTestDevice(t, native.OpenNone)
	defer d.Close()

	const n = 10
	for i := 0; i < n; i++ {
		dev.deliverReport([]byte{0x01, byte(i)})
	}

	buf := make([]byte, 8)
	for i := 0; i < n; i++ {
		got, err := d.ReadTimeout(buf, -1)
		require.NoError(t, err)
		assert.Equal(t, []byte{0x01, byte(i)}, buf[:got])
	}

	got, err := d.ReadTimeout(buf, 0)
	assert.NoError(t, err)
	assert.Equal(t, 0, got, "queue must be empty after draining every report")
}

func TestReadTimeout_DeadlineExpires(t *testing.T) {
	d, _, _ := openTestDevice(t, native.OpenNone)
	defer d.Close()

	start := time.Now()
	buf := make([]byte, 8)
	n, err := d.ReadTimeout(buf, 30*time.Millisecond)
	elapsed := time.Since(start)

	assert.NoError(t, err, "timeout with no report is not an error")
	assert.Equal(t, 0, n)
	assert.GreaterOrEqual(t, elapsed, 30*time.Millisecond)
	assert.Less(t, elapsed, 500*time.Millisecond)
}

func TestReadTimeout_ReportArrivesBeforeDeadline(t *testing.T) {
	d, _, dev := openTestDevice(t, native.OpenNone)
	defer d.Close()

	go func() {
		time.Sleep(20 * time.Millisecond)
		dev.deliverReport([]byte{0x02, 0x42})
	}()

	buf := make([]byte, 8)
	n, err := d.ReadTimeout(buf, time.Second)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x02, 0x42}, buf[:n])
}

func TestRead_RespectsBlockingMode(t *testing.T) {
	d, _, _ := openTestDevice(t, native.OpenNone)
	defer d.Close()

	require.NoError(t, d.SetBlockingMode(false))

	buf := make([]byte, 8)
	n, err := d.Read(buf)
	assert.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestReadTimeout_QueuedReportDeliveredAfterDisconnect(t *testing.T) {
	d, _, dev := openTestDevice(t, native.OpenNone)
	defer d.Close()

	dev.deliverReport([]byte{0x01, 0xaa})
	dev.unplug()

	// The report queued before the unplug is still delivered; only the empty
	// queue surfaces the disconnect.
	buf := make([]byte, 8)
	n, err := d.ReadTimeout(buf, -1)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0xaa}, buf[:n])

	_, err = d.ReadTimeout(buf, -1)
	assert.ErrorIs(t, err, ErrDeviceDisconnected)

	_, err = d.ReadTimeout(buf, 0)
	assert.ErrorIs(t, err, ErrDeviceDisconnected)
}

func TestClose_UnblocksPendingRead(t *testing.T) {
	d, _, _ := openTestDevice(t, native.OpenNone)

	type result struct {
		n   int
		err error
	}
	res := make(chan result, 1)
	go func() {
		buf := make([]byte, 8)
		n, err := d.ReadTimeout(buf, -1)
		res <- result{n, err}
	}()

	// Give the reader time to block before tearing down.
	time.Sleep(50 * time.Millisecond)
	start := time.Now()
	require.NoError(t, d.Close())

	select {
	case r := <-res:
		assert.ErrorIs(t, r.err, ErrThreadShutdown)
		assert.Equal(t, 0, r.n)
		assert.Less(t, time.Since(start), 500*time.Millisecond, "teardown must release blocked readers promptly")
	case <-time.After(2 * time.Second):
		t.Fatal("blocked read did not return after Close")
	}
}

func TestClose_ReschedulesToMainLoop(t *testing.T) {
	d, sys, dev := openTestDevice(t, native.OpenNone)

	require.NoError(t, d.Close())

	loops := dev.scheduledLoops()
	require.Len(t, loops, 2)
	assert.Same(t, sys.loop, loops[0].(*fakeRunLoop))
	assert.Same(t, sys.main, loops[1].(*fakeRunLoop), "close must move the device back to the main loop")

	assert.Equal(t, 1, dev.releaseCount())
	assert.Equal(t, 0, d.pump.queue.len())
}

func TestClose_SkipsRescheduleAfterDisconnect(t *testing.T) {
	d, _, dev := openTestDevice(t, native.OpenNone)

	dev.unplug()
	// Wait for the pump to drain before closing.
	select {
	case <-d.pump.stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("pump did not drain after removal callback")
	}

	require.NoError(t, d.Close())

	assert.Len(t, dev.scheduledLoops(), 1, "no main-loop reschedule for a vanished device")
	dev.mu.Lock()
	closeCalls := len(dev.closeOpts)
	dev.mu.Unlock()
	assert.Equal(t, 0, closeCalls, "no native close for a vanished device")
	assert.Equal(t, 1, dev.releaseCount())
}

func TestClose_UsesOriginalOpenOptions(t *testing.T) {
	d, _, dev := openTestDevice(t, native.OpenSeizeDevice)

	require.NoError(t, d.Close())

	dev.mu.Lock()
	defer dev.mu.Unlock()
	require.Len(t, dev.openOpts, 1)
	require.Len(t, dev.closeOpts, 1)
	assert.Equal(t, native.OpenSeizeDevice, dev.openOpts[0])
	assert.Equal(t, native.OpenSeizeDevice, dev.closeOpts[0])
}

func TestClose_Idempotent(t *testing.T) {
	d, _, dev := openTestDevice(t, native.OpenNone)

	require.NoError(t, d.Close())
	require.NoError(t, d.Close())

	assert.Equal(t, 1, dev.releaseCount())
}

func TestLoopFault_DrainsWithoutDisconnect(t *testing.T) {
	d, sys, dev := openTestDevice(t, native.OpenNone)

	// An unexpected run-loop result is a fault, not an unplug: the pump stops
	// reading but must not claim the device disconnected.
	sys.loop.script(native.RunStopped)

	select {
	case <-d.pump.stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("pump did not drain after loop fault")
	}

	assert.False(t, d.pump.disconnected.Load())
	assert.True(t, dev.guard.wasUnregistered())

	sys.loop.mu.Lock()
	src := sys.loop.added[0].(*fakeWakeSource)
	sys.loop.mu.Unlock()
	assert.True(t, src.wasInvalidated())

	// The fault sets the generic shutdown, never the disconnect: readers
	// see the thread-gone error, not a phantom unplug.
	buf := make([]byte, 8)
	_, err := d.ReadTimeout(buf, 0)
	assert.ErrorIs(t, err, ErrThreadShutdown)

	require.NoError(t, d.Close())
	_, err = d.ReadTimeout(buf, 0)
	assert.ErrorIs(t, err, ErrThreadShutdown)
}

func TestLoopFault_UnblocksPendingRead(t *testing.T) {
	d, sys, _ := openTestDevice(t, native.OpenNone)
	defer d.Close()

	errCh := make(chan error, 1)
	go func() {
		buf := make([]byte, 8)
		_, err := d.ReadTimeout(buf, -1)
		errCh <- err
	}()

	// Give the reader a moment to park on the wake channel, then fault the
	// loop. The drain must release the reader with a terminal error even
	// though it re-checks its flags after the broadcast.
	time.Sleep(20 * time.Millisecond)
	sys.loop.script(native.RunStopped)

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, ErrThreadShutdown)
	case <-time.After(2 * time.Second):
		t.Fatal("blocked read did not return after loop fault")
	}
	assert.False(t, d.pump.disconnected.Load())
}

func TestRunFinished_MarksDeviceDisconnected(t *testing.T) {
	d, sys, _ := openTestDevice(t, native.OpenNone)
	defer d.Close()

	// A loop with no live sources left means the device object is gone.
	sys.loop.script(native.RunFinished)

	select {
	case <-d.pump.stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("pump did not drain after run loop finished")
	}

	buf := make([]byte, 8)
	_, err := d.ReadTimeout(buf, 0)
	assert.ErrorIs(t, err, ErrDeviceDisconnected)
}

func TestQueueOverflow_DropsOldestReport(t *testing.T) {
	d, _, dev := openTestDevice(t, native.OpenNone)
	defer d.Close()

	for i := 0; i <= maxQueuedReports; i++ {
		dev.deliverReport([]byte{0x01, byte(i)})
	}

	buf := make([]byte, 8)
	n, err := d.ReadTimeout(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x01}, buf[:n], "report 0 should have been dropped")
}

func TestWrite_EmptyBufferRejectedWithoutNativeCall(t *testing.T) {
	d, _, dev := openTestDevice(t, native.OpenNone)
	defer d.Close()

	_, err := d.Write(nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = d.SendFeatureReport([]byte{})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = d.GetFeatureReport(nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = d.GetInputReport(nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	dev.mu.Lock()
	defer dev.mu.Unlock()
	assert.Equal(t, 0, dev.setReportCalls)
	assert.Equal(t, 0, dev.getReportCalls)
}

func TestWrite_UnnumberedReportStripsLeadingZero(t *testing.T) {
	d, _, dev := openTestDevice(t, native.OpenNone)
	defer d.Close()

	n, err := d.Write([]byte{0x00, 0xaa, 0xbb})
	require.NoError(t, err)
	assert.Equal(t, 3, n, "returned length counts the report-ID byte")

	dev.mu.Lock()
	defer dev.mu.Unlock()
	assert.Equal(t, native.ReportOutput, dev.lastSetType)
	assert.Equal(t, int32(0), dev.lastSetID)
	assert.Equal(t, []byte{0xaa, 0xbb}, dev.lastSetData)
}

func TestWrite_BareZeroIDSendsEmptyPayload(t *testing.T) {
	d, _, dev := openTestDevice(t, native.OpenNone)
	defer d.Close()

	// A single zero byte is a legal write: the ID is stripped and the native
	// call carries an empty payload.
	n, err := d.Write([]byte{0x00})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	dev.mu.Lock()
	defer dev.mu.Unlock()
	assert.Equal(t, int32(0), dev.lastSetID)
	assert.Empty(t, dev.lastSetData)
}

func TestGetFeatureReport_BareZeroIDBuffer(t *testing.T) {
	d, _, dev := openTestDevice(t, native.OpenNone)
	defer d.Close()

	dev.mu.Lock()
	dev.getReportData = nil
	dev.mu.Unlock()

	n, err := d.GetFeatureReport([]byte{0x00})
	require.NoError(t, err)
	assert.Equal(t, 1, n, "only the reserved ID byte fits")
}

func TestWrite_NumberedReportKeepsID(t *testing.T) {
	d, _, dev := openTestDevice(t, native.OpenNone)
	defer d.Close()

	n, err := d.Write([]byte{0x05, 0xaa})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	dev.mu.Lock()
	defer dev.mu.Unlock()
	assert.Equal(t, int32(5), dev.lastSetID)
	assert.Equal(t, []byte{0x05, 0xaa}, dev.lastSetData)
}

func TestSendFeatureReport_UsesFeaturePipe(t *testing.T) {
	d, _, dev := openTestDevice(t, native.OpenNone)
	defer d.Close()

	_, err := d.SendFeatureReport([]byte{0x01, 0x10})
	require.NoError(t, err)

	dev.mu.Lock()
	defer dev.mu.Unlock()
	assert.Equal(t, native.ReportFeature, dev.lastSetType)
}

func TestGetFeatureReport_UnnumberedAddsIDByteToLength(t *testing.T) {
	d, _, dev := openTestDevice(t, native.OpenNone)
	defer d.Close()

	dev.mu.Lock()
	dev.getReportData = []byte{0x11, 0x22}
	dev.mu.Unlock()

	buf := make([]byte, 8)
	n, err := d.GetFeatureReport(buf)
	require.NoError(t, err)
	assert.Equal(t, 3, n, "unnumbered get report adds the reserved ID byte")
	assert.Equal(t, []byte{0x11, 0x22}, buf[1:3])
}

func TestGetFeatureReport_NumberedReturnsNativeLength(t *testing.T) {
	d, _, dev := openTestDevice(t, native.OpenNone)
	defer d.Close()

	dev.mu.Lock()
	dev.getReportData = []byte{0x05, 0x33}
	dev.mu.Unlock()

	buf := make([]byte, 8)
	buf[0] = 0x05
	n, err := d.GetFeatureReport(buf)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	dev.mu.Lock()
	defer dev.mu.Unlock()
	assert.Equal(t, int32(5), dev.lastGetID)
}

func TestGetInputReport_UsesInputPipe(t *testing.T) {
	d, _, dev := openTestDevice(t, native.OpenNone)
	defer d.Close()

	dev.mu.Lock()
	dev.getReportData = []byte{0x01}
	dev.mu.Unlock()

	buf := make([]byte, 8)
	buf[0] = 0x01
	_, err := d.GetInputReport(buf)
	require.NoError(t, err)

	dev.mu.Lock()
	defer dev.mu.Unlock()
	assert.Equal(t, native.ReportInput, dev.lastGetType)
}

func TestSetReport_NativeFailureSurfacesStatus(t *testing.T) {
	d, _, dev := openTestDevice(t, native.OpenNone)
	defer d.Close()

	dev.mu.Lock()
	dev.setReportStatus = -536870201
	dev.mu.Unlock()

	_, err := d.Write([]byte{0x01, 0x02})

	var apiErr *NativeAPIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, int32(-536870201), apiErr.Code)
	assert.Equal(t, "set report", apiErr.Op)
}

func TestReportIO_DisconnectedDeviceRejected(t *testing.T) {
	d, _, dev := openTestDevice(t, native.OpenNone)
	defer d.Close()

	dev.unplug()

	_, err := d.Write([]byte{0x01, 0x02})
	assert.ErrorIs(t, err, ErrDeviceDisconnected)
	_, err = d.GetFeatureReport(make([]byte, 4))
	assert.ErrorIs(t, err, ErrDeviceDisconnected)
	_, err = d.ManufacturerString()
	assert.ErrorIs(t, err, ErrDeviceDisconnected)
}

func TestStringGetters_ReadLiveProperties(t *testing.T) {
	d, _, _ := openTestDevice(t, native.OpenNone)
	defer d.Close()

	manufacturer, err := d.ManufacturerString()
	require.NoError(t, err)
	assert.Equal(t, "ACME", manufacturer)

	product, err := d.ProductString()
	require.NoError(t, err)
	assert.Equal(t, "Widget", product)

	serial, err := d.SerialNumberString()
	require.NoError(t, err)
	assert.Equal(t, "SN-1", serial)
}

func TestReportDescriptor(t *testing.T) {
	d, _, dev := openTestDevice(t, native.OpenNone)
	defer d.Close()

	desc := []byte{0x05, 0x01, 0x09, 0x06}
	dev.mu.Lock()
	dev.dataProps[native.KeyReportDescriptor] = desc
	dev.mu.Unlock()

	buf := make([]byte, 16)
	n, err := d.ReportDescriptor(buf)
	require.NoError(t, err)
	assert.Equal(t, desc, buf[:n])
}

func TestReadTimeout_ReportsAreByteIdentical(t *testing.T) {
	d, _, dev := openTestDevice(t, native.OpenNone)
	defer d.Close()

	original := []byte{0x01, 0x10, 0x20, 0x30}
	dev.deliverReport(original)
	// The pump must have copied the report: mutating the source buffer after
	// delivery cannot change what the reader sees.
	original[1] = 0xff

	buf := make([]byte, 8)
	n, err := d.ReadTimeout(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x10, 0x20, 0x30}, buf[:n])
}

func TestNativeAPIError_Message(t *testing.T) {
	err := nativeErr("open", -536870206)
	assert.Contains(t, err.Error(), "open")

	var apiErr *NativeAPIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, int32(-536870206), apiErr.Code)
}
