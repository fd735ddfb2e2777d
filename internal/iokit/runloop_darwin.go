package iokit

/*
#include <CoreFoundation/CoreFoundation.h>
*/
import "C"

import (
	"time"

	"github.com/ruabmbua/hidapi-go/internal/native"
)

// runLoop wraps a CFRunLoopRef. RunInMode, AddSource and RemoveSource must
// only be called from the thread owning the loop; the Waker view is the
// cross-thread-safe subset.
type runLoop struct {
	ref C.CFRunLoopRef
}

func (l *runLoop) RunInMode(mode string, timeout time.Duration) native.RunResult {
	cmode := cfstr(mode)
	defer C.CFRelease(C.CFTypeRef(cmode))

	switch C.CFRunLoopRunInMode(cmode, C.CFTimeInterval(timeout.Seconds()), 0) {
	case C.kCFRunLoopRunFinished:
		return native.RunFinished
	case C.kCFRunLoopRunStopped:
		return native.RunStopped
	case C.kCFRunLoopRunTimedOut:
		return native.RunTimedOut
	default:
		return native.RunHandledSource
	}
}

func (l *runLoop) AddSource(src native.WakeSource, mode string) {
	cmode := cfstr(mode)
	defer C.CFRelease(C.CFTypeRef(cmode))
	C.CFRunLoopAddSource(l.ref, src.(*wakeSource).ref, cmode)
}

func (l *runLoop) RemoveSource(src native.WakeSource, mode string) {
	cmode := cfstr(mode)
	defer C.CFRelease(C.CFTypeRef(cmode))
	C.CFRunLoopRemoveSource(l.ref, src.(*wakeSource).ref, cmode)
}

func (l *runLoop) Waker() native.LoopWaker {
	return loopWaker{ref: l.ref}
}

// loopWaker exposes the only run-loop operations documented as thread-safe.
type loopWaker struct {
	ref C.CFRunLoopRef
}

func (w loopWaker) WakeUp() { C.CFRunLoopWakeUp(w.ref) }
func (w loopWaker) Stop()   { C.CFRunLoopStop(w.ref) }

// wakeSource wraps a version-0 CFRunLoopSource with a no-op perform routine.
type wakeSource struct {
	ref C.CFRunLoopSourceRef
}

// Signal marks the source pending; a following CFRunLoopWakeUp makes the
// blocked run call return. Safe from any thread.
func (s *wakeSource) Signal() {
	C.CFRunLoopSourceSignal(s.ref)
}

func (s *wakeSource) Invalidate() {
	C.CFRunLoopSourceInvalidate(s.ref)
	C.CFRelease(C.CFTypeRef(s.ref))
	s.ref = nil
}
