package udevenum

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"syscall"

	"github.com/pilebones/go-udev/netlink"
	"github.com/rs/zerolog/log"
)

// netlinkBufferSize is the receive buffer size for the netlink socket. USB
// hot-plug generates many netlink messages rapidly; a larger buffer prevents
// ENOBUFS drops.
const netlinkBufferSize = 2 * 1024 * 1024

// EventType represents the type of hot-plug event.
type EventType int

const (
	// EventAdd indicates a hidraw node appeared.
	EventAdd EventType = iota
	// EventRemove indicates a hidraw node went away.
	EventRemove
)

// Event is one hidraw hot-plug event.
type Event struct {
	Type EventType
	// DevNode is the /dev/hidrawN path of the affected node.
	DevNode string
}

// EventHandler is called for every hidraw hot-plug event.
type EventHandler func(event Event)

// Monitor watches the udev netlink socket for hidraw subsystem events.
type Monitor struct {
	conn    *netlink.UEventConn
	handler EventHandler
	quit    chan struct{}
	stopped bool
	mu      sync.Mutex
}

// NewMonitor creates a monitor delivering events to handler.
func NewMonitor(handler EventHandler) *Monitor {
	return &Monitor{handler: handler}
}

// Start connects to the udev netlink socket and begins delivering events in
// a background goroutine.
func (m *Monitor) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.conn != nil {
		return fmt.Errorf("monitor already started")
	}

	m.conn = &netlink.UEventConn{}
	if err := m.conn.Connect(netlink.UdevEvent); err != nil {
		m.conn = nil
		return fmt.Errorf("failed to connect to netlink: %w", err)
	}

	if err := setSocketBufferSize(m.conn.Fd, netlinkBufferSize); err != nil {
		log.Warn().Err(err).Int("size", netlinkBufferSize).Msg("failed to set netlink buffer size")
	}

	queue := make(chan netlink.UEvent)
	errs := make(chan error)

	m.quit = m.conn.Monitor(queue, errs, hidrawMatcher())
	m.stopped = false

	go m.processEvents(queue, errs)

	log.Debug().Msg("hidraw hot-plug monitor started")
	return nil
}

// Stop stops the monitor and closes the netlink socket.
func (m *Monitor) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.conn == nil || m.stopped {
		return nil
	}
	m.stopped = true

	select {
	case m.quit <- struct{}{}:
	default:
	}

	if err := m.conn.Close(); err != nil {
		return fmt.Errorf("failed to close netlink connection: %w", err)
	}
	m.conn = nil
	log.Debug().Msg("hidraw hot-plug monitor stopped")
	return nil
}

// setSocketBufferSize sets the receive buffer size for a socket. SO_RCVBUFFORCE
// bypasses the rmem_max limit but needs CAP_NET_ADMIN, so SO_RCVBUF is the
// fallback; the kernel caps that one at rmem_max.
func setSocketBufferSize(fd int, size int) error {
	if err := syscall.SetsockoptInt(fd, syscall.SOL_SOCKET, syscall.SO_RCVBUFFORCE, size); err == nil {
		return nil
	}
	return syscall.SetsockoptInt(fd, syscall.SOL_SOCKET, syscall.SO_RCVBUF, size)
}

// isBufferOverflowError reports whether err is a netlink receive-buffer
// overflow (ENOBUFS). Events may have been dropped when this fires.
func isBufferOverflowError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, syscall.ENOBUFS) {
		return true
	}
	// The udev library does not always wrap the errno.
	return strings.Contains(strings.ToLower(err.Error()), "no buffer space available")
}

// hidrawMatcher matches add/remove events on the hidraw subsystem.
func hidrawMatcher() *netlink.RuleDefinitions {
	rules := &netlink.RuleDefinitions{}

	addAction := "add"
	removeAction := "remove"
	env := map[string]string{"SUBSYSTEM": "^hidraw$"}

	rules.AddRule(netlink.RuleDefinition{Action: &addAction, Env: env})
	rules.AddRule(netlink.RuleDefinition{Action: &removeAction, Env: env})
	return rules
}

func (m *Monitor) processEvents(queue chan netlink.UEvent, errs chan error) {
	for {
		select {
		case uevent, ok := <-queue:
			if !ok {
				return
			}
			m.handleEvent(uevent)
		case err, ok := <-errs:
			if !ok {
				return
			}
			m.mu.Lock()
			stopped := m.stopped
			m.mu.Unlock()
			if stopped {
				return
			}
			if isBufferOverflowError(err) {
				log.Warn().Msg("netlink buffer overflow, hot-plug events may have been dropped")
				continue
			}
			log.Error().Err(err).Msg("udev monitor error")
		}
	}
}

func (m *Monitor) handleEvent(uevent netlink.UEvent) {
	var eventType EventType
	switch uevent.Action {
	case netlink.ADD:
		eventType = EventAdd
	case netlink.REMOVE:
		eventType = EventRemove
	default:
		return
	}

	devName := uevent.Env["DEVNAME"]
	if devName == "" {
		return
	}
	if !strings.HasPrefix(devName, "/") {
		devName = "/dev/" + devName
	}

	log.Debug().
		Str("action", string(uevent.Action)).
		Str("devname", devName).
		Msg("hidraw hot-plug event")

	if m.handler != nil {
		m.handler(Event{Type: eventType, DevNode: devName})
	}
}
