package hidraw

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Expected values computed from the kernel's _IOC macros for hidraw.h.
func TestIoctlEncoding(t *testing.T) {
	assert.Equal(t, uint(0x80044801), hidiocgrdescsize())
	assert.Equal(t, uint(0x90044802), hidiocgrdesc())
	assert.Equal(t, uint(0x80084803), hidiocgrawinfo())

	assert.Equal(t, uint(0x81004804), hidiocgrawname(256))
	assert.Equal(t, uint(0x81004805), hidiocgrawphys(256))
	assert.Equal(t, uint(0x81004808), hidiocgrawuniq(256))

	assert.Equal(t, uint(0xc0044806), hidiocsfeature(4))
	assert.Equal(t, uint(0xc0044807), hidiocgfeature(4))
	assert.Equal(t, uint(0xc004480a), hidiocginput(4))
}

func TestIoctlEncoding_SizeField(t *testing.T) {
	// The buffer length lands in bits 16..29.
	assert.Equal(t, uint(64), (hidiocgfeature(64)>>iocSizeShift)&0x3fff)
	assert.Equal(t, uint(1), (hidiocsfeature(1)>>iocSizeShift)&0x3fff)
}

func TestPollTimeoutMs(t *testing.T) {
	tests := []struct {
		name    string
		timeout time.Duration
		want    int
	}{
		{name: "negative blocks", timeout: -1, want: -1},
		{name: "zero polls", timeout: 0, want: 0},
		{name: "sub-millisecond rounds up", timeout: 100 * time.Microsecond, want: 1},
		{name: "one millisecond", timeout: time.Millisecond, want: 1},
		{name: "whole milliseconds truncate", timeout: 2500 * time.Microsecond, want: 2},
		{name: "one second", timeout: time.Second, want: 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pollTimeoutMs(tt.timeout))
		})
	}
}
