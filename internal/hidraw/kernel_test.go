package hidraw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKernelRelease(t *testing.T) {
	tests := []struct {
		name    string
		release string
		want    KernelVersion
		wantErr bool
	}{
		{
			name:    "plain version",
			release: "6.8.0",
			want:    KernelVersion{6, 8, 0},
		},
		{
			name:    "distro suffix",
			release: "6.8.0-45-generic",
			want:    KernelVersion{6, 8, 0},
		},
		{
			name:    "rc suffix on patch",
			release: "5.15.2-rc1",
			want:    KernelVersion{5, 15, 2},
		},
		{
			name:    "suffix directly on minor",
			release: "4.19-rt",
			want:    KernelVersion{4, 19, 0},
		},
		{
			name:    "two components",
			release: "2.6",
			want:    KernelVersion{2, 6, 0},
		},
		{
			name:    "major only",
			release: "3",
			want:    KernelVersion{3, 0, 0},
		},
		{
			name:    "empty",
			release: "",
			wantErr: true,
		},
		{
			name:    "no leading digits",
			release: "linux-6.8.0",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKernelRelease(tt.release)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKernelVersion_Before(t *testing.T) {
	assert.True(t, KernelVersion{2, 6, 33}.Before(KernelVersion{2, 6, 34}))
	assert.True(t, KernelVersion{2, 5, 99}.Before(KernelVersion{2, 6, 34}))
	assert.True(t, KernelVersion{1, 9, 9}.Before(KernelVersion{2, 0, 0}))
	assert.False(t, KernelVersion{2, 6, 34}.Before(KernelVersion{2, 6, 34}))
	assert.False(t, KernelVersion{6, 8, 0}.Before(KernelVersion{2, 6, 34}))
}

func TestKernelVersion_FeatureExtraByteBug(t *testing.T) {
	assert.True(t, KernelVersion{2, 6, 33}.hasFeatureExtraByteBug())
	assert.False(t, KernelVersion{2, 6, 34}.hasFeatureExtraByteBug())
	assert.False(t, KernelVersion{6, 8, 0}.hasFeatureExtraByteBug())
}

func TestKernelVersion_String(t *testing.T) {
	assert.Equal(t, "6.8.0", KernelVersion{6, 8, 0}.String())
}
