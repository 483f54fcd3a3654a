// SPDX-License-Identifier: EPL-2.0

package device

import (
	"errors"
	"testing"
	"time"

	"github.com/ik5/audmix/mixer"
)

func TestCheckFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format  mixer.Format
		wantErr bool
	}{
		{mixer.Format{SampleRate: 44100, BitsPerSample: 16, Channels: 2}, false},
		{mixer.Format{SampleRate: 8000, BitsPerSample: 16, Channels: 1}, false},
		{mixer.Format{SampleRate: 48000, BitsPerSample: 32, Channels: 2}, true},
	}

	for _, tt := range tests {
		err := checkFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("checkFormat(%s) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, ErrUnsupportedDeviceFormat) {
			t.Errorf("checkFormat(%s) error = %v, want ErrUnsupportedDeviceFormat", tt.format, err)
		}
	}
}

func TestOptions_BufferSize(t *testing.T) {
	t.Parallel()

	if got := (Options{}).bufferSize(); got != DefaultBufferSize {
		t.Errorf("zero BufferSize = %v, want %v", got, DefaultBufferSize)
	}
	if got := (Options{BufferSize: time.Second}).bufferSize(); got != time.Second {
		t.Errorf("BufferSize = %v, want 1s", got)
	}
}
