// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ik5/audmix/device"
	"github.com/ik5/audmix/mixer"
)

func play(ctx context.Context, eng *mixer.Engine, opts options) error {
	p, err := device.NewPlayer(eng, device.Options{BufferSize: opts.buffer})
	if err != nil {
		return err
	}
	defer p.Close()

	if err := p.Start(); err != nil {
		return err
	}
	slog.Info("playing", "format", eng.Format().String(), "active", eng.Active())

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	var snap []float64
	for {
		select {
		case <-ctx.Done():
			p.Stop()
			fmt.Fprintln(os.Stderr)
			st := eng.Stats()
			slog.Info("stopped", "frames", p.Stream().Position(), "passes", st.Passes,
				"clipped", st.Clipped, "dropped", st.Dropped)
			return nil
		case <-ticker.C:
			if err := p.Err(); err != nil {
				return fmt.Errorf("audio device: %w", err)
			}
			if !opts.meter || eng.Ring() == nil {
				continue
			}
			snap = eng.Ring().Snapshot(snap[:0])
			pk, rms := peak(snap)
			fmt.Fprintf(os.Stderr, "\r%s %5.2f active=%2d", meterBar(pk, rms), pk, eng.Active())
		}
	}
}
