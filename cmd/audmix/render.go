// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ik5/audmix/formats/wav"
	"github.com/ik5/audmix/mixer"
)

// render drives Service in chunks of chunk frames until frames have been
// produced, streaming every chunk into w.
func render(eng *mixer.Engine, ws io.WriteSeeker, frames, chunk int) error {
	if chunk <= 0 {
		return fmt.Errorf("chunk of %d frames must be positive", chunk)
	}

	f := eng.Format()
	w, err := wav.NewWriter(ws, f.SampleRate, f.Channels, f.BitsPerSample)
	if err != nil {
		return err
	}

	buf := make([]byte, chunk*f.FrameBytes())
	req := mixer.Request{Format: f}

	for done := 0; done < frames; {
		req.StartFrame = uint64(done)
		req.FramesNeeded = min(chunk, frames-done)
		req.Dst = buf
		eng.Service(&req)

		if err := w.WritePCM(buf[:req.FramesFilled*f.FrameBytes()]); err != nil {
			return err
		}
		done += req.FramesFilled
	}

	return w.Close()
}

func renderFile(eng *mixer.Engine, path string, seconds float64, chunk int) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	defer out.Close()

	frames := int(seconds * float64(eng.Format().SampleRate))
	if err := render(eng, out, frames, chunk); err != nil {
		return fmt.Errorf("rendering %s: %w", path, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	st := eng.Stats()
	slog.Info("rendered", "path", path, "frames", frames, "passes", st.Passes, "clipped", st.Clipped)

	return nil
}
