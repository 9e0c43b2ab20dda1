// package io plays oscillators out loud.
package io

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"
	"os"

	"github.com/gen2brain/malgo"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/pfcm/oscil"
	"github.com/pfcm/oscil/fix"
)

// Play drives o from the default playback device's data callback at the
// given sample rate, which should be the update rate the oscillator was
// built with. It blocks until the context is cancelled. If filename is not
// "", the output is also written there as a 16 bit mono wav file.
func Play(ctx context.Context, o *oscil.Oscil, samplerate int, filename string) error {
	mctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, func(msg string) {
		fmt.Fprint(os.Stderr, msg)
	})
	if err != nil {
		return err
	}
	defer func() {
		mctx.Uninit()
		mctx.Free()
	}()
	cfg := malgo.DefaultDeviceConfig(malgo.Playback)
	cfg.Playback.Format = malgo.FormatF32
	cfg.Playback.Channels = 1
	cfg.SampleRate = uint32(samplerate)

	buf := make([]fix.S17, 4096)
	var captured []int

	recv := func(out, _ []byte, framecount uint32) {
		if framecount == 0 {
			return
		}
		for int(framecount) > len(buf) {
			buf = append(buf, make([]fix.S17, len(buf))...)
		}
		samples := buf[:framecount]
		o.Fill(samples)
		// Reformat to the float32 frames the device wants.
		w := out[:0]
		for _, s := range samples {
			f := fix.S17ToFloat[float32](s)
			w = binary.LittleEndian.AppendUint32(w, math.Float32bits(f))
		}
		if filename != "" {
			for _, s := range samples {
				captured = append(captured, int(s)<<8)
			}
		}
	}

	device, err := malgo.InitDevice(mctx.Context, cfg, malgo.DeviceCallbacks{
		Data: recv,
	})
	if err != nil {
		return err
	}
	if err := device.Start(); err != nil {
		return err
	}

	<-ctx.Done()

	device.Uninit()

	if filename != "" {
		return writeWav(filename, captured, samplerate)
	}
	return nil
}

func writeWav(filename string, samples []int, samplerate int) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	enc := wav.NewEncoder(f, samplerate, 16, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: samplerate},
		Data:           samples,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		f.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
