// play runs a wavetable oscillator on the default output device.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pfcm/oscil"
	"github.com/pfcm/oscil/fix"
	"github.com/pfcm/oscil/io"
	"github.com/pfcm/oscil/table"
)

const samplerate = 44100

var (
	tableFlag = flag.String("table", "sine", "waveform to play: sine, saw, triangle or square")
	sizeFlag  = flag.Int("size", 256, "table length, must be a power of two")
	freqFlag  = flag.Float64("freq", 220, "frequency to play, in Hz")
	glideFlag = flag.Float64("glide", 0, "if not zero, a second frequency to slide to")
	durFlag   = flag.Duration("dur", 5*time.Second, "how long to play for")
	writeFlag = flag.String("write", "", "if not empty, also write the output to this `wav file`")
)

func main() {
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("play: ")

	tab, err := makeTable(*tableFlag, *sizeFlag)
	if err != nil {
		log.Fatal(err)
	}
	o, err := oscil.New(tab, samplerate)
	if err != nil {
		log.Fatal(err)
	}
	o.SetFreqFloat(float32(*freqFlag))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, *durFlag)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return io.Play(ctx, o, samplerate, *writeFlag)
	})
	if *glideFlag > 0 {
		g.Go(func() error {
			return glide(ctx, o, float32(*freqFlag), float32(*glideFlag))
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
}

// glide slides the oscillator from one frequency to the other over a couple
// of seconds. It precomputes the endpoint increments and just interpolates,
// so the control loop never touches the conversion.
func glide(ctx context.Context, o *oscil.Oscil, from, to float32) error {
	const steps = 200
	l := oscil.NewLine(o.PhaseIncFromFreqFloat(from), o.PhaseIncFromFreqFloat(to), steps)
	t := time.NewTicker(10 * time.Millisecond)
	defer t.Stop()
	for !l.Done() {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			o.SetPhaseInc(l.Next())
		}
	}
	return nil
}

func makeTable(name string, size int) (*table.Table, error) {
	switch name {
	case "sine":
		return table.Sine(size)
	case "saw":
		return table.Saw(size)
	case "triangle":
		return table.Triangle(size)
	case "square":
		return table.Square(size, fix.MaxS17, fix.MinS17)
	}
	return nil, fmt.Errorf("unknown table %q", name)
}
