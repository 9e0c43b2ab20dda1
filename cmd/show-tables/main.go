// show-tables prints the built-in wavetables, mostly for eyeballing generator
// output.
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/pfcm/oscil/fix"
	"github.com/pfcm/oscil/table"
)

var (
	sizeFlag   = flag.Int("size", 64, "table length, must be a power of two")
	tablesFlag = flag.String("tables", "", "comma separated list of `table names` to show. Available tables: "+strings.Join(tableKeys, ", ")+". Leave empty to show all")
	statsFlag  = flag.Bool("stats", true, "whether to print summary statistics")
)

var tableKeys = []string{"sine", "saw", "triangle", "square"}

func main() {
	flag.Parse()

	names, err := parseTables(*tablesFlag)
	if err != nil {
		fail(err.Error())
	}

	w := tabwriter.NewWriter(os.Stdout, 4, 1, 1, ' ', 0)
	p := message.NewPrinter(language.English)
	for _, name := range tableKeys {
		if !names[name] {
			continue
		}
		t, err := makeTable(name, *sizeFlag)
		if err != nil {
			fail(err.Error())
		}
		dump(w, name, t)
		if *statsFlag {
			stats(w, p, t)
		}
		fmt.Fprintln(w)
	}
	if err := w.Flush(); err != nil {
		fail(err.Error())
	}
}

func parseTables(ts string) (map[string]bool, error) {
	all := make(map[string]bool)
	for _, t := range tableKeys {
		all[t] = true
	}
	if ts == "" {
		return all, nil
	}
	result := make(map[string]bool)
	for _, t := range strings.Split(ts, ",") {
		if !all[t] {
			return nil, fmt.Errorf("unknown table %q", t)
		}
		result[t] = true
	}
	return result, nil
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

func dump(w io.Writer, name string, t *table.Table) {
	fmt.Fprintf(w, "%s\n", name)
	for i := 0; i < t.Len(); i += 8 {
		fmt.Fprintf(w, "%4d\t", i)
		for j := i; j < i+8 && j < t.Len(); j++ {
			fmt.Fprintf(w, "%02x\t", uint8(t.At(j)))
		}
		fmt.Fprintln(w)
	}
}

func stats(w io.Writer, p *message.Printer, t *table.Table) {
	lo, hi := fix.MaxS17, fix.MinS17
	sum, crossings := 0.0, 0
	prev := t.At(t.Len() - 1)
	for i := 0; i < t.Len(); i++ {
		s := t.At(i)
		if s < lo {
			lo = s
		}
		if s > hi {
			hi = s
		}
		f := fix.S17ToFloat[float64](s)
		sum += f * f
		if (s < 0) != (prev < 0) {
			crossings++
		}
		prev = s
	}
	p.Fprintf(w, "%d cells\tmin %v\tmax %v\trms %.4f\t%d zero crossings\n",
		t.Len(), lo, hi, math.Sqrt(sum/float64(t.Len())), crossings)
}

func fail(reason string) {
	fmt.Fprintln(os.Stderr, reason)
	os.Exit(1)
}
