// Command wininfo prints properties of the analysis window families.
//
// Usage:
//
//	wininfo [flags] [window-name ...]
//
// Without arguments it prints info for all supported families.
//
// Examples:
//
//	wininfo hann
//	wininfo -size 1024 blackman
//	wininfo -list
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-stft/dsp/window"
)

var registry = []window.Type{
	window.TypeNone,
	window.TypeHann,
	window.TypeHamming,
	window.TypeBlackman,
}

func main() {
	size := flag.Int("size", 1024, "window length in samples")
	list := flag.Bool("list", false, "list available window names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: wininfo [flags] [window-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints properties of the analysis window families.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints info for all families.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	types := resolveTypes(flag.Args())
	if len(types) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching window types\n")
		os.Exit(1)
	}

	printAnalysis(types, *size)
}

func printList() {
	names := make([]string, len(registry))
	for i, t := range registry {
		names[i] = t.String()
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}

func resolveTypes(names []string) []window.Type {
	if len(names) == 0 {
		return registry
	}

	var result []window.Type
	for _, name := range names {
		t := window.ParseType(name)
		if t == window.TypeNone && strings.ToLower(strings.TrimSpace(name)) != "none" {
			fmt.Fprintf(os.Stderr, "warning: unknown window %q treated as pass-through (use -list to see available)\n", name)
		}
		result = append(result, t)
	}
	return result
}

func printAnalysis(types []window.Type, size int) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Window\tSize\tCoherent Gain\tENBW [bins]\tScallop [dB]\n")
	fmt.Fprintf(tw, "------\t----\t-------------\t-----------\t------------\n")

	for _, t := range types {
		coeffs := window.Generate(t, size)
		a := window.Analyze(coeffs)

		fmt.Fprintf(tw, "%s\t%d\t%.6f\t%.4f\t%.4f\n",
			t,
			size,
			a.CoherentGain,
			a.ENBW,
			a.ScallopLossdB,
		)
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
