package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bgrewell/marc-kit/pkg/authority"
	"github.com/bgrewell/marc-kit/pkg/holdings"
	"github.com/bgrewell/marc-kit/pkg/logging"
	"github.com/bgrewell/marc-kit/pkg/marcio"
	"github.com/bgrewell/marc-kit/pkg/record"
	"github.com/bgrewell/marc-kit/pkg/recovery"
	"github.com/bgrewell/usage"
	"golang.org/x/term"
)

func main() {
	u := usage.NewUsage(
		usage.WithApplicationName("marcdump"),
		usage.WithApplicationDescription("marcdump is a command-line tool for inspecting MARC 21 / ISO 2709 record files. It prints each record's leader, fields and subfields, and flags fields whose bytes look inconsistent with the leader's declared character coding."),
	)

	help := u.AddBooleanOption("h", "help", false, "Show this help message", "", nil)
	verbose := u.AddBooleanOption("v", "verbose", false, "Print every field and subfield instead of a one-line summary", "", nil)
	detect := u.AddBooleanOption("d", "detect-encoding", false, "Flag fields whose bytes look mismatched against the leader's declared encoding", "", nil)
	lenient := u.AddBooleanOption("l", "lenient", false, "Tolerate malformed records instead of stopping at the first one", "", nil)
	limit := u.AddArgument(2, "limit", "Stop after printing this many records (0 for unlimited)", "0")
	path := u.AddArgument(1, "marc-path", "Path to the MARC 21 file to inspect", "")
	parsed := u.Parse()

	if !parsed {
		u.PrintError(fmt.Errorf("failed to parse arguments"))
		os.Exit(1)
	}
	if *help {
		u.PrintUsage()
		os.Exit(0)
	}
	if path == nil || *path == "" {
		u.PrintError(fmt.Errorf("path to the marc file <marc-path> must be provided"))
		os.Exit(1)
	}

	mode := recovery.Strict
	if *lenient {
		mode = recovery.Lenient
	}

	f, err := os.Open(*path)
	if err != nil {
		u.PrintError(err)
		os.Exit(1)
	}
	defer f.Close()

	opts := []marcio.ReadOption{
		marcio.WithRecoveryMode(mode),
		marcio.WithReaderLogger(logging.NewLogger(logging.NewSimpleLogger(os.Stderr, logging.LEVEL_INFO, true))),
	}
	if *detect {
		opts = append(opts, marcio.WithEncodingDetection(true))
	}
	reader := marcio.NewReader(f, opts...)

	width := terminalWidth()
	count := 0
	for {
		n := parseLimit(*limit)
		if n > 0 && count >= n {
			break
		}
		rec, err := reader.ReadRecord()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			u.PrintError(err)
			os.Exit(1)
		}
		count++
		printRecord(count, rec, *verbose, width)
		if *detect {
			for _, rep := range marcio.Mismatches(reader.LastEncodingReports()) {
				fmt.Printf("  !! field %s: %d escape bytes vs %d utf8 lead bytes (declared %v)\n",
					rep.Tag, rep.EscapeBytes, rep.UTF8LeadBytes, rep.Declared)
			}
		}
	}
	fmt.Printf("\n%d record(s) read from %s\n", count, *path)
}

func parseLimit(s string) int {
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0
		}
		n = n*10 + int(c-'0')
	}
	return n
}

func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

func printRecord(n int, rec *record.Record, verbose bool, width int) {
	fmt.Printf("=== record %d (%s) ===\n", n, strings.Repeat("-", max(0, width-24)))
	fmt.Printf("leader: status=%c type=%c level=%c coding=%c\n",
		rec.Leader.RecordStatus, rec.Leader.RecordType, rec.Leader.BibliographicLevel, rec.Leader.CharacterCoding)

	if title, ok := rec.Title(); ok {
		fmt.Printf("title: %s\n", title)
	}

	switch {
	case rec.Leader.IsAuthority():
		printAuthoritySummary(rec)
	case rec.Leader.IsHoldings():
		printHoldingsSummary(rec)
	}

	if !verbose {
		fmt.Printf("control fields: %d, data fields: %d\n", len(rec.ControlFields()), len(rec.Fields()))
		return
	}

	for _, cf := range rec.ControlFields() {
		fmt.Printf("  %s  %s\n", cf.Tag, cf.Value)
	}
	for _, f := range rec.Fields() {
		fmt.Printf("  %s %c%c %s\n", f.Tag, f.Indicator1, f.Indicator2, f.Formatted())
	}
}

func printAuthoritySummary(rec *record.Record) {
	a := authority.Record{Record: rec}
	if tracings := a.SeeFromTracings(); len(tracings) > 0 {
		fmt.Printf("see-from tracings: %d\n", len(tracings))
	}
}

func printHoldingsSummary(rec *record.Record) {
	h := holdings.Record{Record: rec}
	if locations := h.Locations(); len(locations) > 0 {
		fmt.Printf("holdings locations: %d\n", len(locations))
	}
}

