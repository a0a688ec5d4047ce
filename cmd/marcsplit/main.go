// marcsplit scans a large MARC 21 / ISO 2709 file and splits it into
// fixed-size batch files, parsing records through the parallel pipeline
// and re-serialising each batch with a fresh Writer so every output file
// carries a correct, self-contained leader/directory/data layout.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/bgrewell/marc-kit/pkg/logging"
	"github.com/bgrewell/marc-kit/pkg/marcio"
	"github.com/bgrewell/marc-kit/pkg/pipeline"
	"github.com/bgrewell/marc-kit/pkg/recovery"
	"github.com/theckman/yacspin"
)

func main() {
	debug := flag.Bool("v", false, "Enable verbose (debug) logging")
	trace := flag.Bool("vv", false, "Enable trace logging")
	lenient := flag.Bool("lenient", false, "Tolerate malformed records instead of stopping at the first one")
	workers := flag.Int("workers", 0, "Worker pool size (0 selects runtime.NumCPU())")
	batchSize := flag.Int("batch", 1000, "Number of records per output file")
	outputDir := flag.String("o", "./split", "Output directory for the batch files")

	flag.Parse()

	var logLevel int
	switch {
	case *trace:
		logLevel = logging.LEVEL_TRACE
	case *debug:
		logLevel = logging.LEVEL_DEBUG
	default:
		logLevel = logging.LEVEL_INFO
	}
	logger := logging.NewLogger(logging.NewSimpleLogger(os.Stderr, logLevel, true))

	if flag.NArg() < 1 {
		fmt.Println("Usage: marcsplit [options] <path-to-marc-file>")
		fmt.Println("  -v               Enable verbose (debug) logging")
		fmt.Println("  -vv              Enable trace logging")
		fmt.Println("  -lenient         Tolerate malformed records")
		fmt.Println("  -workers <n>     Worker pool size (default: runtime.NumCPU())")
		fmt.Println("  -batch <n>       Records per output file (default 1000)")
		fmt.Println("  -o <directory>   Output directory (default './split')")
		os.Exit(1)
	}
	inputPath := flag.Arg(0)

	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create output directory: %v\n", err)
		os.Exit(1)
	}

	mode := recovery.Strict
	if *lenient {
		mode = recovery.Lenient
	}

	spinner, err := yacspin.New(yacspin.Config{
		Frequency:       100 * time.Millisecond,
		CharSet:         yacspin.CharSets[11],
		Suffix:          " splitting " + inputPath,
		SuffixAutoColon: true,
		Message:         "starting",
		StopCharacter:   "✓",
		StopMessage:     "done",
		StopColors:      []string{"fgGreen"},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build progress spinner: %v\n", err)
		os.Exit(1)
	}
	if err := spinner.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to start progress spinner: %v\n", err)
		os.Exit(1)
	}

	opts := []pipeline.Option{
		pipeline.WithRecoveryMode(mode),
		pipeline.WithPipelineLogger(logger),
	}
	if *workers > 0 {
		opts = append(opts, pipeline.WithWorkers(*workers))
	}
	p, err := pipeline.Open(inputPath, opts...)
	if err != nil {
		_ = spinner.StopFail()
		fmt.Fprintf(os.Stderr, "failed to open %s: %v\n", inputPath, err)
		os.Exit(1)
	}
	defer p.Close()

	total, files, err := splitRecords(p, *outputDir, *batchSize, spinner)
	if err != nil {
		_ = spinner.StopFail()
		fmt.Fprintf(os.Stderr, "splitting failed after %d records: %v\n", total, err)
		os.Exit(1)
	}

	_ = spinner.Stop()
	fmt.Printf("wrote %d record(s) across %d file(s) to %s\n", total, files, *outputDir)
}

func splitRecords(p *pipeline.Pipeline, outputDir string, batchSize int, spinner *yacspin.Spinner) (total int, files int, err error) {
	var (
		out     *os.File
		writer  *marcio.Writer
		inBatch int
	)
	closeBatch := func() error {
		if out == nil {
			return nil
		}
		err := out.Close()
		out = nil
		writer = nil
		inBatch = 0
		return err
	}
	defer closeBatch()

	for {
		rec, rerr := p.Next()
		if rerr != nil {
			if errors.Is(rerr, io.EOF) {
				break
			}
			return total, files, rerr
		}

		if writer == nil {
			files++
			name := filepath.Join(outputDir, fmt.Sprintf("batch-%04d.mrc", files))
			out, err = os.Create(name)
			if err != nil {
				return total, files, err
			}
			writer = marcio.NewWriter(out)
		}

		if err := writer.WriteRecord(rec); err != nil {
			return total, files, err
		}
		total++
		inBatch++
		_ = spinner.Message(fmt.Sprintf("%d records, %d files", total, files))

		if inBatch >= batchSize {
			if err := closeBatch(); err != nil {
				return total, files, err
			}
		}
	}

	if err := closeBatch(); err != nil {
		return total, files, err
	}
	return total, files, nil
}
