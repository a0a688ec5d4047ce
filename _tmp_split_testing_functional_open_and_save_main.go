// open_and_save is a functional testing application that is part of
// marc-kit and is designed to verify that the read and write logic of
// pkg/marcio round-trips a MARC 21 file byte-for-byte: every record read
// from the input file is written back out with a fresh Writer, and the
// two files' MD5 sums must match.
package main

import (
	"crypto/md5"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bgrewell/marc-kit/pkg/logging"
	"github.com/bgrewell/marc-kit/pkg/marcio"
	"github.com/bgrewell/usage"
)

func generateFileMD5(filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", hash.Sum(nil)), nil
}

func main() {

	u := usage.NewUsage(
		usage.WithApplicationName("open_and_save"),
		usage.WithApplicationDescription("open_and_save is a functional testing application that is part of marc-kit and is designed to verify that the read and write logic of pkg/marcio is working as expected."),
	)
	help := u.AddBooleanOption("h", "help", false, "Display this help message", "", nil)
	rm := u.AddBooleanOption("rm", "remove-test-file", true, "Remove the test file after running the tests", "", nil)
	input := u.AddArgument(1, "input", "The input MARC file to run the tests against", "")
	parsed := u.Parse()

	if !parsed {
		u.PrintError(fmt.Errorf("failed to parse arguments"))
		os.Exit(1)
	}

	if *help {
		u.PrintUsage()
		os.Exit(0)
	}

	if input == nil || *input == "" {
		u.PrintError(fmt.Errorf("location of the input marc file <input> must be provided"))
		os.Exit(1)
	}

	logger := logging.NewLogger(logging.NewSimpleLogger(os.Stderr, logging.LEVEL_TRACE, true))

	in, err := os.Open(*input)
	if err != nil {
		fmt.Printf("Failed to open MARC file: %s\n", err)
		os.Exit(1)
	}
	defer in.Close()

	o, err := os.CreateTemp("", "open_and_save_test_*.mrc")
	if err != nil {
		fmt.Printf("Failed to create temporary file: %s\n", err)
		os.Exit(1)
	}
	if *rm {
		defer os.Remove(o.Name())
	} else {
		fmt.Printf("Temporary file: %s\n", o.Name())
	}

	reader := marcio.NewReader(in, marcio.WithReaderLogger(logger))
	writer := marcio.NewWriter(o)

	count := 0
	for {
		rec, err := reader.ReadRecord()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			fmt.Printf("Failed to read record %d: %s\n", count+1, err)
			os.Exit(1)
		}
		if err := writer.WriteRecord(rec); err != nil {
			fmt.Printf("Failed to write record %d: %s\n", count+1, err)
			os.Exit(1)
		}
		count++
	}
	o.Close()

	inputHash, err := generateFileMD5(*input)
	if err != nil {
		fmt.Printf("Failed to generate MD5 hash for input file: %s\n", err)
		os.Exit(1)
	}

	outputHash, err := generateFileMD5(o.Name())
	if err != nil {
		fmt.Printf("Failed to generate MD5 hash for output file: %s\n", err)
		os.Exit(1)
	}

	if inputHash != outputHash {
		fmt.Printf("MD5 hash of input file does not match MD5 hash of output file after round-tripping %d record(s):\n  Input:  %s\n  Output: %s\n", count, inputHash, outputHash)
		os.Exit(1)
	}

	fmt.Printf("round-tripped %d record(s); MD5 hashes match (%s)\n", count, inputHash)
}

