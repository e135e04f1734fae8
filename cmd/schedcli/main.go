// Command schedcli solves a scenario file and writes the resulting
// schedule as CSV: an input path, an optional output path, --timeout,
// and -v. XLSX output and cell prettification are out of scope.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/j3soon/nurse-scheduling-go/internal/exportcsv"
	"github.com/j3soon/nurse-scheduling-go/internal/extract"
	"github.com/j3soon/nurse-scheduling-go/internal/loader"
	"github.com/j3soon/nurse-scheduling-go/internal/orchestrator"
	"github.com/j3soon/nurse-scheduling-go/internal/solver/cpsat"
)

func main() {
	var (
		timeout       = flag.Int("timeout", 0, "maximum solve time in seconds (0 = unbounded)")
		verbose       = flag.Int("v", 0, "verbosity level (repeatable via -v=N)")
		deterministic = flag.Bool("deterministic", false, "fix random_seed=0 and num_workers=1")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] input_file_path [output_path]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *verbose == 0 {
		log.SetOutput(io.Discard)
	}

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}
	inputPath := flag.Arg(0)
	var outputPath string
	if flag.NArg() >= 2 {
		outputPath = flag.Arg(1)
	}

	doc, result, err := loader.LoadFile(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if !result.IsValid() {
		fmt.Fprintln(os.Stderr, result.Summary())
		os.Exit(1)
	}

	opts := orchestrator.Options{Deterministic: *deterministic}
	if *timeout > 0 {
		opts.Timeout = time.Duration(*timeout) * time.Second
	}

	res, err := orchestrator.Solve(context.Background(), doc, cpsat.New(), opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if !res.Status.Success() {
		fmt.Println("No solution found")
		fmt.Printf("Status: %s\n", res.Status)
		return
	}

	table := extract.Build(doc, res.Index, res.Context, res.Sol)

	if outputPath == "" {
		if err := exportcsv.Write(os.Stdout, table); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Score: %d\n", res.Score)
		fmt.Printf("Status: %s\n", res.Status)
		return
	}

	f, err := os.Create(outputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()
	if err := exportcsv.Write(f, table); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Results saved to %s\n", outputPath)
	fmt.Printf("Score: %d\n", res.Score)
	fmt.Printf("Status: %s\n", res.Status)
}
