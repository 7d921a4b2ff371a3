package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bgrewell/dlis-kit/pkg/dlis"
	"github.com/bgrewell/dlis-kit/pkg/logging"
	"github.com/bgrewell/dlis-kit/pkg/options"
	"github.com/bgrewell/dlis-kit/pkg/reprcode"
	"github.com/bgrewell/dlis-kit/pkg/schema"
	"github.com/bgrewell/dlis-kit/pkg/sourcedata"
	"github.com/bgrewell/usage"
	"github.com/theckman/yacspin"
)

// buildDemoWriter assembles a minimal but complete DLIS file around a
// synthetic well log: a FILE-HEADER, an ORIGIN, one CHANNEL per synthetic
// column, and a single FRAME writing every generated row (SPEC_FULL.md §12).
func buildDemoWriter(w *dlis.Writer, src *sourcedata.InMemory, nCols int) error {
	if err := w.SetFileHeader(schema.FileHeaderConfig{Identifier: "dliswriter demo", SequenceNumber: 1}); err != nil {
		return err
	}
	if _, err := w.SetOrigin(schema.OriginConfig{
		Name:        "ORIGIN",
		FileID:      "dliswriter-demo",
		FileSetName: "DLISWRITER-DEMO",
		Product:     "dliswriter",
		Version:     "1.0",
		WellName:    "SYNTHETIC-1",
		Company:     "bgrewell",
	}); err != nil {
		return err
	}

	var channelRefs []reprcode.ObjRef
	for _, name := range src.ChannelNames() {
		dim := []int{1}
		if strings.HasPrefix(name, "image") {
			dim = []int{nCols}
		}
		ref, err := w.AddChannel(schema.ChannelConfig{
			Name:      name,
			LongName:  name,
			ReprCode:  reprcode.FDOUBL,
			Dimension: dim,
		})
		if err != nil {
			return err
		}
		channelRefs = append(channelRefs, ref)
	}

	indexSamples, err := indexColumn(src)
	if err != nil {
		return err
	}
	if _, err := w.AddFrame(schema.FrameConfig{
		Name:      "MAIN",
		Channels:  channelRefs,
		IndexType: "TIME",
	}, indexSamples); err != nil {
		return err
	}

	return w.WriteFrameData(context.Background(), "MAIN", src)
}

// indexColumn extracts the first channel's scalar samples, the index
// channel by convention, so AddFrame can infer direction/spacing from real
// data rather than leaving those attributes absent.
func indexColumn(src *sourcedata.InMemory) ([]float64, error) {
	rows, err := src.LoadChunk(0, src.NRows())
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(rows))
	for i, row := range rows {
		v, ok := row[0][0].(float64)
		if !ok {
			return nil, fmt.Errorf("index channel sample %d is not a float64", i)
		}
		out[i] = v
	}
	return out, nil
}

func main() {
	u := usage.NewUsage(
		usage.WithApplicationName("dliswriter"),
		usage.WithApplicationDescription("dliswriter writes a synthetic RP66 V1 (DLIS) well log file, demonstrating the writer's Frame/Channel/Origin API end to end."),
	)

	help := u.AddBooleanOption("h", "help", false, "Show this help message", "optional", nil)
	verbose := u.AddBooleanOption("v", "verbose", false, "Print verbose logging while writing", "", nil)
	depthBased := u.AddBooleanOption("d", "depth", false, "Use a depth index instead of a time index", "", nil)
	points := u.AddArgument(1, "n-points", "Number of frames (rows) to generate", "1000")
	output := u.AddArgument(2, "output", "Path to write the DLIS file to", "out.dlis")
	parsed := u.Parse()

	if !parsed {
		u.PrintError(fmt.Errorf("failed to parse arguments"))
		os.Exit(1)
	}
	if *help {
		u.PrintUsage()
		os.Exit(0)
	}

	logLevel := logging.LEVEL_INFO
	if *verbose {
		logLevel = logging.LEVEL_TRACE
	}
	log := logging.NewSimpleLogger(os.Stderr, logLevel, true)

	nPoints := 1000
	if _, err := fmt.Sscanf(*points, "%d", &nPoints); err != nil || nPoints <= 0 {
		u.PrintError(fmt.Errorf("n-points must be a positive integer"))
		os.Exit(1)
	}

	src, err := sourcedata.GenerateSynthetic(sourcedata.SyntheticConfig{
		NPoints:    nPoints,
		NImages:    2,
		NCols:      64,
		DepthBased: *depthBased,
	})
	if err != nil {
		u.PrintError(fmt.Errorf("failed to generate synthetic data: %w", err))
		os.Exit(1)
	}

	spinner, spinErr := yacspin.New(yacspin.Config{
		Frequency:       100 * time.Millisecond,
		CharSet:         yacspin.CharSets[9],
		Suffix:          " writing DLIS file",
		SuffixAutoColon: true,
		Message:         "encoding",
		StopCharacter:   "✓",
		StopColors:      []string{"fgGreen"},
	})
	if spinErr == nil {
		_ = spinner.Start()
	}

	w := dlis.NewWriter(
		options.WithLogger(log),
		options.WithInputChunkSize(10_000),
	)
	if err := buildDemoWriter(w, src, 64); err != nil {
		if spinErr == nil {
			_ = spinner.StopFail()
		}
		u.PrintError(fmt.Errorf("failed to build DLIS writer: %w", err))
		os.Exit(1)
	}

	f, err := os.Create(*output)
	if err != nil {
		u.PrintError(fmt.Errorf("failed to create %s: %w", *output, err))
		os.Exit(1)
	}
	defer f.Close()

	if err := w.Write(f); err != nil {
		if spinErr == nil {
			_ = spinner.StopFail()
		}
		u.PrintError(fmt.Errorf("failed to write DLIS file: %w", err))
		os.Exit(1)
	}

	if spinErr == nil {
		_ = spinner.Stop()
	}
	fmt.Printf("wrote %s\n", *output)
}
