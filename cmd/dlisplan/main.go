// Command dlisplan prints the logical record layout a dlis.Writer would
// produce, without writing any bytes — the write-time analogue of the
// teacher's `isoview`/pkg/iso9660/info layout printer (SPEC_FULL.md §12).
// It builds the same synthetic demo file cmd/dliswriter does and shows the
// planned logical record sequence instead of encoding it; segment and
// Visible Record framing are not shown.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/bgrewell/dlis-kit/pkg/dlis"
	"github.com/bgrewell/dlis-kit/pkg/options"
	"github.com/bgrewell/dlis-kit/pkg/reprcode"
	"github.com/bgrewell/dlis-kit/pkg/schema"
	"github.com/bgrewell/dlis-kit/pkg/sourcedata"
	"github.com/bgrewell/usage"
	"github.com/fatih/color"
	"golang.org/x/term"
)

func buildDemoWriter(w *dlis.Writer, src *sourcedata.InMemory, nCols int) error {
	if err := w.SetFileHeader(schema.FileHeaderConfig{Identifier: "dlisplan demo", SequenceNumber: 1}); err != nil {
		return err
	}
	if _, err := w.SetOrigin(schema.OriginConfig{
		Name:        "ORIGIN",
		FileID:      "dlisplan-demo",
		FileSetName: "DLISPLAN-DEMO",
		Product:     "dlisplan",
		Version:     "1.0",
	}); err != nil {
		return err
	}

	var channelRefs []reprcode.ObjRef
	for _, name := range src.ChannelNames() {
		dim := []int{1}
		if strings.HasPrefix(name, "image") {
			dim = []int{nCols}
		}
		ref, err := w.AddChannel(schema.ChannelConfig{Name: name, LongName: name, ReprCode: reprcode.FDOUBL, Dimension: dim})
		if err != nil {
			return err
		}
		channelRefs = append(channelRefs, ref)
	}

	rows, err := src.LoadChunk(0, src.NRows())
	if err != nil {
		return err
	}
	index := make([]float64, len(rows))
	for i, row := range rows {
		index[i] = row[0][0].(float64)
	}
	if _, err := w.AddFrame(schema.FrameConfig{Name: "MAIN", Channels: channelRefs, IndexType: "TIME"}, index); err != nil {
		return err
	}
	return w.WriteFrameData(context.Background(), "MAIN", src)
}

// bannerWidth reports the terminal's column width via golang.org/x/term, so
// printPlan's header/footer rules span the actual window rather than a
// hardcoded guess; it falls back to 80 columns when stdout isn't a terminal
// (piped output, CI logs) or the ioctl fails.
func bannerWidth() int {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return 80
	}
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	if w > 120 {
		w = 120
	}
	return w
}

// printPlan renders the planned record sequence in the order it will be
// written, one line per logical record with a running byte offset (the sum
// of the preceding record body sizes); FRAME-DATA records after the first
// are folded into one closing total line — the DLIS analogue of
// ISOLayout.Print's colored item list.
func printPlan(records []dlis.Record, useColor bool) {
	categoryColor := map[string]func(a ...interface{}) string{
		"FILE-HEADER": color.New(color.FgBlue, color.Bold).SprintFunc(),
		"ORIGIN":      color.New(color.FgYellow, color.Bold).SprintFunc(),
		"CHANNEL":     color.New(color.FgCyan, color.Bold).SprintFunc(),
		"FRAME":       color.New(color.FgMagenta, color.Bold).SprintFunc(),
		"FRAME-DATA":  color.New(color.FgGreen, color.Bold).SprintFunc(),
	}
	plain := func(a ...interface{}) string { return fmt.Sprint(a...) }
	colorFor := func(category string) func(a ...interface{}) string {
		if !useColor {
			return plain
		}
		if c, ok := categoryColor[category]; ok {
			return c
		}
		return color.New(color.FgWhite).SprintFunc()
	}

	headerColor := plain
	if useColor {
		headerColor = color.New(color.FgCyan, color.Bold).SprintFunc()
	}
	rule := strings.Repeat("=", bannerWidth())
	fmt.Println(headerColor("\n" + rule))
	fmt.Println(headerColor("DLIS Planned Layout"))
	fmt.Println(headerColor(rule))

	offset := 0
	frameDataCount := 0
	for _, r := range records {
		kind := "EFLR"
		if !r.IsEFLR {
			kind = "IFLR"
			frameDataCount++
			if frameDataCount > 1 {
				// Collapse the (often thousands of) FrameData records into
				// a single running tally rather than one line each.
				offset += r.Size
				continue
			}
		}
		fmt.Printf("[offset: %8d] [%s] [%-11s] %d bytes\n",
			offset, kind, colorFor(r.SetType)(fmt.Sprintf("%-11s", r.SetType)), r.Size)
		offset += r.Size
	}
	if frameDataCount > 1 {
		fmt.Printf("  ... %d FRAME-DATA records total\n", frameDataCount)
	}
	fmt.Println(headerColor(rule))
}

func main() {
	u := usage.NewUsage(
		usage.WithApplicationName("dlisplan"),
		usage.WithApplicationDescription("dlisplan prints the planned logical record layout for a synthetic DLIS file before any bytes are written."),
	)

	help := u.AddBooleanOption("h", "help", false, "Show this help message", "optional", nil)
	noColor := u.AddBooleanOption("n", "no-color", false, "Disable colored output", "", nil)
	points := u.AddArgument(1, "n-points", "Number of frames (rows) to plan", "1000")
	parsed := u.Parse()

	if !parsed {
		u.PrintError(fmt.Errorf("failed to parse arguments"))
		os.Exit(1)
	}
	if *help {
		u.PrintUsage()
		os.Exit(0)
	}

	nPoints := 1000
	if _, err := fmt.Sscanf(*points, "%d", &nPoints); err != nil || nPoints <= 0 {
		u.PrintError(fmt.Errorf("n-points must be a positive integer"))
		os.Exit(1)
	}

	src, err := sourcedata.GenerateSynthetic(sourcedata.SyntheticConfig{NPoints: nPoints, NImages: 2, NCols: 64})
	if err != nil {
		u.PrintError(fmt.Errorf("failed to generate synthetic data: %w", err))
		os.Exit(1)
	}

	w := dlis.NewWriter(options.WithVisibleRecordLength(8192))
	if err := buildDemoWriter(w, src, 64); err != nil {
		u.PrintError(fmt.Errorf("failed to build DLIS writer: %w", err))
		os.Exit(1)
	}

	plan, err := w.Plan()
	if err != nil {
		u.PrintError(fmt.Errorf("failed to plan DLIS file: %w", err))
		os.Exit(1)
	}

	printPlan(plan, !*noColor)
}
