// Package main provides a command line tool for working with BLF capture
// files: inspecting file statistics, dumping decoded objects, importing
// captures into a sqlite trace store, and rendering HTML traffic reports.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"

	"github.com/banshee-data/bustrace/internal/blf"
	"github.com/banshee-data/bustrace/internal/monitoring"
	"github.com/banshee-data/bustrace/internal/netdecode"
	"github.com/banshee-data/bustrace/internal/report"
	"github.com/banshee-data/bustrace/internal/tracestore"
	"github.com/banshee-data/bustrace/internal/version"
)

const usageText = `usage: blftool <command> [flags]

Commands:
  info    <file.blf>   print file statistics and object type counts
  dump    <file.blf>   print decoded objects one per line
  export  <file.blf>   import a capture into a sqlite trace store
  chart                render an HTML traffic report for an imported session
  version              print build identification

Run "blftool <command> -h" for command flags.
`

func main() {
	log.SetFlags(0)

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usageText)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "info":
		err = runInfo(os.Args[2:])
	case "dump":
		err = runDump(os.Args[2:])
	case "export":
		err = runExport(os.Args[2:])
	case "chart":
		err = runChart(os.Args[2:])
	case "version":
		fmt.Println(version.String())
	case "-h", "--help", "help":
		fmt.Fprint(os.Stderr, usageText)
		os.Exit(2)
	default:
		fmt.Fprintf(os.Stderr, "blftool: unknown command %q\n\n%s", os.Args[1], usageText)
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("blftool %s: %v", os.Args[1], err)
	}
}

func openCapture(path string) (*os.File, *blf.StreamingReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	sr, err := blf.NewStreamingReader(f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return f, sr, nil
}

func runInfo(args []string) error {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	verbose := fs.Bool("v", false, "Verbose parse logging")
	fs.Parse(args)
	if fs.NArg() != 1 {
		return errors.New("expected exactly one capture file")
	}
	monitoring.SetVerbose(*verbose)

	f, sr, err := openCapture(fs.Arg(0))
	if err != nil {
		return err
	}
	defer f.Close()

	stats := sr.Statistics()
	fmt.Printf("file:              %s\n", fs.Arg(0))
	fmt.Printf("api version:       %s\n", stats.APIVersion())
	fmt.Printf("application:       id=%d version=%d.%d build=%d\n",
		stats.AppID, stats.AppMajor, stats.AppMinor, stats.ApplicationBuild)
	fmt.Printf("file size:         %d bytes (%d uncompressed)\n", stats.FileSize, stats.UncompressedFileSize)
	fmt.Printf("object count:      %d\n", stats.ObjectCount)
	fmt.Printf("measurement start: %s\n", stats.MeasurementStart)
	fmt.Printf("last object time:  %s\n", stats.LastObjectTime)

	counts := map[blf.ObjectType]int{}
	total := 0
	for {
		obj, err := sr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		counts[obj.Header().Type]++
		total++
	}

	types := make([]blf.ObjectType, 0, len(counts))
	for t := range counts {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return counts[types[i]] > counts[types[j]] })

	fmt.Printf("\ndecoded objects:   %d\n", total)
	for _, t := range types {
		fmt.Printf("  %-28s %d\n", t, counts[t])
	}
	return nil
}

func runDump(args []string) error {
	fs := flag.NewFlagSet("dump", flag.ExitOnError)
	max := fs.Int("max", 0, "Stop after this many objects (0 = all)")
	net := fs.Bool("net", false, "Decode Ethernet frame payloads to IP/transport summaries")
	abs := fs.Bool("abs", false, "Print wall-clock timestamps instead of nanosecond offsets")
	verbose := fs.Bool("v", false, "Verbose parse logging")
	fs.Parse(args)
	if fs.NArg() != 1 {
		return errors.New("expected exactly one capture file")
	}
	monitoring.SetVerbose(*verbose)

	f, sr, err := openCapture(fs.Arg(0))
	if err != nil {
		return err
	}
	defer f.Close()

	n := 0
	for {
		obj, err := sr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		ts := fmt.Sprintf("%14d", obj.Header().TimestampNS)
		if *abs {
			ts = sr.Statistics().ObjectTime(obj.Header().TimestampNS).Format("15:04:05.000000")
		}
		fmt.Printf("%s %s\n", ts, formatObject(obj, *net))
		n++
		if *max > 0 && n >= *max {
			break
		}
	}
	return nil
}

// formatObject renders one decoded object as a single dump line, minus the
// timestamp column. Types without a dedicated format fall back to the type
// name and size.
func formatObject(obj blf.LogObject, decodeNet bool) string {
	h := obj.Header()
	prefix := fmt.Sprintf("%-22s", h.Type)

	switch o := obj.(type) {
	case *blf.CanMessage:
		return fmt.Sprintf("%s ch=%d id=0x%X dlc=%d data=% X", prefix, o.Channel, o.ID, o.DLC, o.Data[:])
	case *blf.CanMessage2:
		return fmt.Sprintf("%s ch=%d id=0x%X dlc=%d data=% X", prefix, o.Channel, o.ID, o.DLC, o.Data)
	case *blf.CanFdMessage:
		return fmt.Sprintf("%s ch=%d id=0x%X dlc=%d data=% X", prefix, o.Channel, o.ID, o.DLC, o.Payload())
	case *blf.CanFdMessage64:
		return fmt.Sprintf("%s ch=%d id=0x%X dlc=%d layout=%s data=% X",
			prefix, o.Channel, o.ID, o.DLC, o.Layout, o.Data)
	case *blf.LinMessage:
		return fmt.Sprintf("%s ch=%d id=0x%X dlc=%d data=% X", prefix, o.Channel, o.ID, o.DLC, o.Data[:])
	case *blf.FlexRayMessage:
		return fmt.Sprintf("%s ch=%d frame=0x%X cycle=%d len=%d", prefix, o.Channel, o.FrameID, o.Cycle, o.Length)
	case *blf.EthernetFrame:
		if decodeNet {
			return fmt.Sprintf("%s ch=%d %s", prefix, o.Channel, netdecode.Summarize(o))
		}
		return fmt.Sprintf("%s ch=%d %s > %s type=0x%04X len=%d",
			prefix, o.Channel, o.SourceMAC(), o.DestinationMAC(), o.FrameType, len(o.Payload))
	case *blf.EventComment:
		return fmt.Sprintf("%s %q", prefix, o.Text)
	default:
		return fmt.Sprintf("%s size=%d", prefix, h.ObjectSize)
	}
}

func runExport(args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	dbPath := fs.String("db", "trace.db", "Path to the sqlite trace store")
	verbose := fs.Bool("v", false, "Verbose parse logging")
	fs.Parse(args)
	if fs.NArg() != 1 {
		return errors.New("expected exactly one capture file")
	}
	monitoring.SetVerbose(*verbose)

	store, err := tracestore.Open(*dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	sess, err := store.ImportFile(ctx, fs.Arg(0))
	if err != nil {
		return err
	}

	count, err := store.MessageCount(ctx, sess.ID)
	if err != nil {
		return err
	}
	fmt.Printf("session %s: %d objects scanned, %d messages stored\n", sess.ID, sess.ObjectCount, count)
	return nil
}

func runChart(args []string) error {
	fs := flag.NewFlagSet("chart", flag.ExitOnError)
	dbPath := fs.String("db", "trace.db", "Path to the sqlite trace store")
	sessionID := fs.String("session", "", "Session to report on (default: most recent)")
	out := fs.String("out", "report.html", "Output HTML file")
	top := fs.Int("top", 20, "Number of frame IDs in the busiest-ID chart")
	timing := fs.Bool("timing", false, "Print per-channel interval statistics")
	fs.Parse(args)
	if fs.NArg() != 0 {
		return errors.New("chart takes no positional arguments")
	}

	store, err := tracestore.Open(*dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	id := *sessionID
	if id == "" {
		sessions, err := store.ListSessions(ctx)
		if err != nil {
			return err
		}
		if len(sessions) == 0 {
			return errors.New("trace store has no sessions; run export first")
		}
		id = sessions[0].ID
	}

	sess, err := store.GetSession(ctx, id)
	if err != nil {
		return err
	}
	channels, err := store.ChannelSummary(ctx, id)
	if err != nil {
		return err
	}
	topIDs, err := store.TopIDs(ctx, id, *top)
	if err != nil {
		return err
	}

	w, err := os.Create(*out)
	if err != nil {
		return err
	}
	if err := report.WriteSessionCharts(w, sess, channels, topIDs); err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	fmt.Printf("wrote %s for session %s (%d channels)\n", *out, sess.ID, len(channels))

	if *timing {
		for _, cs := range channels {
			ts, err := store.Timestamps(ctx, id, cs.Channel)
			if err != nil {
				return err
			}
			st := report.ComputeIntervalStats(ts)
			if st.Count == 0 {
				continue
			}
			fmt.Printf("%s %d: %d intervals, %.1f Hz, mean=%.0fns p95=%.0fns max=%.0fns\n",
				cs.Bus, cs.Channel, st.Count, st.RateHz, st.Mean, st.P95, st.Max)
		}
	}
	return nil
}
