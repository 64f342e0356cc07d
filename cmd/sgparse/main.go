// Command sgparse parses a Stormgate ".SGReplay" file and prints a
// structured summary, or the full export document as JSON.
//
// Usage:
//
//	sgparse [options] <path>
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/sgreplay/sgreplay/replayparser"
	"github.com/sgreplay/sgreplay/sgrep/capability"
)

type options struct {
	JSON            bool   `long:"json" description:"emit the full export document as JSON, including the raw action stream"`
	Output          string `long:"output" description:"write output to this file instead of stdout"`
	Quiet           bool   `long:"quiet" description:"suppress the human-readable summary"`
	NoLookup        bool   `long:"no-lookup" description:"disable capability dictionary and structure set resolution"`
	IncludeBytes    bool   `long:"include-bytes" description:"retain a truncated hex preview of opaque byte leaves"`
	BytesHexLimit   int    `long:"bytes-hex-limit" default:"64" description:"maximum hex-preview length when --include-bytes is set"`
	IncludeMessages bool   `long:"include-messages" description:"include the raw record tree in the export document"`

	Args struct {
		Path string `positional-arg-name:"path" description:"replay file to parse" required:"true"`
	} `positional-args:"yes"`
}

func main() {
	os.Exit(run())
}

func run() int {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	parser.Name = "sgparse"
	parser.LongDescription = "Parses a Stormgate replay file and prints a structured summary or JSON export."

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return 0
		}
		return 1
	}

	cfg := replayparser.Config{}
	if !opts.NoLookup {
		cfg.Dictionary = loadDictionary(os.Getenv("SGREPLAY_DICTIONARY"))
		cfg.Structures = loadStructures(os.Getenv("SGREPLAY_STRUCTURES"))
	}

	res, err := replayparser.ParseFileConfig(context.Background(), opts.Args.Path, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sgparse: %v\n", err)
		return 1
	}

	out := os.Stdout
	if opts.Output != "" {
		f, err := os.Create(opts.Output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "sgparse: %v\n", err)
			return 1
		}
		defer f.Close()
		out = f
	}

	if opts.JSON {
		doc := res.Export(replayparser.ExportOptions{
			IncludeActions: true,
			IncludeRecords: opts.IncludeMessages,
			IncludeBytes:   opts.IncludeBytes,
			BytesHexLimit:  opts.BytesHexLimit,
		})
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			fmt.Fprintf(os.Stderr, "sgparse: %v\n", err)
			return 1
		}
		return 0
	}

	if !opts.Quiet {
		printSummary(out, res)
	}
	return 0
}

func printSummary(out *os.File, res *replayparser.Result) {
	fmt.Fprintf(out, "Map: %s\n", res.Map)
	fmt.Fprintf(out, "Duration: %.1fs\n", res.DurationSeconds)
	fmt.Fprintf(out, "Result: %s\n", res.GameResult.Result)
	fmt.Fprintln(out, "Players:")
	for slot, name := range res.Players {
		team := res.Teams[slot]
		faction := res.Factions[slot]
		fmt.Fprintf(out, "  [%d] %s (team %d, %s)\n", slot, name, team, faction)
	}
	fmt.Fprintf(out, "Actions: %d across %d records\n", len(res.Actions), len(res.Records))
}

// loadDictionary loads a capability dictionary from path, or returns nil if
// path is empty or the file cannot be read: dictionary resolution is a
// best-effort refinement, never a hard requirement to parse a replay.
func loadDictionary(path string) *capability.Dictionary {
	if path == "" {
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()
	dict, err := capability.LoadDictionary(f)
	if err != nil {
		return nil
	}
	return dict
}

func loadStructures(path string) *capability.StructureSet {
	if path == "" {
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()
	set, err := capability.LoadStructureSet(f)
	if err != nil {
		return nil
	}
	return set
}
