package replayparser

import (
	"github.com/sgreplay/sgreplay/sgrep"
	"github.com/sgreplay/sgreplay/wire"
)

// ExportOptions controls which large, optional sub-trees are attached to
// an exported Document.
type ExportOptions struct {
	IncludeActions bool
	IncludeRecords bool
	IncludeBytes   bool
	BytesHexLimit  int

	_ struct{} // prevent unkeyed literals
}

// Export builds the structured sgrep.Document surface for r, omitting the
// large action/record lists unless opts requests them.
func (r *Result) Export(opts ExportOptions) *sgrep.Document {
	histogram := make(map[sgrep.ActionCategory]int)
	capUsage := make(map[string]int)
	for _, ev := range r.Actions {
		histogram[ev.Category]++
		if ev.AbilityRef != nil && ev.AbilityRef.Name != "" {
			capUsage[ev.AbilityRef.Name]++
		}
	}

	doc := &sgrep.Document{
		SourceFile:        r.SourceFile,
		Header:            r.Header,
		Map:               r.Map,
		Players:           r.Players,
		Teams:             r.Teams,
		Factions:          r.Factions,
		GameResult:        r.GameResult,
		BuildOrders:       r.BuildOrders,
		Upgrades:          r.Upgrades,
		Rewards:           r.Rewards,
		Production:        r.Production,
		MessageCount:      len(r.Records),
		ActionCount:       len(r.Actions),
		CategoryHistogram: histogram,
		Chat:              r.Chat,
		DurationSeconds:   r.DurationSeconds,
		CapabilityUsage:   capUsage,
		Entities:          r.Entities,
		Envelope: sgrep.EnvelopeDiagnostics{
			GzipHeaderLen:       r.Envelope.GzipHeaderLen,
			Trailer:             r.Envelope.Trailer,
			CompressedUnusedLen: r.Envelope.CompressedUnusedLen,
		},
	}

	renderOpts := wire.RenderOptions{IncludeBytes: opts.IncludeBytes, BytesHexLimit: opts.BytesHexLimit}

	if len(r.FooterRecords) > 0 {
		doc.Footer = r.FooterRecords[0].Tree.Render(renderOpts)
	}

	if opts.IncludeActions {
		doc.Actions = renderActionSources(r.Actions, renderOpts)
	}
	if opts.IncludeRecords {
		doc.Records = make([]sgrep.RenderedRecord, len(r.Records))
		for i, rec := range r.Records {
			doc.Records[i] = sgrep.RenderedRecord{
				Length: len(rec.Raw),
				Tree:   rec.Tree.Render(renderOpts),
			}
		}
	}

	return doc
}

// renderActionSources copies events, replacing each one's debug source
// subtree (a wire.Tree) with its rendered JSON form.
func renderActionSources(events []sgrep.ActionEvent, opts wire.RenderOptions) []sgrep.ActionEvent {
	out := make([]sgrep.ActionEvent, len(events))
	for i, ev := range events {
		if tree, ok := ev.Raw.(wire.Tree); ok {
			ev.Raw = tree.Render(opts)
		}
		out[i] = ev
	}
	return out
}
