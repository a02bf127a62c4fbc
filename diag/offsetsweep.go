// Package diag holds developer-only diagnostics that have no place in the
// production decode path: chiefly the offset-sweep helper used to probe an
// unfamiliar or undocumented response's field layout.
package diag

import (
	"fmt"
	"strings"

	"github.com/jkgomes/saga1000-client/schema"
)

// MaxSweepOffset bounds OffsetSweep's search, matching the original
// source's inspecionar_offsets_bytes (offsets 0..29).
const MaxSweepOffset = 29

// SweepResult is one offset's trial decode.
type SweepResult struct {
	Offset int
	Record schema.Record
}

// OffsetSweep re-decodes payload against the schema registered for
// command at every starting offset from 0 to MaxSweepOffset inclusive.
// It is a developer tool for when the true field-start offset of an
// unfamiliar response is not yet known; Client never calls it.
func OffsetSweep(command byte, payload []byte) []SweepResult {
	results := make([]SweepResult, 0, MaxSweepOffset+1)
	for offset := 0; offset <= MaxSweepOffset && offset < len(payload); offset++ {
		rec := schema.DecodeResponse(command, payload[offset:])
		results = append(results, SweepResult{Offset: offset, Record: rec})
	}
	return results
}

// FormatSweep renders OffsetSweep's output as a human-readable table,
// mirroring the original source's per-offset print loop.
func FormatSweep(results []SweepResult) string {
	var b strings.Builder
	for _, r := range results {
		fmt.Fprintf(&b, "--- offset %02d ---\n", r.Offset)
		for _, f := range r.Record.Fields {
			if f.Truncated {
				fmt.Fprintf(&b, "  %-28s (%s): [insufficient data]\n", f.Name, f.Type)
				continue
			}
			if f.Err != nil {
				fmt.Fprintf(&b, "  %-28s (%s): [error: %s]\n", f.Name, f.Type, f.Err)
				continue
			}
			fmt.Fprintf(&b, "  %-28s (%s): %s\n", f.Name, f.Type, f.Value)
		}
	}
	return b.String()
}
