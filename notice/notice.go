// Package notice assembles the transmittable report for one raised error:
// the unwound cause chain, each element carrying its parsed backtrace.
package notice

import (
	"github.com/thanhminhmr/go-notifier/backtrace"
	"github.com/thanhminhmr/go-notifier/record"
)

// maxUnwoundCauses bounds how deep the cause chain is reported. Deeper
// causes are dropped silently; the bound doubles as the only guard against
// cyclic chains.
const maxUnwoundCauses = 3

// Error is one element of the reported chain, shaped for transmission.
type Error struct {
	Type      string           `json:"type"`
	Message   string           `json:"message"`
	Backtrace backtrace.Frames `json:"backtrace"`
}

type Errors []Error

// Notice is the complete report for one raised error, most recent error
// first.
type Notice struct {
	Errors Errors `json:"errors"`
}

// Unwind walks the cause links starting at root and returns at most
// maxUnwoundCauses records, most recent first. The cause relation is trusted
// as given; traversal simply halts at the cap even when more causes exist.
func Unwind(root *record.Record) []*record.Record {
	var chain []*record.Record
	for current := root; current != nil && len(chain) < maxUnwoundCauses; current = current.Cause {
		chain = append(chain, current)
	}
	return chain
}

// Build unwinds root and parses each unwound record's backtrace with the
// given settings. Returns nil for a nil root.
func Build(settings *backtrace.Settings, root *record.Record) *Notice {
	if root == nil {
		return nil
	}
	chain := Unwind(root)
	assembled := &Notice{Errors: make(Errors, 0, len(chain))}
	for _, current := range chain {
		assembled.Errors = append(assembled.Errors, Error{
			Type:      current.Type,
			Message:   current.Message,
			Backtrace: backtrace.Parse(settings, current),
		})
	}
	return assembled
}
