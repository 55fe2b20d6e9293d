package backtrace

// Settings carries the knobs and collaborators the parser needs. The zero
// value parses without enrichment and discards diagnostics, as does a nil
// *Settings.
type Settings struct {
	// CodeHunksEnabled turns source excerpt enrichment on.
	CodeHunksEnabled bool

	// ProjectRoot, when non-empty, restricts enrichment to frames whose
	// file lives under this path outside any vendored dependency
	// directory. When empty, the first few frames of every backtrace are
	// enriched instead, regardless of path.
	ProjectRoot string

	// Diagnostics receives one message per raw line that no grammar could
	// parse. Nil discards.
	Diagnostics DiagnosticSink

	// Hunks fetches source excerpts. Nil disables enrichment.
	Hunks HunkSource
}

// DiagnosticSink receives parser diagnostics. Implementations must not
// panic; the parser has no other failure channel.
type DiagnosticSink interface {
	Log(message string)
}

// HunkSource fetches a few source lines around file:line. A false return
// means no data is available; the frame is then left without an excerpt.
type HunkSource interface {
	Fetch(file string, line int) (Excerpt, bool)
}
