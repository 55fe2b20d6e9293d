// Package backtrace converts an error's raw textual backtrace into
// structured frames. Raw lines may follow several distinct conventions
// (native interpreter frames, embedded virtual-machine frames, database
// engine frames, or a transpiled-script runtime); the parser classifies the
// whole backtrace once, matches each line against the selected grammar with
// a uniform generic fallback, and never aborts: a line no grammar
// understands degrades to a frame carrying the raw text.
package backtrace

// Frame is one structured stack entry. Absent parts are the zero value and
// are omitted from the serialized form. A frame with an empty File
// represents an unparsable raw line; Function then holds the original raw
// text so no information is lost.
type Frame struct {
	File     string  `json:"file,omitempty"`
	Line     int     `json:"line,omitempty"`
	Function string  `json:"function,omitempty"`
	Code     Excerpt `json:"code,omitempty"`
}

type Frames []Frame

// Excerpt is a short window of source text around a frame's line.
type Excerpt []ExcerptLine

type ExcerptLine struct {
	Number int    `json:"number"`
	Source string `json:"source"`
}
