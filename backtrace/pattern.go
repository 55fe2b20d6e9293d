package backtrace

import (
	"regexp"

	"github.com/thanhminhmr/go-notifier/record"
)

// Format selects which grammar decomposes a raw backtrace line into file,
// line number and function. One Format is chosen per backtrace; individual
// lines that the chosen grammar rejects fall back to FormatGeneric before
// being declared unparsable.
type Format uint8

const (
	FormatGeneric Format = iota
	FormatNative
	FormatEmbeddedVM
	FormatDatabase
	FormatTranspiled
)

// capture is the structured result of matching one raw line. Absent parts
// are empty strings; the line number stays textual until strictly parsed.
type capture struct {
	file     string
	line     string
	function string
}

var (
	// file:43:in `method'
	nativePattern = regexp.MustCompile("^(.+):(\\d+):in `(.*)'$")
	// package.Class.method(File.ext:105); the file may be a URI-style
	// classloader path without an extension, so it may itself contain
	// colons. The line number binds to the last colon-digits run.
	embeddedVMPattern = regexp.MustCompile(`^(.+)\(([^()]+?)(?::(\d+))?\)$`)
	// ERROR-06512: at "SCHEMA.PROCEDURE", line 12
	databasePattern = regexp.MustCompile(`^ERROR-\d+: at "([^"]+)", line (\d+)$`)
	// method (file.js:2:9)  |  file.js:2:9
	transpiledPattern = regexp.MustCompile(`^(?:(.+) \((.+):(\d+):\d+\)|(.+):(\d+):\d+)$`)
	// optional "from ", then file:[line], then optionally :in `method' or
	// :in method
	genericPattern = regexp.MustCompile("^(?:from )?(.+?):(\\d+)?(?::in `(.+)'|:in (.+))?$")
)

// match runs this format's grammar against one raw line. A false return
// means the caller should fall back to the generic grammar.
func (f Format) match(line string) (capture, bool) {
	switch f {
	case FormatNative:
		return matchNative(line)
	case FormatEmbeddedVM:
		return matchEmbeddedVM(line)
	case FormatDatabase:
		return matchDatabase(line)
	case FormatTranspiled:
		// Mixed-runtime traces interleave transpiled and native frames,
		// so the native grammar is a first-class alternative here.
		if captured, ok := matchTranspiled(line); ok {
			return captured, true
		}
		return matchNative(line)
	default:
		return matchGeneric(line)
	}
}

func matchNative(line string) (capture, bool) {
	groups := nativePattern.FindStringSubmatch(line)
	if groups == nil {
		return capture{}, false
	}
	return capture{file: groups[1], line: groups[2], function: groups[3]}, true
}

func matchEmbeddedVM(line string) (capture, bool) {
	groups := embeddedVMPattern.FindStringSubmatch(line)
	if groups == nil {
		return capture{}, false
	}
	return capture{file: groups[2], line: groups[3], function: groups[1]}, true
}

func matchDatabase(line string) (capture, bool) {
	groups := databasePattern.FindStringSubmatch(line)
	if groups == nil {
		return capture{}, false
	}
	return capture{line: groups[2], function: groups[1]}, true
}

func matchTranspiled(line string) (capture, bool) {
	groups := transpiledPattern.FindStringSubmatch(line)
	if groups == nil {
		return capture{}, false
	}
	if groups[2] != "" {
		return capture{file: groups[2], line: groups[3], function: groups[1]}, true
	}
	return capture{file: groups[4], line: groups[5]}, true
}

func matchGeneric(line string) (capture, bool) {
	groups := genericPattern.FindStringSubmatch(line)
	if groups == nil {
		return capture{}, false
	}
	function := groups[3]
	if function == "" {
		function = groups[4]
	}
	return capture{file: groups[1], line: groups[2], function: function}, true
}

// classify picks the grammar for an entire backtrace. First match wins, and
// the order is load-bearing for mixed-runtime traces: an embedded-VM-looking
// first line takes the embedded grammar even when the record carries a
// different runtime tag.
func classify(source *record.Record) Format {
	if source.Runtime == record.RuntimeEmbeddedVM {
		return FormatEmbeddedVM
	}
	if len(source.Backtrace) > 0 {
		if _, ok := matchEmbeddedVM(source.Backtrace[0]); ok {
			return FormatEmbeddedVM
		}
	}
	if source.Runtime == record.RuntimeDatabase {
		return FormatDatabase
	}
	if source.Runtime == record.RuntimeTranspiled {
		return FormatTranspiled
	}
	if cause := source.Cause; cause != nil && cause.Runtime == record.RuntimeTranspiled {
		return FormatTranspiled
	}
	return FormatNative
}
