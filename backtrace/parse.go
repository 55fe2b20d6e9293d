package backtrace

import (
	"strconv"
	"strings"

	"github.com/thanhminhmr/go-notifier/record"
)

// maxHunkFrames bounds how many frames are considered for source excerpt
// enrichment when no project root restricts the candidates.
const maxHunkFrames = 10

// Parse converts one error's raw backtrace into structured frames, one Frame
// per raw line, in order. Returns nil if the record carries no backtrace.
//
// Parse never fails and holds no state between calls; it is safe to call
// concurrently for different records as long as the hunk source is
// reentrant.
func Parse(settings *Settings, source *record.Record) Frames {
	if source == nil || len(source.Backtrace) == 0 {
		return nil
	}
	format := classify(source)
	frames := make(Frames, 0, len(source.Backtrace))
	for _, line := range source.Backtrace {
		frames = append(frames, parseLine(settings, format, line))
	}
	enrich(settings, frames)
	return frames
}

func parseLine(settings *Settings, format Format, line string) Frame {
	captured, ok := format.match(line)
	if !ok && format != FormatGeneric {
		captured, ok = matchGeneric(line)
	}
	if !ok {
		if settings != nil && settings.Diagnostics != nil {
			settings.Diagnostics.Log("can't parse stacktrace line: " + strconv.Quote(line))
		}
		return Frame{Function: line}
	}
	return Frame{
		File:     captured.file,
		Line:     parseLineNumber(captured.line),
		Function: captured.function,
	}
}

// parseLineNumber is strict: anything but a plain positive decimal becomes
// an absent line instead of a failed frame.
func parseLineNumber(text string) int {
	if text == "" {
		return 0
	}
	number, err := strconv.Atoi(text)
	if err != nil || number < 0 {
		return 0
	}
	return number
}

// enrich attaches source excerpts to qualifying frames, in backtrace order.
// With a project root configured, only in-project frames qualify; otherwise
// the first maxHunkFrames positions do. A miss from the hunk source leaves
// the frame untouched.
func enrich(settings *Settings, frames Frames) {
	if settings == nil || !settings.CodeHunksEnabled || settings.Hunks == nil {
		return
	}
	for index := range frames {
		if settings.ProjectRoot == "" && index >= maxHunkFrames {
			break
		}
		if frames[index].File == "" {
			continue
		}
		if settings.ProjectRoot != "" && !inProject(settings.ProjectRoot, frames[index].File) {
			continue
		}
		if excerpt, ok := settings.Hunks.Fetch(frames[index].File, frames[index].Line); ok {
			frames[index].Code = excerpt
		}
	}
}

// inProject reports whether file lives under root without passing through a
// vendored dependency directory.
func inProject(root string, file string) bool {
	return strings.HasPrefix(file, root) && !strings.Contains(file, "/vendor/")
}
