package backtrace_test

import (
	"fmt"
	"reflect"
	"strconv"
	"testing"

	"github.com/thanhminhmr/go-notifier/backtrace"
	"github.com/thanhminhmr/go-notifier/record"
)

type sinkRecorder struct {
	messages []string
}

func (s *sinkRecorder) Log(message string) {
	s.messages = append(s.messages, message)
}

type hunkRecorder struct {
	requests []string
	miss     bool
}

func (h *hunkRecorder) Fetch(file string, line int) (backtrace.Excerpt, bool) {
	h.requests = append(h.requests, file+":"+strconv.Itoa(line))
	if h.miss {
		return nil, false
	}
	return backtrace.Excerpt{{Number: line, Source: "source"}}, true
}

func expectFrame(t *testing.T, frame backtrace.Frame, file string, line int, function string) {
	t.Helper()
	if frame.File != file || frame.Line != line || frame.Function != function {
		t.Fatalf("expected {%q %d %q}, got %+v", file, line, function, frame)
	}
}

func TestParseNativeLine(t *testing.T) {
	frames := backtrace.Parse(nil, &record.Record{
		Backtrace: []string{"./a/b.rb:43:in `foo'"},
	})
	if len(frames) != 1 {
		t.Fatalf("expected 1 frame, got %d", len(frames))
	}
	expectFrame(t, frames[0], "./a/b.rb", 43, "foo")
}

func TestParseEmbeddedVMLine(t *testing.T) {
	frames := backtrace.Parse(nil, &record.Record{
		Runtime:   record.RuntimeEmbeddedVM,
		Backtrace: []string{"org.x.Y.z(Y.java:105)"},
	})
	expectFrame(t, frames[0], "Y.java", 105, "org.x.Y.z")
}

func TestParseEmbeddedVMClassloaderPath(t *testing.T) {
	frames := backtrace.Parse(nil, &record.Record{
		Runtime: record.RuntimeEmbeddedVM,
		Backtrace: []string{
			"org.jruby.Main.run(uri:classloader:/jruby/kernel.rb:13)",
			"worker(Native Method)",
		},
	})
	expectFrame(t, frames[0], "uri:classloader:/jruby/kernel.rb", 13, "org.jruby.Main.run")
	expectFrame(t, frames[1], "Native Method", 0, "worker")
}

func TestParseEmbeddedVMDetectedFromFirstLine(t *testing.T) {
	// no runtime tag at all: the first line alone selects the grammar
	frames := backtrace.Parse(nil, &record.Record{
		Backtrace: []string{"org.x.Y.z(Y.java:105)"},
	})
	expectFrame(t, frames[0], "Y.java", 105, "org.x.Y.z")
}

func TestParseFirstLineBeatsTranspiledTag(t *testing.T) {
	// classification priority is deliberate: an embedded-VM-looking first
	// line wins over the transpiled runtime tag
	frames := backtrace.Parse(nil, &record.Record{
		Runtime:   record.RuntimeTranspiled,
		Backtrace: []string{"org.x.Y.z(Y.java:105)"},
	})
	expectFrame(t, frames[0], "Y.java", 105, "org.x.Y.z")
}

func TestParseDatabaseLines(t *testing.T) {
	frames := backtrace.Parse(nil, &record.Record{
		Runtime: record.RuntimeDatabase,
		Backtrace: []string{
			`ERROR-06512: at "STORE.CALC_PRICE", line 12`,
			"app/models/order.rb:10:in `total'",
		},
	})
	expectFrame(t, frames[0], "", 12, "STORE.CALC_PRICE")
	expectFrame(t, frames[1], "app/models/order.rb", 10, "total")
}

func TestParseTranspiledLines(t *testing.T) {
	cause := &record.Record{Runtime: record.RuntimeTranspiled}
	frames := backtrace.Parse(nil, &record.Record{
		Cause: cause,
		Backtrace: []string{
			"app.js:2:9",
			"run (app.js:10:1)",
			"./lib/glue.rb:7:in `invoke'",
		},
	})
	expectFrame(t, frames[0], "app.js", 2, "")
	expectFrame(t, frames[1], "app.js", 10, "run")
	expectFrame(t, frames[2], "./lib/glue.rb", 7, "invoke")
}

func TestParseGenericFallback(t *testing.T) {
	frames := backtrace.Parse(nil, &record.Record{
		Backtrace: []string{
			"/x.rb:10",
			"from /x.rb:10:in block in run",
			"bin/app.rb:",
		},
	})
	expectFrame(t, frames[0], "/x.rb", 10, "")
	expectFrame(t, frames[1], "/x.rb", 10, "block in run")
	expectFrame(t, frames[2], "bin/app.rb", 0, "")
}

func TestParseUnparsableLine(t *testing.T) {
	sink := &sinkRecorder{}
	frames := backtrace.Parse(&backtrace.Settings{Diagnostics: sink}, &record.Record{
		Backtrace: []string{"???"},
	})
	expectFrame(t, frames[0], "", 0, "???")
	if len(sink.messages) != 1 {
		t.Fatalf("expected exactly 1 diagnostic, got %d: %v", len(sink.messages), sink.messages)
	}
}

func TestParseKeepsOrderAndCount(t *testing.T) {
	lines := []string{
		"./a.rb:1:in `a'",
		"???",
		"./b.rb:2:in `b'",
		"garbage without any colon",
		"./c.rb:3:in `c'",
	}
	frames := backtrace.Parse(nil, &record.Record{Backtrace: lines})
	if len(frames) != len(lines) {
		t.Fatalf("expected %d frames, got %d", len(lines), len(frames))
	}
	expectFrame(t, frames[0], "./a.rb", 1, "a")
	expectFrame(t, frames[1], "", 0, "???")
	expectFrame(t, frames[2], "./b.rb", 2, "b")
	expectFrame(t, frames[3], "", 0, "garbage without any colon")
	expectFrame(t, frames[4], "./c.rb", 3, "c")
}

func TestParseMissingBacktrace(t *testing.T) {
	if frames := backtrace.Parse(nil, &record.Record{Type: "x"}); frames != nil {
		t.Fatalf("expected nil frames, got %+v", frames)
	}
	if frames := backtrace.Parse(nil, nil); frames != nil {
		t.Fatalf("expected nil frames for nil record, got %+v", frames)
	}
}

func TestParseIdempotent(t *testing.T) {
	source := &record.Record{
		Backtrace: []string{"./a.rb:1:in `a'", "???", "/x.rb:10"},
	}
	settings := &backtrace.Settings{Diagnostics: &sinkRecorder{}}
	first := backtrace.Parse(settings, source)
	second := backtrace.Parse(settings, source)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical output, got %+v then %+v", first, second)
	}
}

func TestEnrichWithProjectRoot(t *testing.T) {
	hunks := &hunkRecorder{}
	frames := backtrace.Parse(&backtrace.Settings{
		CodeHunksEnabled: true,
		ProjectRoot:      "/app",
		Hunks:            hunks,
	}, &record.Record{
		Backtrace: []string{
			"/app/lib/x.rb:4:in `a'",
			"/app/vendor/bundle/gem.rb:5:in `b'",
			"/usr/lib/y.rb:6:in `c'",
		},
	})
	if len(hunks.requests) != 1 || hunks.requests[0] != "/app/lib/x.rb:4" {
		t.Fatalf("expected a single fetch for /app/lib/x.rb:4, got %v", hunks.requests)
	}
	if frames[0].Code == nil {
		t.Fatalf("expected excerpt on the in-project frame, got %+v", frames[0])
	}
	if frames[1].Code != nil || frames[2].Code != nil {
		t.Fatalf("expected no excerpt on vendored or out-of-project frames")
	}
}

func TestEnrichFirstTenFramesWithoutRoot(t *testing.T) {
	lines := make([]string, 12)
	for index := range lines {
		lines[index] = fmt.Sprintf("/f%02d.rb:%d:in `x'", index, index+1)
	}
	hunks := &hunkRecorder{}
	frames := backtrace.Parse(&backtrace.Settings{
		CodeHunksEnabled: true,
		Hunks:            hunks,
	}, &record.Record{Backtrace: lines})
	if len(hunks.requests) != 10 {
		t.Fatalf("expected 10 fetches, got %d", len(hunks.requests))
	}
	if frames[9].Code == nil || frames[10].Code != nil {
		t.Fatalf("expected the excerpts to stop after the tenth frame")
	}
}

func TestEnrichDisabled(t *testing.T) {
	hunks := &hunkRecorder{}
	backtrace.Parse(&backtrace.Settings{Hunks: hunks}, &record.Record{
		Backtrace: []string{"/app/x.rb:1:in `a'"},
	})
	if len(hunks.requests) != 0 {
		t.Fatalf("expected no fetches when disabled, got %v", hunks.requests)
	}
}

func TestEnrichMissLeavesFrameBare(t *testing.T) {
	hunks := &hunkRecorder{miss: true}
	frames := backtrace.Parse(&backtrace.Settings{
		CodeHunksEnabled: true,
		Hunks:            hunks,
	}, &record.Record{Backtrace: []string{"/app/x.rb:1:in `a'"}})
	if len(hunks.requests) != 1 {
		t.Fatalf("expected the fetch to be attempted, got %v", hunks.requests)
	}
	if frames[0].Code != nil {
		t.Fatalf("expected no excerpt after a miss, got %+v", frames[0])
	}
}
