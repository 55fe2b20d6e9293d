// Package hunk reads short source excerpts around a frame's file and line.
package hunk

import (
	"os"
	"strings"

	"github.com/thanhminhmr/go-notifier/backtrace"
	"github.com/thanhminhmr/go-notifier/helper"
)

// contextLines is how many lines of context are kept on each side of the
// target line.
const contextLines = 2

// type check
var _ backtrace.HunkSource = (*FileSource)(nil)

// FileSource reads excerpts from the local filesystem, caching whole files
// by path (unreadable paths are cached too). Safe for concurrent use; a
// long-lived process should share one FileSource so repeated frames in hot
// files hit the cache.
type FileSource struct {
	files helper.SyncMap[string, []string]
}

func NewFileSource() *FileSource {
	return &FileSource{}
}

// Fetch returns the source lines around file:line, or false when the file
// cannot be read or the line is out of range.
func (s *FileSource) Fetch(file string, line int) (backtrace.Excerpt, bool) {
	if file == "" || line <= 0 {
		return nil, false
	}
	lines, ok := s.read(file)
	if !ok || line > len(lines) {
		return nil, false
	}
	start := max(line-contextLines, 1)
	end := min(line+contextLines, len(lines))
	excerpt := make(backtrace.Excerpt, 0, end-start+1)
	for number := start; number <= end; number++ {
		excerpt = append(excerpt, backtrace.ExcerptLine{
			Number: number,
			Source: lines[number-1],
		})
	}
	return excerpt, true
}

func (s *FileSource) read(file string) ([]string, bool) {
	if cached, exists := s.files.Get(file); exists {
		return cached, cached != nil
	}
	content, err := os.ReadFile(file)
	if err != nil {
		// nil marks a known-unreadable path
		s.files.Put(file, nil)
		return nil, false
	}
	lines := strings.Split(strings.ReplaceAll(string(content), "\r\n", "\n"), "\n")
	actual, _ := s.files.PutIfAbsent(file, lines)
	return actual, true
}
