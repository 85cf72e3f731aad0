package internal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Match is one line that satisfied the active matcher.
type Match struct {
	Path       string
	LineNumber int    // 1-based
	Line       string // original text, trailing CR/LF stripped
}

// scanFile runs the matcher over every line of one file. Open and read
// failures are reported and yield whatever was matched before the
// failure; they never stop the surrounding search.
func scanFile(path string, m Matcher, diag Reporter) []Match {
	f, err := os.Open(path)
	if err != nil {
		if os.IsPermission(err) {
			diag.Report(fmt.Sprintf("Permission denied, cannot open file: %s", path))
		} else {
			diag.Report(fmt.Sprintf("Could not open file [%s]: %v", path, err))
		}
		return nil
	}
	defer f.Close()

	matches, err := scanLines(f, path, m)
	if err != nil {
		diag.Report(fmt.Sprintf("Error reading file [%s]: %v", path, err))
	}
	return matches
}

// scanLines reads line by line. ReadString instead of bufio.Scanner so
// arbitrarily long lines survive; the final line counts even without a
// terminator. A trailing CR before the terminator is stripped to
// normalize Windows line endings, the stored text is otherwise the
// original line.
func scanLines(r io.Reader, path string, m Matcher) ([]Match, error) {
	var matches []Match
	br := bufio.NewReaderSize(r, 64*1024)
	lineNum := 0
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			lineNum++
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			if m.Match(line) {
				matches = append(matches, Match{Path: path, LineNumber: lineNum, Line: line})
			}
		}
		if err == io.EOF {
			return matches, nil
		}
		if err != nil {
			return matches, err
		}
	}
}
