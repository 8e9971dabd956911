// Package source supplies raw report strings to the decoders. Sources are
// explicitly constructed and caller-owned; the decoding engine itself
// never fetches anything.
package source

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Source yields raw report strings, one per report, in original order.
type Source interface {
	Reports() ([]string, error)
}

// SplitBulletin splits a plain-text weather bulletin into individual
// reports. Bulletin reports are terminated by '='; the terminators are
// stripped and continuation lines are joined into one report string. A
// bulletin without terminators is split on blank lines instead.
func SplitBulletin(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read bulletin: %w", err)
	}
	text := string(data)

	var chunks []string
	if strings.Contains(text, "=") {
		chunks = strings.Split(text, "=")
	} else {
		chunks = splitBlocks(text)
	}

	var reports []string
	for _, chunk := range chunks {
		report := strings.Join(strings.Fields(chunk), " ")
		if report != "" {
			reports = append(reports, report)
		}
	}
	return reports, nil
}

// splitBlocks splits text into blank-line separated blocks, joining the
// lines of each block (TAF change groups are often continuation lines).
func splitBlocks(text string) []string {
	var blocks []string
	var current []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			if len(current) > 0 {
				blocks = append(blocks, strings.Join(current, " "))
				current = nil
			}
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		blocks = append(blocks, strings.Join(current, " "))
	}
	return blocks
}

type argsSource struct {
	args []string
}

// FromArgs returns a source over command-line report arguments, one report
// per argument. Trailing bulletin terminators are stripped.
func FromArgs(args []string) Source {
	return &argsSource{args: args}
}

func (s *argsSource) Reports() ([]string, error) {
	var reports []string
	for _, arg := range s.args {
		report := strings.TrimSuffix(strings.TrimSpace(arg), "=")
		report = strings.Join(strings.Fields(report), " ")
		if report != "" {
			reports = append(reports, report)
		}
	}
	return reports, nil
}

type fileSource struct {
	path string
}

// FromFile returns a source reading a bulletin file
func FromFile(path string) Source {
	return &fileSource{path: path}
}

func (s *fileSource) Reports() ([]string, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open bulletin file: %w", err)
	}
	defer f.Close()
	return SplitBulletin(f)
}

type readerSource struct {
	r io.Reader
}

// FromReader returns a source reading a bulletin from an io.Reader
// (typically stdin).
func FromReader(r io.Reader) Source {
	return &readerSource{r: r}
}

func (s *readerSource) Reports() ([]string, error) {
	return SplitBulletin(s.r)
}
