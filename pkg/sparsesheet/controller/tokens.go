package controller

import (
	"bufio"
	"io"
	"strings"
)

// TokenSource yields whitespace-separated instruction tokens.
// Next returns io.EOF once the input is exhausted.
type TokenSource interface {
	Next() (string, error)
}

// ScannerSource reads tokens from a stream regardless of line breaks.
type ScannerSource struct {
	sc *bufio.Scanner
}

// NewScannerSource creates a token source over r.
func NewScannerSource(r io.Reader) *ScannerSource {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &ScannerSource{sc: sc}
}

// Next returns the next token.
func (s *ScannerSource) Next() (string, error) {
	if s.sc.Scan() {
		return s.sc.Text(), nil
	}
	if err := s.sc.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// LineSource splits lines from a line reader, such as a line editor, into
// tokens and hands them out one at a time.
type LineSource struct {
	readLine func() (string, error)
	pending  []string
}

// NewLineSource creates a token source that calls readLine whenever it runs
// out of buffered tokens.
func NewLineSource(readLine func() (string, error)) *LineSource {
	return &LineSource{readLine: readLine}
}

// Next returns the next token, reading more lines as needed. Blank lines are
// skipped.
func (s *LineSource) Next() (string, error) {
	for len(s.pending) == 0 {
		line, err := s.readLine()
		if err != nil {
			return "", err
		}
		s.pending = strings.Fields(line)
	}
	tok := s.pending[0]
	s.pending = s.pending[1:]
	return tok, nil
}

// Discard drops any tokens left over from the current line.
func (s *LineSource) Discard() {
	s.pending = nil
}
