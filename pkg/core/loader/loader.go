// Package loader bulk-loads people from comma-separated text.
//
// The first line must be exactly the header "SSN,LAST,FIRST,YEAR". Every
// following line must hold four fields, the last one an integer birth year.
// Bad lines are skipped and reported to the optional listener; a bad header
// aborts the whole load.
package loader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Header is the required first line of a people file
const Header = "SSN,LAST,FIRST,YEAR"

const fieldCount = 4

// Registry receives the loaded people
type Registry interface {
	Add(firstName, lastName, ssn string, birthYear int) bool
}

// Listener is notified of every rejected line with its 1-based line number
// (the header is line 1) and raw text
type Listener func(line int, raw string)

// Loader reads people files into a registry
type Loader struct {
	registry Registry
	listener Listener
	logger   *zap.Logger
}

// NewLoader creates a loader that registers people into registry
func NewLoader(registry Registry, logger *zap.Logger) *Loader {
	return &Loader{
		registry: registry,
		logger:   logger,
	}
}

// SetListener installs the load-error listener. Pass nil to remove it.
func (l *Loader) SetListener(listener Listener) {
	l.listener = listener
}

// Load reads people from r and returns the number registered.
// Returns an error wrapping ErrInvalidHeader if the header is wrong, in which
// case nobody is registered.
func (l *Loader) Load(r io.Reader) (int, error) {
	reader := bufio.NewReader(r)

	lineNum := 0
	loaded := 0
	for {
		line, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return loaded, fmt.Errorf("failed to read people: %w", readErr)
		}
		if readErr == io.EOF && line == "" {
			break
		}

		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		lineNum++

		if lineNum == 1 {
			if line != Header {
				headerErr := &LineError{Line: lineNum, Raw: line, Err: ErrInvalidHeader}
				l.reject(headerErr)
				return 0, headerErr
			}
		} else if err := l.loadLine(line); err != nil {
			l.reject(&LineError{Line: lineNum, Raw: line, Err: err})
		} else {
			loaded++
		}

		if readErr == io.EOF {
			break
		}
	}

	l.logger.Debug("People loaded",
		zap.Int("lines", lineNum),
		zap.Int("loaded", loaded))

	return loaded, nil
}

// loadLine parses and registers a single data line
func (l *Loader) loadLine(line string) error {
	fields := strings.Split(line, ",")
	if len(fields) != fieldCount {
		return ErrInvalidFieldCount
	}

	ssn, lastName, firstName := fields[0], fields[1], fields[2]

	year, err := strconv.Atoi(fields[3])
	if err != nil {
		return ErrInvalidYear
	}

	if !l.registry.Add(firstName, lastName, ssn, year) {
		return ErrDuplicateSSN
	}
	return nil
}

// reject logs a rejected line and forwards it to the listener
func (l *Loader) reject(lineErr *LineError) {
	l.logger.Debug("Rejected people line",
		zap.Int("line", lineErr.Line),
		zap.String("raw", lineErr.Raw),
		zap.Error(lineErr.Err))

	if l.listener != nil {
		l.listener(lineErr.Line, lineErr.Raw)
	}
}
