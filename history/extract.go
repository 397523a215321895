package history

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// recordPattern matches the extended-history prefix ": <epoch>:<elapsed>;<command>".
var recordPattern = regexp.MustCompile(`^: (\d+):`)

// maxEpochSeconds is 9999-12-31T23:59:59Z; larger values are treated as corrupt.
const maxEpochSeconds = 253402300799

type Result struct {
	LinesRead    int
	LinesSkipped int
	Events       []time.Time
}

// ParseLine extracts the command timestamp from one history line.
func ParseLine(line string) (time.Time, error) {
	matches := recordPattern.FindStringSubmatch(line)
	if len(matches) < 2 {
		return time.Time{}, fmt.Errorf("history record pattern did not match")
	}

	seconds, err := strconv.ParseInt(matches[1], 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse epoch %q: %w", matches[1], err)
	}
	if seconds > maxEpochSeconds {
		return time.Time{}, fmt.Errorf("epoch %d out of range", seconds)
	}

	return time.Unix(seconds, 0).UTC(), nil
}

// Extract converts lines into events, keeping input order. Lines that do not
// carry a valid timestamp are counted and dropped.
func Extract(lines []string) *Result {
	result := &Result{Events: make([]time.Time, 0, len(lines))}
	for _, line := range lines {
		result.LinesRead++
		event, err := ParseLine(line)
		if err != nil {
			result.LinesSkipped++
			continue
		}
		result.Events = append(result.Events, event)
	}
	return result
}

// ExtractFile reads path and extracts its events. Only the read can fail.
func ExtractFile(path string) (*Result, error) {
	lines, err := ReadLines(path)
	if err != nil {
		return nil, err
	}
	return Extract(lines), nil
}
