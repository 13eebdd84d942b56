package batch

import (
	"fmt"
	"time"
)

// Summary describes a finished batch.
type Summary struct {
	Files      int           // regular files found in the directory
	Processed  int           // files with a result line
	Failed     int           // files that could not be decoded
	Duplicates int           // processed files identical to an earlier frame
	Elapsed    time.Duration // time from the first file to the last output line
}

// Millis returns the elapsed time in whole milliseconds.
func (s Summary) Millis() int64 {
	return s.Elapsed.Milliseconds()
}

// Seconds returns Millis divided by 1000, truncated.
func (s Summary) Seconds() int64 {
	return s.Millis() / 1000
}

// String formats the summary line printed after the per-file results.
// Failed and duplicate counts are appended only when non-zero.
func (s Summary) String() string {
	line := fmt.Sprintf("Work time: %d mills ~ (%d seconds) and process %d images",
		s.Millis(), s.Seconds(), s.Processed)
	if s.Failed > 0 {
		line += fmt.Sprintf(" (%d failed)", s.Failed)
	}
	if s.Duplicates > 0 {
		line += fmt.Sprintf(" (%d duplicates)", s.Duplicates)
	}
	return line
}
