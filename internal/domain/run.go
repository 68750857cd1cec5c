package domain

import "time"

// ImportCheckpoint is the only state carried between runs. It is read once at
// the start of the gate check and rewritten immediately before a run begins.
type ImportCheckpoint struct {
	LastUpload time.Time
	Interval   time.Duration
}

// Due reports whether the configured interval has elapsed.
func (c ImportCheckpoint) Due(now time.Time) bool {
	return now.After(c.LastUpload.Add(c.Interval))
}

// ImportStats summarizes one import run.
type ImportStats struct {
	Mode       string
	Listed     int
	Imported   int
	Duplicates int
	Failed     int
	Photos     int
	Categories int
	Duration   time.Duration
}

// Merge folds a per-pass stats block into a run total.
func (s *ImportStats) Merge(other *ImportStats) {
	s.Listed += other.Listed
	s.Imported += other.Imported
	s.Duplicates += other.Duplicates
	s.Failed += other.Failed
	s.Photos += other.Photos
	s.Categories += other.Categories
}
