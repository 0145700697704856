// Package report accumulates per-item outcomes during a generation run and
// emits a single structured summary event when the run completes. Generators
// print their own human-facing summaries; the tally carries the counts.
package report

import (
	"github.com/rs/zerolog/log"
)

// Tally counts the outcomes of one batch run. It is NOT safe for concurrent
// use from multiple goroutines; create one per run.
type Tally struct {
	task      string
	total     int
	succeeded int
	skipped   int
	failed    int
	failures  []string
}

// NewTally creates a Tally for the named task expecting total items.
func NewTally(task string, total int) *Tally {
	return &Tally{task: task, total: total}
}

// Success records one successfully produced item.
func (t *Tally) Success() {
	t.succeeded++
}

// Skip records one item left as-is (e.g. an existing file).
func (t *Tally) Skip() {
	t.skipped++
}

// Fail records one failed item by name.
func (t *Tally) Fail(item string) {
	t.failed++
	t.failures = append(t.failures, item)
}

// Succeeded returns the number of successful items.
func (t *Tally) Succeeded() int { return t.succeeded }

// Skipped returns the number of skipped items.
func (t *Tally) Skipped() int { return t.skipped }

// Failed returns the number of failed items.
func (t *Tally) Failed() int { return t.failed }

// Total returns the expected item count.
func (t *Tally) Total() int { return t.total }

// Done returns the number of items accounted for without failure.
func (t *Tally) Done() int { return t.succeeded + t.skipped }

// Complete reports whether every expected item succeeded or was skipped.
func (t *Tally) Complete() bool {
	return t.failed == 0 && t.Done() >= t.total
}

// Failures returns the names of failed items in the order they failed.
func (t *Tally) Failures() []string { return t.failures }

// Log emits one structured summary event for the run. After logging, the
// Tally should not be reused.
func (t *Tally) Log() {
	evt := log.Info().
		Str("task", t.task).
		Int("total", t.total).
		Int("succeeded", t.succeeded).
		Int("skipped", t.skipped).
		Int("failed", t.failed)
	if len(t.failures) > 0 {
		evt = evt.Strs("failures", t.failures)
	}
	evt.Msg("Run complete")
}
