package checklist

import "fmt"

// Tracker keeps the completion flags of every item of every step.
// Steps and items are 0-based. A Tracker is not safe for concurrent use;
// callers serialize access per session.
type Tracker struct {
	marks [][]bool
}

// NewTracker creates a Tracker for steps with the given item counts, all unmarked.
func NewTracker(itemCounts []int) *Tracker {
	marks := make([][]bool, len(itemCounts))
	for i, n := range itemCounts {
		marks[i] = make([]bool, n)
	}
	return &Tracker{marks: marks}
}

// Set marks one item complete or incomplete.
func (t *Tracker) Set(step, item int, done bool) error {
	if err := t.check(step, item); err != nil {
		return err
	}
	t.marks[step][item] = done
	return nil
}

// Done reports whether an item is marked complete. Out-of-range items are never done.
func (t *Tracker) Done(step, item int) bool {
	if t.check(step, item) != nil {
		return false
	}
	return t.marks[step][item]
}

// Step returns a copy of the flags of one step.
func (t *Tracker) Step(step int) ([]bool, error) {
	if step < 0 || step >= len(t.marks) {
		return nil, fmt.Errorf("%w: %d", ErrStepOutOfRange, step)
	}
	out := make([]bool, len(t.marks[step]))
	copy(out, t.marks[step])
	return out, nil
}

// Reset unmarks every item of every step.
func (t *Tracker) Reset() {
	for _, step := range t.marks {
		clear(step)
	}
}

// StepStats calculates statistics for one step.
func (t *Tracker) StepStats(step int) Stats {
	flags, err := t.Step(step)
	if err != nil {
		return Stats{}
	}
	return statsOf(flags)
}

// Stats calculates statistics across all steps.
func (t *Tracker) Stats() Stats {
	var all []bool
	for _, step := range t.marks {
		all = append(all, step...)
	}
	return statsOf(all)
}

func (t *Tracker) check(step, item int) error {
	if step < 0 || step >= len(t.marks) {
		return fmt.Errorf("%w: %d", ErrStepOutOfRange, step)
	}
	if item < 0 || item >= len(t.marks[step]) {
		return fmt.Errorf("%w: step %d item %d", ErrItemOutOfRange, step, item)
	}
	return nil
}

func statsOf(flags []bool) Stats {
	total := len(flags)
	if total == 0 {
		return Stats{}
	}

	completed := 0
	for _, f := range flags {
		if f {
			completed++
		}
	}

	return Stats{
		Total:     total,
		Completed: completed,
		Pending:   total - completed,
		Progress:  float64(completed) / float64(total) * 100,
	}
}
