package optics

// ProgressFunc receives advisory progress notifications at stage
// boundaries: the 1-based step just completed, the total step count, and a
// short description. It is never required for correctness and must not
// block; a nil callback disables reporting.
type ProgressFunc func(step, total int, message string)

// progressTracker counts pipeline stages and forwards them to the callback
type progressTracker struct {
	callback ProgressFunc
	total    int
	step     int
}

func newProgressTracker(callback ProgressFunc, total int) *progressTracker {
	return &progressTracker{callback: callback, total: total}
}

func (p *progressTracker) update(message string) {
	p.step++
	if p.callback != nil {
		p.callback(p.step, p.total, message)
	}
}
