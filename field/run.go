package field

import (
	"context"
	"time"
)

// maxStep caps the time fed to the animator per frame so a stalled host
// does not replay a burst of ticks when it resumes.
const maxStep = 100 * time.Millisecond

// DrawFunc renders one frame of the field.
type DrawFunc func(State) error

// Run drives a on the calling goroutine with a wall-clock ticker until ctx
// is done or draw fails. The animator is activated on entry and always
// deactivated, with the ticker released, before Run returns.
func Run(ctx context.Context, a *Animator, frame time.Duration, draw DrawFunc) error {
	if frame <= 0 {
		frame = time.Second / 30
	}

	a.Activate()
	defer a.Deactivate()

	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	if err := draw(a.State()); err != nil {
		return err
	}

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			step := now.Sub(last)
			last = now
			if step > maxStep {
				step = maxStep
			}
			a.Update(step)
			if err := draw(a.State()); err != nil {
				return err
			}
		}
	}
}
