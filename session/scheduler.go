package session

// Scheduler runs a step function repeatedly until the returned stop function
// is called. Stop is idempotent.
type Scheduler interface {
	Start(step func()) (stop func())
}

type task struct {
	step    func()
	stopped bool
}

// FrameClock is a Scheduler driven by the host's display refresh: every call
// to Advance runs each live task once, in registration order.
type FrameClock struct {
	tasks  []*task
	frames int
}

func NewFrameClock() *FrameClock {
	return &FrameClock{}
}

func (c *FrameClock) Start(step func()) func() {
	t := &task{step: step}
	c.tasks = append(c.tasks, t)
	return func() {
		if t.stopped {
			return
		}
		t.stopped = true
		for i, other := range c.tasks {
			if other == t {
				c.tasks = append(c.tasks[:i], c.tasks[i+1:]...)
				break
			}
		}
	}
}

// Advance runs one frame. Tasks stopped during the frame are skipped, tasks
// started during the frame first run on the next one.
func (c *FrameClock) Advance() {
	c.frames++
	pending := append([]*task(nil), c.tasks...)
	for _, t := range pending {
		if !t.stopped {
			t.step()
		}
	}
}

// Len returns the number of live tasks
func (c *FrameClock) Len() int {
	return len(c.tasks)
}

// Frames returns how many times Advance was called
func (c *FrameClock) Frames() int {
	return c.frames
}
