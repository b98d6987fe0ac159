package pkg

import (
	"fmt"
	"time"
)

// Clock measures how long the engine has been thinking.
type Clock struct {
	Started time.Time
	Elapsed time.Duration
	Paused  bool
	now     func() time.Time
}

func (cl *Clock) String() string {
	d := cl.Running()
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

func NewClock() *Clock {
	return &Clock{Paused: true, now: time.Now}
}

// Tick starts a new measurement.
func (cl *Clock) Tick() {
	cl.Started = cl.now()
	cl.Elapsed = 0
	cl.Paused = false
}

// Pause stops the measurement and returns its length.
func (cl *Clock) Pause() time.Duration {
	if !cl.Paused {
		cl.Elapsed = cl.now().Sub(cl.Started)
		cl.Paused = true
	}
	return cl.Elapsed
}

// Running is the time measured so far.
func (cl *Clock) Running() time.Duration {
	if cl.Paused {
		return cl.Elapsed
	}
	return cl.now().Sub(cl.Started)
}

func (cl *Clock) Reset() {
	cl.Started = time.Time{}
	cl.Elapsed = 0
	cl.Paused = true
}
