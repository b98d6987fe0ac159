package pkg

import (
	"testing"
	"time"
)

type fakeNow struct {
	t time.Time
}

func (f *fakeNow) now() time.Time { return f.t }

func TestClock(t *testing.T) {
	f := &fakeNow{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	cl := NewClock()
	cl.now = f.now

	if cl.String() != "0:00" {
		t.Errorf("idle clock = %s", cl)
	}

	cl.Tick()
	f.t = f.t.Add(75 * time.Second)
	if cl.String() != "1:15" {
		t.Errorf("running clock = %s", cl)
	}

	if got := cl.Pause(); got != 75*time.Second {
		t.Errorf("Pause() = %s", got)
	}
	f.t = f.t.Add(time.Hour)
	if got := cl.Running(); got != 75*time.Second {
		t.Errorf("paused clock kept running: %s", got)
	}
	if got := cl.Pause(); got != 75*time.Second {
		t.Errorf("second Pause() = %s", got)
	}

	cl.Reset()
	if cl.Running() != 0 {
		t.Errorf("reset clock = %s", cl)
	}
}
