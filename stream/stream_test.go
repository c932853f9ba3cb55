package stream

import (
	"encoding/json"
	"testing"

	"github.com/moptim/glimmer"
)

func TestDispatchKnownActions(t *testing.T) {
	var keys glimmer.Keys
	srv := New(&keys)

	if !srv.dispatch(Command{Action: "draw"}) {
		t.Fatal("dispatch rejected known action \"draw\"")
	}
	if srv.dispatch(Command{Action: "explode"}) {
		t.Fatal("dispatch accepted unknown action")
	}

	p := glimmer.DefaultParams()
	keys.Drain(&p)
	if p.Draw {
		t.Fatalf("draw after one queued toggle = true, want false")
	}
}

func TestDispatchQueuesEveryCommand(t *testing.T) {
	var keys glimmer.Keys
	srv := New(&keys)

	for i := 0; i < 3; i++ {
		srv.dispatch(Command{Action: "sharpen"})
	}
	p := glimmer.DefaultParams()
	keys.Drain(&p)
	if diff := p.TailCritical - 0.25; diff > 1e-6 || diff < -1e-6 {
		t.Fatalf("tail critical value after 3 queued sharpens = %v, want 0.25", p.TailCritical)
	}
}

func TestFrameRoundTrip(t *testing.T) {
	sim, err := glimmer.New(8, 1.5, 77)
	if err != nil {
		t.Fatal(err)
	}
	f := FrameOf(sim.Snapshot())
	if len(f.PosRad) != 8 || len(f.Color) != 8 || len(f.Shape) != 8 {
		t.Fatalf("frame arrays = %d/%d/%d entries, want 8 each",
			len(f.PosRad), len(f.Color), len(f.Shape))
	}

	msg, err := json.Marshal(f)
	if err != nil {
		t.Fatal(err)
	}
	var back Frame
	if err := json.Unmarshal(msg, &back); err != nil {
		t.Fatal(err)
	}
	if back.Tail != f.Tail || back.PosRad[0] != f.PosRad[0] {
		t.Fatalf("frame did not survive the wire: %+v vs %+v", back, f)
	}
}
