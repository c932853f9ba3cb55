package glimmer

import "testing"

func TestNewRejectsNegativeCount(t *testing.T) {
	if _, err := New(-1, 1, 0); err == nil {
		t.Fatal("New(-1) succeeded, want error")
	}
	if _, err := NewSwarm(-5); err == nil {
		t.Fatal("NewSwarm(-5) succeeded, want error")
	}
}

func TestNewZeroParticles(t *testing.T) {
	s, err := New(0, 1, 0)
	if err != nil {
		t.Fatal(err)
	}
	if s.Swarm.Len() != 0 {
		t.Fatalf("swarm length = %d, want 0", s.Swarm.Len())
	}
	s.Step(0.01) // must not panic on an empty swarm
}

func TestSwarmCheckDetectsMisalignment(t *testing.T) {
	w, err := NewSwarm(8)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Check(); err != nil {
		t.Fatalf("aligned swarm failed check: %v", err)
	}
	w.Color = w.Color[:7]
	if err := w.Check(); err == nil {
		t.Fatal("misaligned swarm passed check")
	}
}

func TestSnapshotDoesNotAliasSwarm(t *testing.T) {
	s, err := New(16, 1, 21)
	if err != nil {
		t.Fatal(err)
	}
	snap := s.Snapshot()
	before := snap.PosRad[0]
	for i := 0; i < 10; i++ {
		s.Step(0.01)
	}
	if snap.PosRad[0] != before {
		t.Fatalf("snapshot mutated by later steps: %v vs %v", snap.PosRad[0], before)
	}
}
