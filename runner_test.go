package cellscape

import (
	"testing"
)

func TestLoadGestureScriptErrors(t *testing.T) {
	if _, err := LoadGestureScript([]byte("{bad")); err == nil {
		t.Error("expected error for malformed JSON")
	}
	if _, err := LoadGestureScript([]byte(`{"steps": []}`)); err == nil {
		t.Error("expected error for empty script")
	}
}

func TestGestureRunnerSequencesSteps(t *testing.T) {
	script := []byte(`{"steps": [
		{"action": "zoomat", "x": 320, "y": 240, "factor": 2},
		{"action": "pan", "dx": 10, "dy": -5},
		{"action": "wait", "frames": 3},
		{"action": "snapshot", "label": "after-pan"}
	]}`)
	r, err := LoadGestureScript(script)
	if err != nil {
		t.Fatalf("LoadGestureScript: %v", err)
	}

	s := newTestScene(t)
	s.SetGestureRunner(r)

	// Frame 1: zoom.
	r.step(s)
	if !approxEqual(s.vp.Scale(), 1.6, epsilon) {
		t.Errorf("scale after step 1 = %f, want 1.6", s.vp.Scale())
	}

	// Frame 2: pan.
	tx := s.vp.Transform().TranslateX
	r.step(s)
	if !approxEqual(s.vp.Transform().TranslateX, tx+10, epsilon) {
		t.Errorf("pan step did not move the viewport")
	}

	// Frames 3-5: wait burns three frames without advancing.
	for i := 0; i < 3; i++ {
		if r.Done() {
			t.Fatalf("runner finished during wait, frame %d", i)
		}
		r.step(s)
	}
	if len(s.snapshotQueue) != 0 {
		t.Errorf("snapshot executed during wait: %v", s.snapshotQueue)
	}

	// Frame 6: snapshot.
	r.step(s)
	if len(s.snapshotQueue) != 1 || s.snapshotQueue[0] != "after-pan" {
		t.Errorf("snapshot queue = %v", s.snapshotQueue)
	}
	if !r.Done() {
		t.Error("runner not done after final step")
	}

	// Further frames are no-ops.
	r.step(s)
	if len(s.snapshotQueue) != 1 {
		t.Errorf("extra steps executed after done: %v", s.snapshotQueue)
	}
}

func TestGestureRunnerWaitsForReset(t *testing.T) {
	script := []byte(`{"steps": [
		{"action": "reset"},
		{"action": "pan", "dx": 5, "dy": 5}
	]}`)
	r, err := LoadGestureScript(script)
	if err != nil {
		t.Fatalf("LoadGestureScript: %v", err)
	}

	s := newTestScene(t)
	s.vp.ZoomAt(100, 100, 10)
	r.step(s) // starts the reset animation
	if !s.vp.Resetting() {
		t.Fatal("reset step did not start the animation")
	}

	// While resetting, the runner holds its position.
	r.step(s)
	if r.cursor != 1 {
		t.Errorf("runner advanced during reset: cursor = %d", r.cursor)
	}

	for i := 0; i < 120 && s.vp.Resetting(); i++ {
		s.vp.Update(1.0 / 60.0)
	}
	tx := s.vp.Transform().TranslateX
	r.step(s)
	if !approxEqual(s.vp.Transform().TranslateX, tx+5, epsilon) {
		t.Error("pan step did not run after the reset settled")
	}
}
