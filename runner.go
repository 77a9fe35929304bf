package cellscape

import (
	"encoding/json"
	"fmt"
)

// gestureStep represents a single action in a gesture script.
type gestureStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Factor float64 `json:"factor,omitempty"`
	DX     float64 `json:"dx,omitempty"`
	DY     float64 `json:"dy,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// gestureScript is the top-level JSON structure for a gesture script.
type gestureScript struct {
	Steps []gestureStep `json:"steps"`
}

// GestureRunner replays a scripted gesture sequence against the viewport,
// one step per frame, for automated visual checks of the zoom behavior.
// Attach to a PlotScene via SetGestureRunner.
type GestureRunner struct {
	steps     []gestureStep
	cursor    int
	waitCount int
	done      bool
}

// LoadGestureScript parses a JSON gesture script.
func LoadGestureScript(jsonData []byte) (*GestureRunner, error) {
	var script gestureScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse gesture script: no steps")
	}
	return &GestureRunner{steps: script.Steps}, nil
}

// SetGestureRunner attaches a runner. The runner's step method is called
// from PlotScene.Update before live input each frame.
func (s *PlotScene) SetGestureRunner(r *GestureRunner) {
	s.runner = r
}

// Done reports whether all steps in the script have been executed.
func (r *GestureRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame.
func (r *GestureRunner) step(s *PlotScene) {
	if r.done {
		return
	}
	// Let the reset animation settle before advancing.
	if s.vp.Resetting() {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "zoomat":
		s.vp.ZoomAt(st.X, st.Y, st.Factor)
	case "pan":
		s.vp.PanBy(st.DX, st.DY)
	case "pinch":
		s.vp.Pinch(st.X, st.Y, st.Factor, st.DX, st.DY)
	case "reset":
		s.vp.Reset()
	case "hover":
		s.setHovered(s.hitTest(st.X, st.Y))
	case "snapshot":
		s.Snapshot(st.Label)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}
