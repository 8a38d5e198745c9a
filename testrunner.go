package novel

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Key    string  `json:"key,omitempty"`
	Ctrl   bool    `json:"ctrl,omitempty"`
	Text   string  `json:"text,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected input events and screenshots across frames
// for automated visual testing. Attach to a Stage via SetTestRunner.
//
// Actions: "click" (x, y), "move" (x, y), "leave", "key" (key, ctrl),
// "type" (text), "wait" (frames), "settle" and "screenshot" (label).
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	settling  bool
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Stage via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if st.Action == "key" && ParseKey(st.Key) == KeyNone {
			return nil, fmt.Errorf("parse test script: step %d: unknown key %q", i, st.Key)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the stage. The runner's step method
// is called from Stage.Update before input is processed each frame.
func (st *Stage) SetTestRunner(runner *TestRunner) {
	st.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame. Called from Stage.Update.
func (r *TestRunner) step(st *Stage) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(st.injectQueue) > 0 {
		return
	}
	if r.settling {
		if st.ctrl.Loading() {
			return
		}
		r.settling = false
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	s := r.steps[r.cursor]
	r.cursor++

	switch s.Action {
	case "screenshot":
		st.Screenshot(s.Label)
	case "click":
		st.InjectClick(s.X, s.Y)
	case "move":
		st.InjectMove(s.X, s.Y)
	case "leave":
		st.InjectLeave()
	case "key":
		var mods KeyModifiers
		if s.Ctrl {
			mods |= ModCtrl
		}
		st.InjectKey(ParseKey(s.Key), mods)
	case "type":
		st.InjectText(s.Text)
	case "settle":
		r.settling = true
	case "wait":
		if s.Frames > 0 {
			r.waitCount = s.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && !r.settling && len(st.injectQueue) == 0 {
		r.done = true
	}
}
