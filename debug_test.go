package novel

import "testing"

func TestDebugLogThrottled(t *testing.T) {
	c := newTestController(t, abcScript(), Options{})
	st := newTestStage(t, c, 320, 240)

	st.debugLog(debugStats{})
	if !st.lastDebug.IsZero() {
		t.Fatal("debugLog wrote with Debug off")
	}

	st.Debug = true
	st.debugLog(debugStats{portraits: 1})
	first := st.lastDebug
	if first.IsZero() {
		t.Fatal("debugLog did not record its write")
	}
	st.debugLog(debugStats{portraits: 2})
	if !st.lastDebug.Equal(first) {
		t.Error("debugLog wrote twice within a second")
	}
}

func TestButtonIDString(t *testing.T) {
	tests := map[buttonID]string{
		buttonPrev:    "prev",
		buttonSubmit:  "submit",
		buttonWrapUp:  "wrapup",
		buttonID(200): "unknown",
	}
	for id, want := range tests {
		if got := id.String(); got != want {
			t.Errorf("buttonID(%d).String() = %q, want %q", id, got, want)
		}
	}
}
