package core

import "testing"

func TestHandleFunc(t *testing.T) {
	calls := 0
	h := HandleFunc(func() { calls++ })
	h.Cancel()
	if calls != 1 {
		t.Errorf("Cancel() calls = %d, expected 1", calls)
	}

	// Nil handles are safe to cancel.
	NopHandle.Cancel()
	var nilFunc HandleFunc
	nilFunc.Cancel()
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:  "None",
		ActionJump:  "Jump",
		ActionStart: "Start",
		ActionQuit:  "Quit",
		Action(99):  "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", a, got, want)
		}
	}
}
