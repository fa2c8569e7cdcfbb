package menu

import "testing"

func TestNext(t *testing.T) {
	tests := []struct {
		callback string
		want     string
		known    bool
	}{
		{CallbackEvents, ManageEvents, true},
		{CallbackParticipants, ManageParticipants, true},
		{CallbackClose, End, true},
		{"menu:bogus", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, known := Next(tt.callback)
		if got != tt.want || known != tt.known {
			t.Errorf("Next(%q) = (%q, %t), want (%q, %t)",
				tt.callback, got, known, tt.want, tt.known)
		}
	}
}

func TestKeyboardCallbacks(t *testing.T) {
	kb := Keyboard()

	var callbacks []string
	for _, row := range kb.InlineKeyboard {
		for _, btn := range row {
			if btn.CallbackData == nil {
				t.Fatalf("button %q has no callback data", btn.Text)
			}
			callbacks = append(callbacks, *btn.CallbackData)
		}
	}

	for _, want := range []string{CallbackEvents, CallbackParticipants, CallbackClose} {
		found := false
		for _, cb := range callbacks {
			if cb == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("keyboard is missing callback %q", want)
		}
	}

	// Every advertised callback must map to a state.
	for _, cb := range callbacks {
		if _, ok := Next(cb); !ok {
			t.Errorf("keyboard callback %q has no state transition", cb)
		}
	}
}
