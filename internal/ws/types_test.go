package ws

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestErrorMessageIsValidJSON(t *testing.T) {
	msg := Error(`bad "move"`)
	raw, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded struct {
		Type    MessageType  `json:"type"`
		Payload ErrorPayload `json:"payload"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("Unmarshal(%s): %v", raw, err)
	}
	want := ErrorPayload{Error: `bad "move"`}
	if decoded.Type != MessageTypeError {
		t.Errorf("Type = %q; want %q", decoded.Type, MessageTypeError)
	}
	if diff := cmp.Diff(want, decoded.Payload); diff != "" {
		t.Errorf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestNotification(t *testing.T) {
	msg := Notification("alice has joined the game as an observer.")
	var p NotificationPayload
	if err := json.Unmarshal(msg.Payload, &p); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if p.Message != "alice has joined the game as an observer." {
		t.Errorf("Message = %q", p.Message)
	}
}
