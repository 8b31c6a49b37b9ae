package ws

import (
	"encoding/json"
)

// MessageType represents the different kinds of messages our system can handle
type MessageType string

const (
	// client -> server
	MessageTypeMove   MessageType = "move"
	MessageTypeResign MessageType = "resign"
	MessageTypeLeave  MessageType = "leave"

	// server -> client
	MessageTypeGameState    MessageType = "gameState"
	MessageTypeNotification MessageType = "notification"
	MessageTypeMatchFound   MessageType = "matchFound"
	MessageTypeError        MessageType = "error"
)

// Message represents a WebSocket message in our system
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type NotificationPayload struct {
	Message string `json:"message"`
}

type ErrorPayload struct {
	Error string `json:"error"`
}

// NewMessage marshals payload into a message of type t.
func NewMessage(t MessageType, payload any) (Message, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	return Message{Type: t, Payload: raw}, nil
}

func Notification(text string) Message {
	msg, _ := NewMessage(MessageTypeNotification, NotificationPayload{Message: text})
	return msg
}

func Error(text string) Message {
	msg, _ := NewMessage(MessageTypeError, ErrorPayload{Error: text})
	return msg
}
