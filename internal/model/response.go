package model

import (
	"encoding/json"
	"net/http"
)

// Envelope is the value returned to the Lambda invoker.
type Envelope struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// MessageBody is the JSON document carried in Envelope.Body.
type MessageBody struct {
	Message string `json:"message"`
}

// NewEnvelope encodes message into a MessageBody and wraps it with status.
func NewEnvelope(status int, message string) Envelope {
	body, err := json.Marshal(MessageBody{Message: message})
	if err != nil {
		// MessageBody holds a single string; Marshal cannot fail on it.
		return Envelope{StatusCode: http.StatusInternalServerError, Body: `{"message":"internal error"}`}
	}
	return Envelope{StatusCode: status, Body: string(body)}
}

// Message decodes the message carried in Body.
func (e Envelope) Message() (string, error) {
	var mb MessageBody
	if err := json.Unmarshal([]byte(e.Body), &mb); err != nil {
		return "", err
	}
	return mb.Message, nil
}
