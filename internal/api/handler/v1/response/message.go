package response

import "fmt"

// Message is a plain acknowledgement or notice.
type Message struct {
	Message string `json:"message" example:"Card BT1-010 Agumon deleted successfully."`
}

func NewMessage(format string, args ...interface{}) Message {
	return Message{Message: fmt.Sprintf(format, args...)}
}
