package response

// Envelope is the wire shape shared by every public endpoint: a success
// flag plus a human-readable message. Endpoints embed it next to their
// payload fields.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func Ok(message string) Envelope {
	return Envelope{
		Success: true,
		Message: message,
	}
}

func Fail(message string) Envelope {
	return Envelope{
		Success: false,
		Message: message,
	}
}
