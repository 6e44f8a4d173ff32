package dto

// Envelope is the uniform response shape for every operation. Recoverable
// per-item conditions travel inside Data; only operation-level failures set
// Status to false.
type Envelope struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}
