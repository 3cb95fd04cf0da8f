package domain

// RegistrationPhase is the state of a registration workflow for one (event, identity) pair.
type RegistrationPhase string

const (
	PhaseUnregistered     RegistrationPhase = "unregistered"
	PhaseAwaitingIdentity RegistrationPhase = "awaiting_identity"
	PhaseRegistering      RegistrationPhase = "registering"
	PhaseRegistered       RegistrationPhase = "registered"
	PhaseFailed           RegistrationPhase = "failed"
)

// RegistrationState is a snapshot of one registration attempt.
// swagger:model RegistrationState
type RegistrationState struct {
	EventID  string            `json:"eventId"`
	Identity string            `json:"mssvId,omitempty"`
	Phase    RegistrationPhase `json:"phase"`
	// Err is set only in PhaseFailed.
	Err error `json:"-"`
	// Message is the verbatim error text for display.
	Message string `json:"message,omitempty"`
	// Event is the latest known copy of the record, when one is held.
	Event *Event `json:"event,omitempty"`
}

// CanRegister reports whether a register action would start a network call.
func (s RegistrationState) CanRegister() bool {
	return s.Phase == PhaseUnregistered || s.Phase == PhaseFailed
}
