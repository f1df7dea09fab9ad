package models

// RequestStatus is the lifecycle tag of a plate's in-flight request
type RequestStatus string

const (
	StatusWaiting   RequestStatus = "waiting"
	StatusConfirmed RequestStatus = "confirmed"
	// StatusUnknown is only reported when the poller did not name a plate
	StatusUnknown RequestStatus = "unknown"
)

// StatusView is the combined read model requesters poll
type StatusView struct {
	Status        RequestStatus   `json:"status"`
	OwnerLocation *OwnerLocation  `json:"ownerLocation"`
	AllowCall     bool            `json:"allowCall"`
	Escalation    *EscalationView `json:"escalation,omitempty"`
}

// EscalationRecord counts notifies for the current request cycle
type EscalationRecord struct {
	Count        int   `json:"count"`
	LastNotifyAt int64 `json:"lastNotifyAt"` // unix milliseconds
}

// EscalationView exposes the server's view of the escalation state
type EscalationView struct {
	NotifyCount       int  `json:"notifyCount"`
	RetryAfterSeconds int  `json:"retryAfterSeconds"`
	CallUnlocked      bool `json:"callUnlocked"`
}

// NotifyRequest is the input of InitiateNotify
type NotifyRequest struct {
	Plate    string
	Message  string
	Location *Coordinates
	// Delayed asks for the artificial delivery delay, used when no location could be obtained
	Delayed  bool
	Language string
	BaseURL  string
}

// ConfirmRequest is the input of ConfirmByOwner
type ConfirmRequest struct {
	Plate     string
	Location  *Coordinates
	AllowCall bool
}
