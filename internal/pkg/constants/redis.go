package constants

import "time"

// Store key formats, all keyed by canonical plate
const (
	KeyStatus            = "status:%s"     // Format: status:{plate}
	KeyRequesterLocation = "req_loc:%s"    // Format: req_loc:{plate}
	KeyOwnerLocation     = "owner_loc:%s"  // Format: owner_loc:{plate}
	KeyAllowCall         = "allow_call:%s" // Format: allow_call:{plate}
	KeyEscalation        = "escalation:%s" // Format: escalation:{plate}

	// Rate Limiting
	KeyRateLimit = "rate:limit:%s:%s" // Format: rate:limit:{route}:{ip}
)

// Record lifetimes
const (
	StatusTTL     = 600 * time.Second
	AllowCallTTL  = 600 * time.Second
	LocationTTL   = 3600 * time.Second
	EscalationTTL = 600 * time.Second
)
