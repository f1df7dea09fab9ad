package constants

import "time"

// NSQ topics
const (
	TopicNotifyRequested = "movecar.notify_requested"
	TopicOwnerConfirmed  = "movecar.owner_confirmed"
)

// Push delivery defaults
const (
	DefaultPushGroup   = "MoveCar"
	DefaultPushLevel   = "critical"
	DefaultPushSound   = "minuet"
	DefaultPushIconURL = "https://cdn-icons-png.flaticon.com/512/741/741407.png"
	DefaultPushTimeout = 10 * time.Second
)

// Request limits
const (
	MaxMessageRunes    = 500
	DefaultNotifyDelay = 30 * time.Second
)

// Owner confirmation page path, linked from push notifications
const OwnerConfirmPath = "/owner-confirm"

// GeohashPrecision is the precision of geohashes stored with locations
const GeohashPrecision = 7
