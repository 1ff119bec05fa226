package domain

import "time"

// HeartbeatStaleAfter is how long a bot may stay silent before it is
// considered offline.
const HeartbeatStaleAfter = 300 * time.Second

type Liveness string

const (
	LivenessOnline  Liveness = "online"
	LivenessOffline Liveness = "offline"
	LivenessUnknown Liveness = "unknown"
)

// ClassifyLiveness derives the authoritative status from the last heartbeat.
// The self-declared status stored alongside the heartbeat is advisory only.
func ClassifyLiveness(lastHeartbeat *time.Time, now time.Time) (Liveness, string) {
	if lastHeartbeat == nil || lastHeartbeat.IsZero() {
		return LivenessUnknown, "gray"
	}
	if now.Sub(*lastHeartbeat) <= HeartbeatStaleAfter {
		return LivenessOnline, "green"
	}
	return LivenessOffline, "red"
}
