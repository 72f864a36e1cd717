package domain

import "time"

// UnknownActorName is recorded when the closer's staff id cannot be
// resolved at save time; an unresolvable actor never fails a save.
const UnknownActorName = "Desconhecido"

// AppendAuditEntry returns log plus one new entry. The input slice is never
// mutated; callers can hold the old log and the new one simultaneously.
func AppendAuditEntry(log []AuditEntry, actorName, description string, now time.Time) []AuditEntry {
	out := make([]AuditEntry, 0, len(log)+1)
	out = append(out, log...)
	out = append(out, AuditEntry{
		Timestamp:   now,
		ActorName:   actorName,
		Description: description,
	})
	return out
}
