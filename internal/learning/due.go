package learning

import (
	"fmt"
	"time"

	"github.com/jankenoboe/jankenoboe/internal/database"
)

const (
	// A record at level 0 becomes due this many seconds after it was created or last touched.
	warmUpSeconds = 300
	secondsPerDay = 86400
)

// IsDue reports whether r is eligible for review at now+lookahead.
// Graduated records and records whose level is outside their path are never due.
func IsDue(r Record, now time.Time, lookahead time.Duration) bool {
	if r.Graduated {
		return false
	}
	reference := now.Unix() + int64(lookahead/time.Second)

	switch {
	case r.Level == 0 && r.LastLevelUpAt == 0:
		return reference >= r.UpdatedAt+warmUpSeconds
	case r.Level == 0:
		return reference >= r.LastLevelUpAt+warmUpSeconds
	case r.Level > 0 && r.Level < len(r.LevelUpPath):
		return reference >= r.LastLevelUpAt+int64(r.LevelUpPath[r.Level])*secondsPerDay
	default:
		return false
	}
}

// dueCondition renders IsDue as a WHERE clause over learning aliased as l.
// It takes the reference instant three times as a positional argument.
func dueCondition(d database.Dialect) string {
	return fmt.Sprintf(`l.graduated = 0 AND (
		(l.last_level_up_at = 0 AND l.level = 0 AND ? >= l.updated_at + %[1]d)
		OR (l.last_level_up_at > 0 AND l.level = 0 AND ? >= l.last_level_up_at + %[1]d)
		OR (l.level > 0 AND ? >= l.last_level_up_at + %[2]s * %[3]d)
	)`, warmUpSeconds, waitDaysExpr(d), secondsPerDay)
}

// waitDaysExpr yields NULL when the level is outside the path, so such records never match.
func waitDaysExpr(d database.Dialect) string {
	return d.JSONArrayInt("l.level_up_path", "l.level")
}
