package progress

import "github.com/VolkofAndrey/micro-rest-app/internal/domain"

// AchievementStatus pairs a definition with whether it is currently unlocked.
type AchievementStatus struct {
	domain.Achievement
	Unlocked bool
}

// Measures are the inputs achievements are evaluated against.
type Measures struct {
	TotalCompleted int
	Streak         int
}

func (m Measures) value(measure domain.AchievementMeasure) int {
	switch measure {
	case domain.MeasureTotalCompleted:
		return m.TotalCompleted
	case domain.MeasureStreak:
		return m.Streak
	default:
		return 0
	}
}

// EvaluateAchievements returns the ids of every unlocked achievement in
// definition order. Evaluation is stateless: an achievement whose measure
// drops back below its requirement is reported locked again.
func EvaluateAchievements(defs []domain.Achievement, historyLen, streak int) []string {
	m := Measures{TotalCompleted: historyLen, Streak: streak}
	var unlocked []string
	for _, d := range defs {
		if m.value(d.Measure) >= d.Requirement {
			unlocked = append(unlocked, d.ID)
		}
	}
	return unlocked
}

// AchievementStatuses reports every definition with its unlock flag, in
// definition order.
func AchievementStatuses(defs []domain.Achievement, m Measures) []AchievementStatus {
	out := make([]AchievementStatus, len(defs))
	for i, d := range defs {
		out[i] = AchievementStatus{Achievement: d, Unlocked: m.value(d.Measure) >= d.Requirement}
	}
	return out
}
