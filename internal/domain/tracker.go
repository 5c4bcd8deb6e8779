package domain

import "time"

// SiteAchievement is a logged "win": a documented intervention or outcome
// tied to a project. Free-text fields are sanitized before persistence.
type SiteAchievement struct {
	ID          string
	Date        time.Time
	ProjectID   string
	Category    string
	Title       string
	Impact      string
	ReviewReady bool
}

// TimesheetEntry records hours against a project and activity. AchievementID
// links the entry to a win when one was logged alongside it; empty means
// unlinked. Notes are sanitized before persistence.
type TimesheetEntry struct {
	ID            string
	Date          time.Time
	ProjectID     string
	ActivityType  string
	Hours         float64
	AchievementID string
	Notes         string
}
