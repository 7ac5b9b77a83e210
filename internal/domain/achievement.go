package domain

// Achievement is a catalog-defined milestone.
type Achievement struct {
	ID          string
	Emoji       string
	Title       string
	Description string
	Measure     AchievementMeasure
	Requirement int
}

// DailyChallenge asks for Count completions in Category on a single day.
type DailyChallenge struct {
	Emoji    string
	Text     string
	Count    int
	Category Category
}
