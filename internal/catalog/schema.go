package catalog

// Schema is the YAML layout of a catalog file.
type Schema struct {
	Version      int                   `yaml:"version"`
	Emotions     map[string]MetaSchema `yaml:"emotions"`
	Locations    map[string]MetaSchema `yaml:"locations"`
	Categories   map[string]MetaSchema `yaml:"categories"`
	Activities   []ActivitySchema      `yaml:"activities"`
	Achievements []AchievementSchema   `yaml:"achievements"`
	Challenges   []ChallengeSchema     `yaml:"challenges"`
}

type MetaSchema struct {
	Label    string `yaml:"label"`
	Emoji    string `yaml:"emoji"`
	Reaction string `yaml:"reaction,omitempty"`
}

type ActivitySchema struct {
	ID              string   `yaml:"id"`
	Title           string   `yaml:"title"`
	Emoji           string   `yaml:"emoji"`
	Category        string   `yaml:"category"`
	DurationSeconds int      `yaml:"duration_seconds"`
	SOS             bool     `yaml:"sos,omitempty"`
	AudioURL        string   `yaml:"audio_url,omitempty"`
	Steps           []string `yaml:"steps"`
	Science         string   `yaml:"science"`
	Emotions        []string `yaml:"emotions"`
	Locations       []string `yaml:"locations"`
}

type AchievementSchema struct {
	ID          string `yaml:"id"`
	Emoji       string `yaml:"emoji"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Measure     string `yaml:"measure"`
	Requirement int    `yaml:"requirement"`
}

type ChallengeSchema struct {
	Emoji    string `yaml:"emoji"`
	Text     string `yaml:"text"`
	Count    int    `yaml:"count"`
	Category string `yaml:"category"`
}
