package game

// Tuning for level generation and scoring. Levels scale indefinitely;
// the bands inside each domain generator clamp at their highest rule.
const (
	// MaxLevelsPerDomain bounds progress scans, not generation.
	MaxLevelsPerDomain = 50
	// QuestionsPerLevel is the fixed session size for every domain.
	QuestionsPerLevel = 5
	// UnlockStars is the bar for advancing to the next level.
	UnlockStars = 3
	// PointsPerCorrectAnswer feeds the running session score.
	PointsPerCorrectAnswer = 10
	// TimeBonusPerSecondSaved rewards finishing under the time budget.
	TimeBonusPerSecondSaved = 0.1
)

// starThresholds maps stars to the minimum percentage correct,
// evaluated from highest to lowest with first match winning.
var starThresholds = [...]struct {
	stars      int
	percentage int
}{
	{5, 100},
	{4, 90},
	{3, 80},
	{2, 70},
	{1, 60},
}

// basePoints is the fixed stars-to-points table. Zero stars award
// nothing.
var basePoints = map[int]int{
	1: 5,
	2: 10,
	3: 15,
	4: 20,
	5: 25,
}
