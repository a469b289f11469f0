package game

import (
	"math"

	"github.com/Sumantkumarraj20/KLD/internal/errors"
	"github.com/Sumantkumarraj20/KLD/internal/models"
)

// Score grades a completed session against its total time budget. It
// is pure: given the same session and budget, the output is fully
// determined.
func Score(session models.GameSession, totalTimeLimitSeconds int) (models.GameSessionResult, error) {
	total := len(session.Answers)
	if total == 0 {
		return models.GameSessionResult{}, errors.NewValidationError("session", "has no recorded answers")
	}

	correct := session.CorrectCount()
	percentage := int(math.Round(100 * float64(correct) / float64(total)))

	stars := 0
	for _, threshold := range starThresholds {
		if percentage >= threshold.percentage {
			stars = threshold.stars
			break
		}
	}

	points := basePoints[stars]
	if stars >= 1 {
		saved := float64(totalTimeLimitSeconds) - session.TimeTakenSeconds
		if saved > 0 {
			points += int(math.Floor(saved * TimeBonusPerSecondSaved))
		}
	}

	return models.GameSessionResult{
		SessionID:          session.SessionID,
		LevelID:            session.LevelID,
		Domain:             session.Domain,
		LevelNumber:        session.LevelNumber,
		IsCompleted:        stars >= 1,
		StarsEarned:        stars,
		Score:              session.Score,
		Percentage:         percentage,
		TimeTakenSeconds:   session.TimeTakenSeconds,
		Feedback:           feedback(stars),
		NextLevelAvailable: stars >= UnlockStars,
		PointsAwarded:      points,
	}, nil
}

// feedback maps stars earned to a canned, kid-friendly message.
func feedback(stars int) string {
	switch stars {
	case 5:
		return "Perfect! You're a superstar!"
	case 4:
		return "Excellent work!"
	case 3:
		return "Good job! Keep practicing!"
	case 2:
		return "Nice try! You can do better!"
	case 1:
		return "You passed! Try again to improve!"
	default:
		return "Keep practicing! You'll get it next time!"
	}
}

// TotalTimeLimit sums the per-question budgets of a question set.
func TotalTimeLimit(questions []models.Question) int {
	total := 0
	for _, q := range questions {
		total += q.Base().TimeLimitSeconds
	}
	return total
}
