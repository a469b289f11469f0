package models

import "time"

// GameSession is the mutable record of one play-through of a level.
// It is created on session start, appended to on every answer and
// finalized exactly once on completion.
type GameSession struct {
	SessionID        string       `json:"session_id"`
	KidID            string       `json:"kid_id"`
	LevelID          string       `json:"level_id"`
	Domain           Domain       `json:"domain"`
	LevelNumber      int          `json:"level_number"`
	StartedAt        time.Time    `json:"started_at"`
	CompletedAt      *time.Time   `json:"completed_at,omitempty"`
	StarsEarned      int          `json:"stars_earned"`
	Score            int          `json:"score"`
	TimeTakenSeconds float64      `json:"time_taken_seconds"`
	Answers          []GameAnswer `json:"answers"`
	IsCompleted      bool         `json:"is_completed"`
}

// CorrectCount returns how many recorded answers were correct.
func (s GameSession) CorrectCount() int {
	n := 0
	for _, a := range s.Answers {
		if a.IsCorrect {
			n++
		}
	}
	return n
}

// GameAnswer is an immutable record of a single graded answer.
type GameAnswer struct {
	QuestionID       string  `json:"question_id"`
	UserAnswer       string  `json:"user_answer"`
	CorrectAnswer    string  `json:"correct_answer"`
	IsCorrect        bool    `json:"is_correct"`
	TimeTakenSeconds float64 `json:"time_taken_seconds"`
}

// GameSessionResult is the derived, read-only summary of a finished
// session.
type GameSessionResult struct {
	SessionID          string  `json:"session_id"`
	LevelID            string  `json:"level_id"`
	Domain             Domain  `json:"domain"`
	LevelNumber        int     `json:"level_number"`
	IsCompleted        bool    `json:"is_completed"`
	StarsEarned        int     `json:"stars_earned"`
	Score              int     `json:"score"`
	Percentage         int     `json:"percentage"`
	TimeTakenSeconds   float64 `json:"time_taken_seconds"`
	Feedback           string  `json:"feedback"`
	NextLevelAvailable bool    `json:"next_level_available"`
	PointsAwarded      int     `json:"points_awarded"`
}
