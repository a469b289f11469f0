package game

import (
	"time"

	"github.com/google/uuid"

	"github.com/Sumantkumarraj20/KLD/internal/errors"
	"github.com/Sumantkumarraj20/KLD/internal/models"
)

// Session is the in-progress state machine for one play-through:
// questions are answered strictly in order, each answer is graded on
// arrival, and completion happens exactly once.
type Session struct {
	models.GameSession

	questions []models.Question
	cursor    int
}

// NewSession creates a session for a generated question set. The
// question list must not be empty.
func NewSession(kidID string, level models.Level, questions []models.Question, now time.Time) (*Session, error) {
	if kidID == "" {
		return nil, errors.NewValidationError("kid_id", "must not be empty")
	}
	if len(questions) == 0 {
		return nil, errors.NewValidationError("questions", "must not be empty")
	}

	return &Session{
		GameSession: models.GameSession{
			SessionID:   uuid.NewString(),
			KidID:       kidID,
			LevelID:     level.LevelID,
			Domain:      level.Domain,
			LevelNumber: level.LevelNumber,
			StartedAt:   now,
			Answers:     make([]models.GameAnswer, 0, len(questions)),
		},
		questions: questions,
	}, nil
}

// Questions returns the ordered question set.
func (s *Session) Questions() []models.Question { return s.questions }

// CurrentQuestion returns the question awaiting an answer, or nil once
// every question has been answered.
func (s *Session) CurrentQuestion() models.Question {
	if s.cursor >= len(s.questions) {
		return nil
	}
	return s.questions[s.cursor]
}

// RecordAnswer grades the raw answer against the current question,
// appends the result and advances the cursor. Recording after
// completion or past the last question is a usage error.
func (s *Session) RecordAnswer(raw string, timeTakenSeconds float64) (models.GameAnswer, error) {
	if s.IsCompleted {
		return models.GameAnswer{}, errors.NewSessionCompletedError(s.SessionID)
	}
	question := s.CurrentQuestion()
	if question == nil {
		return models.GameAnswer{}, errors.NewValidationError("session", "all questions already answered")
	}
	if timeTakenSeconds < 0 {
		timeTakenSeconds = 0
	}

	answer := models.GameAnswer{
		QuestionID:       question.Base().QuestionID,
		UserAnswer:       raw,
		CorrectAnswer:    question.Expected(),
		IsCorrect:        question.Check(raw),
		TimeTakenSeconds: timeTakenSeconds,
	}

	s.Answers = append(s.Answers, answer)
	s.cursor++
	if answer.IsCorrect {
		s.Score += PointsPerCorrectAnswer
	}
	s.TimeTakenSeconds += timeTakenSeconds

	return answer, nil
}

// Exhausted reports whether every question has been answered.
func (s *Session) Exhausted() bool { return s.cursor >= len(s.questions) }

// Complete finalizes the session. The transition happens exactly once;
// repeat calls are state errors.
func (s *Session) Complete(now time.Time) error {
	if s.IsCompleted {
		return errors.NewSessionCompletedError(s.SessionID)
	}
	if len(s.Answers) == 0 {
		return errors.NewValidationError("session", "cannot complete with no recorded answers")
	}
	s.IsCompleted = true
	s.CompletedAt = &now
	return nil
}

// Result grades the finished session.
func (s *Session) Result() (models.GameSessionResult, error) {
	if !s.IsCompleted {
		return models.GameSessionResult{}, errors.NewValidationError("session", "not completed yet")
	}
	return Score(s.GameSession, TotalTimeLimit(s.questions))
}
