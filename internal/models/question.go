package models

import (
	"strconv"
	"strings"
)

// QuestionType discriminates the question union.
type QuestionType string

const (
	QuestionWriting   QuestionType = "writing"
	QuestionReading   QuestionType = "reading"
	QuestionListening QuestionType = "listening"
	QuestionMath      QuestionType = "math"
	QuestionLogical   QuestionType = "logical"
)

// WritingSkill selects the input mode for writing questions.
type WritingSkill string

const (
	SkillDraw WritingSkill = "draw"
	SkillType WritingSkill = "type"
)

// MathOperation tags math questions with their operator.
type MathOperation string

const (
	OpAddition       MathOperation = "addition"
	OpSubtraction    MathOperation = "subtraction"
	OpMultiplication MathOperation = "multiplication"
	OpDivision       MathOperation = "division"
)

// BaseQuestion carries the fields every question variant shares.
type BaseQuestion struct {
	QuestionID       string       `json:"question_id"`
	Type             QuestionType `json:"type"`
	Difficulty       Difficulty   `json:"difficulty"`
	TimeLimitSeconds int          `json:"time_limit_seconds"`
}

// Question is the tagged union over all question variants. Grading is
// type-specific: numeric equality for math, index equality for
// choice-based variants, case-insensitive trimmed comparison for
// writing.
type Question interface {
	Base() BaseQuestion
	// Expected echoes the expected answer as a string for audit records.
	Expected() string
	// Check grades a raw user answer immediately.
	Check(raw string) bool
}

// WritingQuestion asks the kid to draw or type a character, word or
// sentence.
type WritingQuestion struct {
	BaseQuestion
	Prompt        string       `json:"prompt"`
	Skill         WritingSkill `json:"skill"`
	CorrectAnswer string       `json:"correct_answer"`
}

func (q WritingQuestion) Base() BaseQuestion { return q.BaseQuestion }
func (q WritingQuestion) Expected() string   { return q.CorrectAnswer }

func (q WritingQuestion) Check(raw string) bool {
	return strings.EqualFold(strings.TrimSpace(raw), strings.TrimSpace(q.CorrectAnswer))
}

// ReadingQuestion is a multiple-choice comprehension question.
type ReadingQuestion struct {
	BaseQuestion
	Text         string   `json:"text"`
	Prompt       string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_answer_index"`
	ImageURL     string   `json:"image_url,omitempty"`
}

func (q ReadingQuestion) Base() BaseQuestion { return q.BaseQuestion }
func (q ReadingQuestion) Expected() string   { return strconv.Itoa(q.CorrectIndex) }
func (q ReadingQuestion) Check(raw string) bool {
	return checkIndex(raw, q.CorrectIndex)
}

// ListeningQuestion is a multiple-choice question answered after
// text-to-speech playback.
type ListeningQuestion struct {
	BaseQuestion
	AudioText    string   `json:"audio_text"`
	Prompt       string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_answer_index"`
}

func (q ListeningQuestion) Base() BaseQuestion { return q.BaseQuestion }
func (q ListeningQuestion) Expected() string   { return strconv.Itoa(q.CorrectIndex) }
func (q ListeningQuestion) Check(raw string) bool {
	return checkIndex(raw, q.CorrectIndex)
}

// MathQuestion carries two operands, an operation tag and the expected
// numeric result.
type MathQuestion struct {
	BaseQuestion
	Operation MathOperation `json:"operation"`
	Num1      int           `json:"num1"`
	Num2      int           `json:"num2"`
	Result    int           `json:"correct_answer"`
}

func (q MathQuestion) Base() BaseQuestion { return q.BaseQuestion }
func (q MathQuestion) Expected() string   { return strconv.Itoa(q.Result) }

func (q MathQuestion) Check(raw string) bool {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	return err == nil && n == q.Result
}

// LogicalSubType tags logical questions with their puzzle flavor.
type LogicalSubType string

const (
	SubTypePattern  LogicalSubType = "pattern"
	SubTypeSequence LogicalSubType = "sequence"
	SubTypePuzzle   LogicalSubType = "puzzle"
	SubTypeMemory   LogicalSubType = "memory"
)

// LogicalQuestion is a multiple-choice reasoning question.
type LogicalQuestion struct {
	BaseQuestion
	SubType      LogicalSubType `json:"sub_type"`
	Prompt       string         `json:"question"`
	Options      []string       `json:"options"`
	CorrectIndex int            `json:"correct_answer_index"`
}

func (q LogicalQuestion) Base() BaseQuestion { return q.BaseQuestion }
func (q LogicalQuestion) Expected() string   { return strconv.Itoa(q.CorrectIndex) }
func (q LogicalQuestion) Check(raw string) bool {
	return checkIndex(raw, q.CorrectIndex)
}

func checkIndex(raw string, correct int) bool {
	idx, err := strconv.Atoi(strings.TrimSpace(raw))
	return err == nil && idx == correct
}
