package game

import (
	"fmt"
	"math/rand"

	"github.com/Sumantkumarraj20/KLD/internal/models"
)

// generateMathQuestions follows the band table:
//   - levels 1-5: addition with small operands that grow with the level
//   - levels 6-10: subtraction, operands arranged so results are never
//     negative
//   - levels 11-15: multiplication over the 1-10 tables
//   - levels 16+: division plus mixed operations; the dividend is
//     derived as divisor*quotient so every result is a whole number
func generateMathQuestions(level int, rng *rand.Rand) []models.Question {
	questions := make([]models.Question, 0, QuestionsPerLevel)

	switch {
	case level <= 5:
		difficulty := models.DifficultyEasy
		if level > 3 {
			difficulty = models.DifficultyMedium
		}
		for i := 0; i < QuestionsPerLevel; i++ {
			num1 := rng.Intn(level + 3)
			num2 := rng.Intn(level + 3)
			questions = append(questions, mathQuestion(level, "addition", i, difficulty, models.OpAddition, num1, num2, num1+num2, 30))
		}
	case level <= 10:
		for i := 0; i < QuestionsPerLevel; i++ {
			num1 := rng.Intn(20) + (level - 5)
			bound := num1
			if bound > 10 {
				bound = 10
			}
			num2 := 0
			if bound > 0 {
				num2 = rng.Intn(bound)
			}
			questions = append(questions, mathQuestion(level, "subtraction", i, models.DifficultyMedium, models.OpSubtraction, num1, num2, num1-num2, 35))
		}
	case level <= 15:
		for i := 0; i < QuestionsPerLevel; i++ {
			num1 := rng.Intn(10) + 1
			num2 := rng.Intn(level-10) + 1
			if num2 > 10 {
				num2 = 10
			}
			questions = append(questions, mathQuestion(level, "multiplication", i, models.DifficultyHard, models.OpMultiplication, num1, num2, num1*num2, 40))
		}
	default:
		for i := 0; i < QuestionsPerLevel; i++ {
			if i < 3 {
				divisor := rng.Intn(9) + 1
				quotient := rng.Intn(9) + 1
				questions = append(questions, mathQuestion(level, "division", i, models.DifficultyHard, models.OpDivision, divisor*quotient, divisor, quotient, 45))
				continue
			}

			operations := []models.MathOperation{models.OpAddition, models.OpSubtraction, models.OpMultiplication}
			op := operations[i%3]
			num1 := rng.Intn(20) + 1
			num2 := rng.Intn(10) + 1
			if op == models.OpSubtraction && num2 > num1 {
				num1, num2 = num2, num1
			}

			result := 0
			switch op {
			case models.OpAddition:
				result = num1 + num2
			case models.OpSubtraction:
				result = num1 - num2
			case models.OpMultiplication:
				result = num1 * num2
			}
			questions = append(questions, mathQuestion(level, "mixed", i, models.DifficultyHard, op, num1, num2, result, 50))
		}
	}

	return questions
}

func mathQuestion(level int, band string, index int, difficulty models.Difficulty, op models.MathOperation, num1, num2, result, limit int) models.MathQuestion {
	return models.MathQuestion{
		BaseQuestion: models.BaseQuestion{
			QuestionID:       fmt.Sprintf("math-%d-%s-%d", level, band, index),
			Type:             models.QuestionMath,
			Difficulty:       difficulty,
			TimeLimitSeconds: limit,
		},
		Operation: op,
		Num1:      num1,
		Num2:      num2,
		Result:    result,
	}
}
