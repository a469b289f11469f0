package game

import (
	"fmt"

	"github.com/Sumantkumarraj20/KLD/internal/models"
)

type logicalItem struct {
	question     string
	options      []string
	correctIndex int
}

var patternBank = []logicalItem{
	{"Which shape comes next? 🔴 🟡 🟢 ?", []string{"🔵", "🟡", "🔴", "⭐"}, 0},
	{"Which color pattern continues? Red Blue Red Blue ?", []string{"Blue", "Red", "Green", "Yellow"}, 1},
	{"Find the pattern: 2 4 6 8 ?", []string{"10", "9", "12", "14"}, 0},
	{"What comes next? 🟠 🟠🟠 🟠🟠🟠 ?", []string{"🟠", "🟠🟠🟠🟠", "🟡🟡", "⭐"}, 1},
	{"Complete the pattern: AB AB AB ?", []string{"AB", "BA", "AC", "BB"}, 0},
}

var sequenceBank = []logicalItem{
	{"Continue the sequence: 1 2 3 4 ?", []string{"5", "6", "3", "2"}, 0},
	{"What number is missing? 2 4 6 ? 10", []string{"7", "8", "5", "9"}, 1},
	{"Next in sequence: 1 1 2 3 5 8 ?", []string{"10", "13", "12", "11"}, 1},
	{"What comes next? Z Y X W ?", []string{"V", "U", "T", "S"}, 0},
	{"Find next: 5 10 15 20 ?", []string{"25", "30", "22", "24"}, 0},
}

var puzzleBank = []logicalItem{
	{"A dog has 4 legs. How many legs do 2 dogs have?", []string{"6", "8", "2", "4"}, 1},
	{"If you have 3 apples and add 2 more, how many do you have?", []string{"1", "5", "2", "6"}, 1},
	{"What has a face and hands but no legs? (Hint: tells time)", []string{"A person", "A clock", "A doll", "A book"}, 1},
	{"Which weighs more: a pound of feathers or a pound of rocks?", []string{"Rocks", "Feathers", "They weigh the same", "Can't tell"}, 2},
	{"If today is Monday, what day will it be in 2 days?", []string{"Tuesday", "Wednesday", "Thursday", "Friday"}, 1},
}

var memoryBank = []logicalItem{
	{"You saw these items for 5 seconds: 🍎 🍌 🍊. Which was NOT there?", []string{"🍎", "🍌", "🍇", "🍊"}, 2},
	{"Remember these: 🎈 🎀 🎁 🎉. Which is missing from: 🎀 🎁 🎉?", []string{"🎈", "🎀", "🎁", "🎉"}, 0},
	{"Recall the shapes: 🔴 🟡 🔵 🟢. Pick the one you remember:", []string{"🟡", "🟪", "🟠", "⭐"}, 0},
	{"You saw: A B C D E. What was in position 3?", []string{"A", "B", "C", "D"}, 2},
	{"Remember the order: Cat Dog Bird. Which comes after Dog?", []string{"Cat", "Dog", "Bird", "Fish"}, 2},
}

var logicalSubTypes = []models.LogicalSubType{
	models.SubTypePattern,
	models.SubTypeSequence,
	models.SubTypePuzzle,
	models.SubTypeMemory,
}

// generateLogicalQuestions cycles the four sub-types across the five
// question slots. The banks are fixed; difficulty is banded on level.
func generateLogicalQuestions(level int) []models.Question {
	difficulty := models.DifficultyEasy
	switch {
	case level > 10:
		difficulty = models.DifficultyHard
	case level > 5:
		difficulty = models.DifficultyMedium
	}

	banks := map[models.LogicalSubType][]logicalItem{
		models.SubTypePattern:  patternBank,
		models.SubTypeSequence: sequenceBank,
		models.SubTypePuzzle:   puzzleBank,
		models.SubTypeMemory:   memoryBank,
	}

	limits := map[models.LogicalSubType]int{
		models.SubTypePattern:  30,
		models.SubTypeSequence: 35,
		models.SubTypePuzzle:   40,
		models.SubTypeMemory:   45,
	}

	questions := make([]models.Question, 0, QuestionsPerLevel)
	for i := 0; i < QuestionsPerLevel; i++ {
		subType := logicalSubTypes[i%len(logicalSubTypes)]
		bank := banks[subType]
		item := bank[(level+i)%len(bank)]

		questions = append(questions, models.LogicalQuestion{
			BaseQuestion: models.BaseQuestion{
				QuestionID:       fmt.Sprintf("logical-%d-%s-%d", level, subType, i),
				Type:             models.QuestionLogical,
				Difficulty:       difficulty,
				TimeLimitSeconds: limits[subType],
			},
			SubType:      subType,
			Prompt:       item.question,
			Options:      item.options,
			CorrectIndex: item.correctIndex,
		})
	}
	return questions
}
