package game

import (
	"fmt"
	"math/rand"

	"github.com/Sumantkumarraj20/KLD/internal/errors"
	"github.com/Sumantkumarraj20/KLD/internal/models"
)

// GenerateLevel produces the level metadata and its ordered question
// set for a (domain, level) pair. Content selection is randomized but
// every multiple-choice question contains its correct answer exactly
// once. Level numbers beyond the highest defined band clamp to that
// band's generation rule.
func GenerateLevel(domain models.Domain, levelNumber int, locale models.Locale, rng *rand.Rand) (models.Level, []models.Question, error) {
	if levelNumber < 1 {
		return models.Level{}, nil, errors.NewValidationError("level_number", "must be a positive integer")
	}

	level := models.Level{
		LevelID:     models.LevelID(domain, levelNumber),
		Domain:      domain,
		LevelNumber: levelNumber,
		Difficulty:  levelDifficulty(levelNumber),
		Title:       levelTitle(domain, levelNumber),
		Description: levelDescription(domain, levelNumber),
		MaxStars:    5,
		IsAvailable: true,
	}

	var questions []models.Question
	switch domain {
	case models.DomainLanguage:
		questions = generateLanguageQuestions(levelNumber, locale, rng)
	case models.DomainMathematics:
		questions = generateMathQuestions(levelNumber, rng)
	case models.DomainLogical:
		questions = generateLogicalQuestions(levelNumber)
	default:
		return models.Level{}, nil, errors.NewValidationError("domain", fmt.Sprintf("unknown domain %q", domain))
	}

	return level, questions, nil
}

func levelDifficulty(level int) models.Difficulty {
	switch {
	case level <= 5:
		return models.DifficultyEasy
	case level <= 15:
		return models.DifficultyMedium
	default:
		return models.DifficultyHard
	}
}

func levelTitle(domain models.Domain, level int) string {
	names := map[models.Domain]string{
		models.DomainLanguage:    "Language",
		models.DomainMathematics: "Math",
		models.DomainLogical:     "Logic",
	}
	return fmt.Sprintf("%s Level %d", names[domain], level)
}

func levelDescription(domain models.Domain, level int) string {
	descriptions := map[models.Domain][3]string{
		models.DomainLanguage: {
			"Learn letters and basic words",
			"Practice reading and writing",
			"Master sentences and comprehension",
		},
		models.DomainMathematics: {
			"Discover numbers and simple addition",
			"Practice multiplication and division",
			"Solve complex math problems",
		},
		models.DomainLogical: {
			"Recognize patterns and sequences",
			"Solve puzzles and remember patterns",
			"Master complex logic challenges",
		},
	}

	stage := 0
	switch {
	case level <= 5:
		stage = 0
	case level <= 15:
		stage = 1
	default:
		stage = 2
	}
	return descriptions[domain][stage]
}

// pickCycled returns n items from bank starting at offset, cycling
// through the bank when fewer distinct items exist than slots.
func pickCycled(bank []string, offset, n int) []string {
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, bank[(offset+i)%len(bank)])
	}
	return out
}

// buildOptions assembles a multiple-choice option list: the correct
// answer once, three distractors drawn from the bank without exact
// duplicates of the target or each other, then a uniform shuffle.
// Returns the options and the index of the correct answer.
func buildOptions(correct string, bank []string, rng *rand.Rand) ([]string, int) {
	options := []string{correct}
	seen := map[string]bool{correct: true}

	// Bound the draw loop in case the bank cannot supply three
	// distinct distractors.
	for attempts := 0; len(options) < 4 && attempts < 12*len(bank); attempts++ {
		candidate := bank[rng.Intn(len(bank))]
		if seen[candidate] {
			continue
		}
		seen[candidate] = true
		options = append(options, candidate)
	}

	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	for i, opt := range options {
		if opt == correct {
			return options, i
		}
	}
	// Unreachable: the correct answer is always in the list.
	return options, 0
}
