package game

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/Sumantkumarraj20/KLD/internal/models"
)

// Per-locale content banks. Each locale keeps a letter bank for the
// early levels, a distractor alphabet, and a word bank for the
// word-level band.
var letterBanks = map[models.Locale][]string{
	models.LocaleEnglish: strings.Split("ABCDEFGHIJ", ""),
	models.LocaleHindi:   {"अ", "आ", "इ", "ई", "उ", "ए", "ओ", "क", "ख", "ग"},
	models.LocaleChinese: {"你", "我", "他", "是", "不", "了", "在", "有", "这", "那"},
}

var alphabetBanks = map[models.Locale][]string{
	models.LocaleEnglish: strings.Split("ABCDEFGHIJKLMNOPQRSTUVWXYZ", ""),
	models.LocaleHindi:   {"अ", "आ", "इ", "ई", "उ", "ए", "ओ", "क", "ख", "ग", "घ", "च"},
	models.LocaleChinese: {"你", "我", "他", "是", "不", "了", "在", "有", "这", "那", "它", "她"},
}

var wordBanks = map[models.Locale][]string{
	models.LocaleEnglish: {"cat", "dog", "fish", "bird", "tree", "sun", "moon", "star", "apple", "ball"},
	models.LocaleHindi:   {"बिल्ली", "कुत्ता", "मछली", "पक्षी", "पेड़", "सूरज", "चाँद", "तारा", "सेब", "गेंद"},
	models.LocaleChinese: {"猫", "狗", "鱼", "鸟", "树", "太阳", "月亮", "星星", "苹果", "球"},
}

var readingDistractorWords = []string{
	"cat", "dog", "fish", "bird", "tree", "sun", "moon", "star",
	"apple", "ball", "box", "hat", "mat", "rat",
}

var listeningWordBank = []string{
	"apple", "banana", "cat", "dog", "elephant", "fish", "grapes",
	"house", "ice", "jacket", "kite", "lion",
}

var writingSentences = []string{
	"The cat is sleeping",
	"I like to play games",
	"The sun is bright",
}

type readingPassage struct {
	text         string
	question     string
	options      []string
	correctIndex int
}

var readingPassages = []readingPassage{
	{
		text:         "A cat is playing with a ball. It is very happy.",
		question:     "What is the cat playing with?",
		options:      []string{"a toy", "a ball", "a dog", "a rope"},
		correctIndex: 1,
	},
	{
		text:         "The sun is bright and warm. It helps plants grow.",
		question:     "What does the sun help?",
		options:      []string{"animals", "rocks", "plants", "water"},
		correctIndex: 2,
	},
}

type listeningSentence struct {
	text         string
	options      []string
	correctIndex int
}

var listeningSentences = []listeningSentence{
	{
		text:         "The dog can run very fast",
		options:      []string{"The cat runs", "The dog runs", "The bird runs"},
		correctIndex: 1,
	},
	{
		text:         "I like to eat red apples",
		options:      []string{"I like green apples", "I like red apples", "I like oranges"},
		correctIndex: 1,
	},
}

// generateLanguageQuestions assembles a mixed-skill level: two writing,
// two reading and one listening question.
func generateLanguageQuestions(level int, locale models.Locale, rng *rand.Rand) []models.Question {
	skill := models.SkillType
	if level%2 == 0 {
		skill = models.SkillDraw
	}

	questions := make([]models.Question, 0, QuestionsPerLevel)
	questions = append(questions, writingQuestions(level, skill, locale, 2)...)
	questions = append(questions, readingQuestions(level, locale, 2, rng)...)
	questions = append(questions, listeningQuestions(level, locale, 1, rng)...)
	return questions
}

// writingQuestions follows the band table: levels 1-5 single
// characters, 6-10 short words, 11+ sentences.
func writingQuestions(level int, skill models.WritingSkill, locale models.Locale, n int) []models.Question {
	verb := "Type"
	drawLimit, typeLimit := 60, 20
	if skill == models.SkillDraw {
		verb = "Draw"
	}

	var (
		targets    []string
		difficulty models.Difficulty
		promptFmt  string
	)
	switch {
	case level <= 5:
		bank := letterBanks[locale]
		count := level + 1
		if count > len(bank) {
			count = len(bank)
		}
		targets = pickCycled(bank[:count], 0, n)
		difficulty = models.DifficultyEasy
		if level > 3 {
			difficulty = models.DifficultyMedium
		}
		promptFmt = verb + " the character %q"
	case level <= 10:
		bank := wordBanks[locale]
		count := level - 4
		if count > len(bank) {
			count = len(bank)
		}
		targets = pickCycled(bank[:count], 0, n)
		difficulty = models.DifficultyMedium
		drawLimit, typeLimit = 90, 30
		promptFmt = verb + " the word %q"
	default:
		lowered := make([]string, len(writingSentences))
		for i, s := range writingSentences {
			lowered[i] = strings.ToLower(s)
		}
		targets = pickCycled(lowered, 0, n)
		difficulty = models.DifficultyHard
		drawLimit, typeLimit = 120, 60
		promptFmt = verb + " this sentence: %q"
	}

	limit := typeLimit
	if skill == models.SkillDraw {
		limit = drawLimit
	}

	questions := make([]models.Question, 0, n)
	for i, target := range targets {
		questions = append(questions, models.WritingQuestion{
			BaseQuestion: models.BaseQuestion{
				QuestionID:       fmt.Sprintf("writing-%s-%d-%d", locale, level, i),
				Type:             models.QuestionWriting,
				Difficulty:       difficulty,
				TimeLimitSeconds: limit,
			},
			Prompt:        fmt.Sprintf(promptFmt, target),
			Skill:         skill,
			CorrectAnswer: target,
		})
	}
	return questions
}

// readingQuestions follows the band table: letter recognition, word
// reading, then sentence comprehension passages.
func readingQuestions(level int, locale models.Locale, n int, rng *rand.Rand) []models.Question {
	questions := make([]models.Question, 0, n)

	switch {
	case level <= 5:
		bank := letterBanks[locale]
		count := level + 2
		if count > len(bank) {
			count = len(bank)
		}
		targets := pickCycled(bank[:count], 0, n)
		difficulty := models.DifficultyEasy
		if level > 3 {
			difficulty = models.DifficultyMedium
		}
		for i, target := range targets {
			options, idx := buildOptions(target, alphabetBanks[locale], rng)
			questions = append(questions, models.ReadingQuestion{
				BaseQuestion: models.BaseQuestion{
					QuestionID:       fmt.Sprintf("reading-%s-%d-letter-%d", locale, level, i),
					Type:             models.QuestionReading,
					Difficulty:       difficulty,
					TimeLimitSeconds: 15,
				},
				Text:         fmt.Sprintf("Which character is %q?", target),
				Prompt:       fmt.Sprintf("Look at the characters below. Find %q", target),
				Options:      options,
				CorrectIndex: idx,
			})
		}
	case level <= 10:
		targets := pickCycled(wordBanks[models.LocaleEnglish], 0, n)
		for i, target := range targets {
			options, idx := buildOptions(target, readingDistractorWords, rng)
			questions = append(questions, models.ReadingQuestion{
				BaseQuestion: models.BaseQuestion{
					QuestionID:       fmt.Sprintf("reading-%d-word-%d", level, i),
					Type:             models.QuestionReading,
					Difficulty:       models.DifficultyMedium,
					TimeLimitSeconds: 20,
				},
				Text:         fmt.Sprintf("Read: %s", target),
				Prompt:       fmt.Sprintf("Which word says %q?", target),
				Options:      options,
				CorrectIndex: idx,
			})
		}
	default:
		for i := 0; i < n; i++ {
			passage := readingPassages[i%len(readingPassages)]
			questions = append(questions, models.ReadingQuestion{
				BaseQuestion: models.BaseQuestion{
					QuestionID:       fmt.Sprintf("reading-%d-sentence-%d", level, i),
					Type:             models.QuestionReading,
					Difficulty:       models.DifficultyHard,
					TimeLimitSeconds: 30,
				},
				Text:         passage.text,
				Prompt:       passage.question,
				Options:      passage.options,
				CorrectIndex: passage.correctIndex,
			})
		}
	}
	return questions
}

// listeningQuestions: the audio text is spoken by the client via TTS;
// the kid picks what they heard.
func listeningQuestions(level int, locale models.Locale, n int, rng *rand.Rand) []models.Question {
	questions := make([]models.Question, 0, n)

	switch {
	case level <= 5:
		targets := pickCycled(letterBanks[locale], 0, n)
		for i, target := range targets {
			options, idx := buildOptions(target, alphabetBanks[locale], rng)
			questions = append(questions, models.ListeningQuestion{
				BaseQuestion: models.BaseQuestion{
					QuestionID:       fmt.Sprintf("listening-%s-%d-letter-%d", locale, level, i),
					Type:             models.QuestionListening,
					Difficulty:       models.DifficultyEasy,
					TimeLimitSeconds: 10,
				},
				AudioText:    target,
				Prompt:       "Listen to the sound. Which did you hear?",
				Options:      options,
				CorrectIndex: idx,
			})
		}
	case level <= 10:
		targets := pickCycled(listeningWordBank[:8], 0, n)
		for i, target := range targets {
			options, idx := buildOptions(target, listeningWordBank, rng)
			questions = append(questions, models.ListeningQuestion{
				BaseQuestion: models.BaseQuestion{
					QuestionID:       fmt.Sprintf("listening-%s-%d-word-%d", locale, level, i),
					Type:             models.QuestionListening,
					Difficulty:       models.DifficultyMedium,
					TimeLimitSeconds: 15,
				},
				AudioText:    target,
				Prompt:       "Listen and choose. Which word did you hear?",
				Options:      options,
				CorrectIndex: idx,
			})
		}
	default:
		for i := 0; i < n; i++ {
			sentence := listeningSentences[i%len(listeningSentences)]
			questions = append(questions, models.ListeningQuestion{
				BaseQuestion: models.BaseQuestion{
					QuestionID:       fmt.Sprintf("listening-%d-sentence-%d", level, i),
					Type:             models.QuestionListening,
					Difficulty:       models.DifficultyHard,
					TimeLimitSeconds: 20,
				},
				AudioText:    sentence.text,
				Prompt:       sentence.text,
				Options:      sentence.options,
				CorrectIndex: sentence.correctIndex,
			})
		}
	}
	return questions
}
