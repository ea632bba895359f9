package study

import "github.com/yoonbyeo/quizflow/internal/domain"

// Tier thresholds on the running correct streak.
const (
	easyStreak   = 5
	mediumStreak = 2
)

// ClassifyDifficulty maps a card's outcome counters to a mastery tier.
// Rules are checked in order: a long streak wins over everything, then a
// short streak, then a majority of misses.
func ClassifyDifficulty(correct, incorrect, streak int) domain.Difficulty {
	switch {
	case streak >= easyStreak:
		return domain.DifficultyEasy
	case streak >= mediumStreak:
		return domain.DifficultyMedium
	case incorrect > correct:
		return domain.DifficultyHard
	default:
		return domain.DifficultyUnrated
	}
}
