package domain

import (
	"time"

	"github.com/google/uuid"
)

// CardStat is the per-learner scheduling state of one card.
// Difficulty is always derived from Correct, Incorrect and Streak.
type CardStat struct {
	UserID       uuid.UUID
	CardID       uuid.UUID
	Correct      int
	Incorrect    int
	Streak       int
	Difficulty   Difficulty
	Interval     *int
	NextReview   *time.Time
	LastReviewed *time.Time
}

// IsDue returns true if the card needs review at the given time.
//   - Cards never scheduled are always due.
//   - Other cards are due when NextReview <= now.
func (s *CardStat) IsDue(now time.Time) bool {
	if s == nil || s.NextReview == nil {
		return true
	}
	return !s.NextReview.After(now)
}

// Subject is a named, ordered collection of cards (a "set").
// Authoring lives elsewhere; the study engine only reads it.
type Subject struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	CardIDs   []uuid.UUID
	CreatedAt time.Time
}

// CardRef points at a card inside a subject.
type CardRef struct {
	SubjectID uuid.UUID
	CardID    uuid.UUID
}
