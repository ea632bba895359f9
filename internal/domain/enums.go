package domain

// Difficulty is the qualitative mastery tier of a card, derived from its
// outcome counters.
type Difficulty string

const (
	DifficultyUnrated Difficulty = "UNRATED"
	DifficultyMedium  Difficulty = "MEDIUM"
	DifficultyHard    Difficulty = "HARD"
	DifficultyEasy    Difficulty = "EASY"
)

func (d Difficulty) String() string { return string(d) }

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyUnrated, DifficultyMedium, DifficultyHard, DifficultyEasy:
		return true
	}
	return false
}

// StudyMode is one study activity type a session can be tracked for.
type StudyMode string

const (
	StudyModeFlashcard StudyMode = "flashcard"
	StudyModeLearn     StudyMode = "learn"
	StudyModeTest      StudyMode = "test"
	StudyModeMatch     StudyMode = "match"
	StudyModeWrite     StudyMode = "write"
	StudyModeReview    StudyMode = "review"
)

// AllStudyModes lists every mode in display order.
var AllStudyModes = []StudyMode{
	StudyModeFlashcard,
	StudyModeLearn,
	StudyModeTest,
	StudyModeMatch,
	StudyModeWrite,
	StudyModeReview,
}

func (m StudyMode) String() string { return string(m) }

func (m StudyMode) IsValid() bool {
	switch m {
	case StudyModeFlashcard, StudyModeLearn, StudyModeTest, StudyModeMatch, StudyModeWrite, StudyModeReview:
		return true
	}
	return false
}
