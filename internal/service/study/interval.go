package study

import "time"

// intervalLadder holds the review intervals in days. A correct answer moves
// one rung up, an incorrect one drops back to the first rung.
var intervalLadder = [...]int{1, 3, 7, 14, 30, 60}

// NextInterval returns the interval in days to grant after an outcome.
// prev is the last granted interval, nil if the card was never scheduled.
func NextInterval(prev *int, correct bool) int {
	if !correct || prev == nil {
		return intervalLadder[0]
	}

	rung := ladderIndex(*prev)
	if rung < 0 {
		return intervalLadder[0]
	}
	if rung+1 >= len(intervalLadder) {
		return intervalLadder[len(intervalLadder)-1]
	}
	return intervalLadder[rung+1]
}

// ladderIndex returns the highest rung whose interval is <= days, or -1 when
// days is below the first rung. Off-ladder values come from older data.
func ladderIndex(days int) int {
	idx := -1
	for i, v := range intervalLadder {
		if v > days {
			break
		}
		idx = i
	}
	return idx
}

// NextReview returns the moment a card granted interval days becomes due.
func NextReview(now time.Time, interval int) time.Time {
	return now.AddDate(0, 0, interval)
}
