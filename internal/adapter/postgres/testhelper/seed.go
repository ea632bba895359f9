package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yoonbyeo/quizflow/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user row and returns its id.
func SeedUser(t *testing.T, pool *pgxpool.Pool) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	suffix := uniqueSuffix()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, name) VALUES ($1, $2, $3)`,
		userID, "learner-"+suffix+"@example.com", "Learner "+suffix,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}
	return userID
}

// SeedSubject creates a subject owned by userID with cardCount cards in
// positional order.
func SeedSubject(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, cardCount int) domain.Subject {
	t.Helper()
	ctx := context.Background()

	subject := domain.Subject{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     "Subject " + uniqueSuffix(),
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO subjects (id, user_id, title, created_at) VALUES ($1, $2, $3, $4)`,
		subject.ID, subject.UserID, subject.Title, subject.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSubject insert subject: %v", err)
	}

	subject.CardIDs = make([]uuid.UUID, 0, cardCount)
	for i := range cardCount {
		cardID := uuid.New()
		_, err := pool.Exec(ctx,
			`INSERT INTO cards (id, subject_id, position, term, definition) VALUES ($1, $2, $3, $4, $5)`,
			cardID, subject.ID, i, "term "+uniqueSuffix(), "definition",
		)
		if err != nil {
			t.Fatalf("testhelper: SeedSubject insert card %d: %v", i, err)
		}
		subject.CardIDs = append(subject.CardIDs, cardID)
	}

	return subject
}
