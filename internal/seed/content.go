package seed

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/yigit/coursepass/internal/app/models"
	"github.com/yigit/coursepass/internal/pkg/baserow"
)

type lessonSeed struct {
	Orderr   string `json:"orderr"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	VideoURL string `json:"videoUrl"`
	Duration int    `json:"duration"`
}

type flashcardSeed struct {
	Orderr   string `json:"orderr"`
	Front    string `json:"front"`
	Back     string `json:"back"`
	Category string `json:"category"`
}

type testSeed struct {
	Orderr               string `json:"orderr"`
	Title                string `json:"title"`
	Description          string `json:"description"`
	TimeLimit            int    `json:"timeLimit"`
	PassingScore         int    `json:"passingScore"`
	QuestionsPerCategory int    `json:"questionsPerCategory"`
}

type questionSeed struct {
	Category      string `json:"category"`
	Question      string `json:"question"`
	OptionA       string `json:"optionA"`
	OptionB       string `json:"optionB"`
	OptionC       string `json:"optionC"`
	OptionD       string `json:"optionD"`
	CorrectAnswer string `json:"correctAnswer"`
}

// ContentCounts reports how many rows SeedContent created per table
type ContentCounts struct {
	Lessons    int
	Flashcards int
	Tests      int
	Questions  int
	Cleared    int
}

// SeedContent replaces the rows of the four course tables with the demo
// GED course. Tables that cannot be listed are not cleared.
func SeedContent(ctx context.Context, client *baserow.Client, tables models.ContentSourceConfig, lgr zerolog.Logger) (ContentCounts, error) {
	var counts ContentCounts

	lgr.Info().Msg("Clearing existing content...")
	for _, tableID := range []string{tables.LessonsTableID, tables.FlashcardsTableID, tables.TestsTableID, tables.QuestionsTableID} {
		n, err := clearTable(ctx, client, tableID)
		if err != nil {
			lgr.Warn().Err(err).Str("table", tableID).Msg("Could not clear table")
			continue
		}
		counts.Cleared += n
	}

	var err error
	if counts.Lessons, err = createRows(ctx, client, tables.LessonsTableID, numbered(demoLessons, func(l *lessonSeed, o string) { l.Orderr = o })); err != nil {
		return counts, fmt.Errorf("seeding lessons: %w", err)
	}
	if counts.Flashcards, err = createRows(ctx, client, tables.FlashcardsTableID, numbered(demoFlashcards, func(f *flashcardSeed, o string) { f.Orderr = o })); err != nil {
		return counts, fmt.Errorf("seeding flashcards: %w", err)
	}
	if counts.Tests, err = createRows(ctx, client, tables.TestsTableID, numbered(demoTests, func(t *testSeed, o string) { t.Orderr = o })); err != nil {
		return counts, fmt.Errorf("seeding tests: %w", err)
	}
	if counts.Questions, err = createRows(ctx, client, tables.QuestionsTableID, demoQuestions); err != nil {
		return counts, fmt.Errorf("seeding questions: %w", err)
	}

	lgr.Info().
		Int("lessons", counts.Lessons).
		Int("flashcards", counts.Flashcards).
		Int("tests", counts.Tests).
		Int("questions", counts.Questions).
		Msg("Seeding complete")
	return counts, nil
}

// numbered returns a copy of rows with 1-based positions written by set
func numbered[T any](rows []T, set func(*T, string)) []T {
	out := make([]T, len(rows))
	copy(out, rows)
	for i := range out {
		set(&out[i], strconv.Itoa(i+1))
	}
	return out
}

type rowID struct {
	ID int `json:"id"`
}

func clearTable(ctx context.Context, client *baserow.Client, tableID string) (int, error) {
	rows, err := baserow.GetAllRows[rowID](ctx, client, tableID, baserow.ListOptions{})
	if err != nil {
		return 0, err
	}
	for _, row := range rows {
		if err := baserow.DeleteRow(ctx, client, tableID, row.ID); err != nil {
			return 0, err
		}
	}
	return len(rows), nil
}

func createRows[T any](ctx context.Context, client *baserow.Client, tableID string, rows []T) (int, error) {
	for i, row := range rows {
		if _, err := baserow.CreateRow[rowID](ctx, client, tableID, row); err != nil {
			return i, err
		}
	}
	return len(rows), nil
}
