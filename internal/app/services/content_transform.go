package services

import (
	"strconv"
	"strings"

	"github.com/yigit/coursepass/internal/app/models"
	"github.com/yigit/coursepass/internal/pkg/baserow"
)

// UncategorizedCategory groups questions whose category is empty.
const UncategorizedCategory = "Uncategorized"

var optionIDs = [4]string{"a", "b", "c", "d"}

// rowOrder reads the integer part of an "orderr" value, 0 when unparsable.
func rowOrder(orderr string) int {
	v, _ := baserow.LeadingInt(orderr)
	return v
}

func categoryOf(category *string) string {
	if category == nil || *category == "" {
		return UncategorizedCategory
	}
	return *category
}

func toLesson(row models.LessonRow, courseID string) models.Lesson {
	return models.Lesson{
		ID:       strconv.Itoa(row.ID),
		CourseID: courseID,
		Title:    row.Title,
		Content:  row.Content,
		VideoURL: row.VideoURL,
		Order:    rowOrder(row.Orderr),
		Duration: row.Duration.Ptr(),
	}
}

func toFlashcard(row models.FlashcardRow, courseID string) models.Flashcard {
	return models.Flashcard{
		ID:       strconv.Itoa(row.ID),
		CourseID: courseID,
		Front:    row.Front,
		Back:     row.Back,
		Category: row.Category,
		Order:    rowOrder(row.Orderr),
	}
}

func toTest(row models.TestRow, courseID string) models.Test {
	return models.Test{
		ID:           strconv.Itoa(row.ID),
		CourseID:     courseID,
		Title:        row.Title,
		Description:  row.Description,
		TimeLimit:    row.TimeLimit.Ptr(),
		PassingScore: row.PassingScore.Value,
		Questions:    []models.Question{},
	}
}

// correctIndex maps the A-D answer letter to an option index. Anything else
// falls back to the first option.
func correctIndex(answer string) int {
	switch strings.ToUpper(strings.TrimSpace(answer)) {
	case "B":
		return 1
	case "C":
		return 2
	case "D":
		return 3
	default:
		return 0
	}
}

func toQuestion(row models.QuestionRow) models.Question {
	idx := correctIndex(row.CorrectAnswer)
	texts := [4]string{row.OptionA, row.OptionB, row.OptionC, row.OptionD}

	options := make([]models.QuestionOption, len(texts))
	for i, text := range texts {
		options[i] = models.QuestionOption{ID: optionIDs[i], Text: text, IsCorrect: i == idx}
	}

	var testID *string
	if row.TestID.Valid {
		id := strconv.Itoa(row.TestID.Value)
		testID = &id
	}

	return models.Question{
		ID:            strconv.Itoa(row.ID),
		TestID:        testID,
		Category:      row.Category,
		Text:          row.Question,
		Type:          models.QuestionTypeMultipleChoice,
		Options:       options,
		CorrectAnswer: strings.ToLower(strings.TrimSpace(row.CorrectAnswer)),
	}
}
