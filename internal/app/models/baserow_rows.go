package models

import "github.com/yigit/coursepass/internal/pkg/baserow"

// Baserow table rows, decoded with user field names. Each workspace holds
// one course, so rows carry no course id. "orderr" avoids the reserved
// "order" field name.

// LessonRow is a row of the lessons table
type LessonRow struct {
	ID          int              `json:"id"`
	Orderr      string           `json:"orderr"`
	Title       string           `json:"title"`
	Description *string          `json:"description"`
	Content     string           `json:"content"`
	VideoURL    *string          `json:"videoUrl"`
	Duration    baserow.IntField `json:"duration"`
}

// FlashcardRow is a row of the flashcards table
type FlashcardRow struct {
	ID       int     `json:"id"`
	Orderr   string  `json:"orderr"`
	Front    string  `json:"front"`
	Back     string  `json:"back"`
	Category *string `json:"category"`
}

// TestRow is a row of the tests table
type TestRow struct {
	ID                   int              `json:"id"`
	Orderr               string           `json:"orderr"`
	Title                string           `json:"title"`
	Description          *string          `json:"description"`
	TimeLimit            baserow.IntField `json:"timeLimit"`
	PassingScore         baserow.IntField `json:"passingScore"`
	QuestionsPerCategory baserow.IntField `json:"questionsPerCategory"`
}

// QuestionRow is a row of the questions table
type QuestionRow struct {
	ID            int              `json:"id"`
	Orderr        string           `json:"orderr"`
	TestID        baserow.IntField `json:"testId"`
	Category      *string          `json:"category"`
	Question      string           `json:"question"`
	OptionA       string           `json:"optionA"`
	OptionB       string           `json:"optionB"`
	OptionC       string           `json:"optionC"`
	OptionD       string           `json:"optionD"`
	CorrectAnswer string           `json:"correctAnswer"`
}
