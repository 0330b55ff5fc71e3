package models

// Lesson is a course lesson as served to clients.
type Lesson struct {
	ID       string  `json:"id"`
	CourseID string  `json:"courseId"`
	Title    string  `json:"title"`
	Content  string  `json:"content"`
	VideoURL *string `json:"videoUrl"`
	Order    int     `json:"order"`
	Duration *int    `json:"duration"`
}

// Flashcard is a two-sided study card.
type Flashcard struct {
	ID       string  `json:"id"`
	CourseID string  `json:"courseId"`
	LessonID *string `json:"lessonId"`
	Front    string  `json:"front"`
	Back     string  `json:"back"`
	Category *string `json:"category"`
	Order    int     `json:"order"`
}

// Test is practice test metadata. Questions stay empty in listings.
type Test struct {
	ID           string     `json:"id"`
	CourseID     string     `json:"courseId"`
	LessonID     *string    `json:"lessonId"`
	Title        string     `json:"title"`
	Description  *string    `json:"description"`
	TimeLimit    *int       `json:"timeLimit"`
	PassingScore int        `json:"passingScore"`
	Questions    []Question `json:"questions"`
}

// QuestionType is the answer format of a question
type QuestionType string

const QuestionTypeMultipleChoice QuestionType = "multiple_choice"

// Question is a multiple choice question with options a-d.
type Question struct {
	ID            string           `json:"id"`
	TestID        *string          `json:"testId,omitempty"`
	Category      *string          `json:"category"`
	Text          string           `json:"text"`
	Type          QuestionType     `json:"type"`
	Options       []QuestionOption `json:"options"`
	CorrectAnswer string           `json:"correctAnswer"`
	Explanation   *string          `json:"explanation"`
}

// QuestionOption is one answer choice.
type QuestionOption struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	IsCorrect bool   `json:"isCorrect"`
}

// GeneratedTest is a freshly sampled test. It is never stored.
type GeneratedTest struct {
	ID                   string     `json:"id"`
	CourseID             string     `json:"courseId"`
	Title                string     `json:"title"`
	Description          *string    `json:"description"`
	TimeLimit            *int       `json:"timeLimit"`
	PassingScore         int        `json:"passingScore"`
	QuestionsPerCategory int        `json:"questionsPerCategory"`
	Questions            []Question `json:"questions"`
	Categories           []string   `json:"categories"`
}
