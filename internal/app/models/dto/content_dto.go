package dto

// QuestionsQuery holds the optional filters of GET /api/content/questions
type QuestionsQuery struct {
	TestID   string `form:"testId" binding:"omitempty,numeric"`
	Category string `form:"category" binding:"omitempty,max=255"`
}

// QuestionsMeta summarizes a question listing
type QuestionsMeta struct {
	Total      int      `json:"total" example:"25"`
	Categories []string `json:"categories"`
}

// GenerateTestURI binds the :id path parameter
type GenerateTestURI struct {
	ID int `uri:"id" binding:"required,min=1"`
}
