package services

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/yigit/coursepass/internal/app/models"
	"github.com/yigit/coursepass/internal/pkg/apperrors"
	"github.com/yigit/coursepass/internal/pkg/baserow"
	"github.com/yigit/coursepass/internal/telemetry"
)

// DefaultQuestionsPerCategory applies when a test row leaves the field unset or zero.
const DefaultQuestionsPerCategory = 5

const orderField = "orderr"

// QuestionFilter narrows a question listing. Empty fields are ignored.
type QuestionFilter struct {
	TestID   string
	Category string
}

func (f QuestionFilter) baserowFilters() map[string]string {
	filters := map[string]string{}
	if f.TestID != "" {
		filters["filter__testId__equal"] = f.TestID
	}
	if f.Category != "" {
		filters["filter__category__equal"] = f.Category
	}
	if len(filters) == 0 {
		return nil
	}
	return filters
}

// ContentService defines course content operations against the content store
type ContentService interface {
	ListLessons(ctx context.Context, src *models.CourseContentSource) ([]models.Lesson, error)
	ListFlashcards(ctx context.Context, src *models.CourseContentSource) ([]models.Flashcard, error)
	ListTests(ctx context.Context, src *models.CourseContentSource) ([]models.Test, error)
	ListQuestions(ctx context.Context, src *models.CourseContentSource, filter QuestionFilter) ([]models.Question, []string, error)
	GenerateTest(ctx context.Context, src *models.CourseContentSource, testID int) (*models.GeneratedTest, error)
}

// contentServiceImpl implements the ContentService interface
type contentServiceImpl struct {
	clients *baserow.Factory
	intN    func(n int) int
	logger  zerolog.Logger
}

// NewContentService creates a new content service instance
func NewContentService(clients *baserow.Factory, logger zerolog.Logger) ContentService {
	return &contentServiceImpl{
		clients: clients,
		intN:    rand.IntN,
		logger:  logger.With().Str("component", "content_service").Logger(),
	}
}

func (s *contentServiceImpl) client(src *models.CourseContentSource) *baserow.Client {
	return s.clients.ForToken(src.Config.APIToken)
}

// ListLessons returns the course lessons ordered by their order field
func (s *contentServiceImpl) ListLessons(ctx context.Context, src *models.CourseContentSource) ([]models.Lesson, error) {
	rows, err := baserow.GetAllRows[models.LessonRow](ctx, s.client(src), src.Config.LessonsTableID, baserow.ListOptions{OrderBy: orderField})
	if err != nil {
		return nil, apperrors.NewUpstreamError("Failed to fetch lessons", err)
	}

	lessons := make([]models.Lesson, 0, len(rows))
	for _, row := range rows {
		lessons = append(lessons, toLesson(row, src.CourseID))
	}
	return lessons, nil
}

// ListFlashcards returns the course flashcards ordered by their order field
func (s *contentServiceImpl) ListFlashcards(ctx context.Context, src *models.CourseContentSource) ([]models.Flashcard, error) {
	rows, err := baserow.GetAllRows[models.FlashcardRow](ctx, s.client(src), src.Config.FlashcardsTableID, baserow.ListOptions{OrderBy: orderField})
	if err != nil {
		return nil, apperrors.NewUpstreamError("Failed to fetch flashcards", err)
	}

	cards := make([]models.Flashcard, 0, len(rows))
	for _, row := range rows {
		cards = append(cards, toFlashcard(row, src.CourseID))
	}
	return cards, nil
}

// ListTests returns test metadata ordered by the order field, without questions
func (s *contentServiceImpl) ListTests(ctx context.Context, src *models.CourseContentSource) ([]models.Test, error) {
	rows, err := baserow.GetAllRows[models.TestRow](ctx, s.client(src), src.Config.TestsTableID, baserow.ListOptions{OrderBy: orderField})
	if err != nil {
		return nil, apperrors.NewUpstreamError("Failed to fetch tests", err)
	}

	tests := make([]models.Test, 0, len(rows))
	for _, row := range rows {
		tests = append(tests, toTest(row, src.CourseID))
	}
	return tests, nil
}

// ListQuestions returns the matching questions and their distinct
// categories in first-seen order.
func (s *contentServiceImpl) ListQuestions(ctx context.Context, src *models.CourseContentSource, filter QuestionFilter) ([]models.Question, []string, error) {
	rows, err := baserow.GetAllRows[models.QuestionRow](ctx, s.client(src), src.Config.QuestionsTableID, baserow.ListOptions{
		Filters: filter.baserowFilters(),
	})
	if err != nil {
		return nil, nil, apperrors.NewUpstreamError("Failed to fetch questions", err)
	}

	questions := make([]models.Question, 0, len(rows))
	categories := []string{}
	seen := map[string]bool{}
	for _, row := range rows {
		questions = append(questions, toQuestion(row))
		if c := categoryOf(row.Category); !seen[c] {
			seen[c] = true
			categories = append(categories, c)
		}
	}
	return questions, categories, nil
}

// GenerateTest samples up to questionsPerCategory questions from every
// category of the course's question bank and shuffles the result. Every
// call draws a new sample.
func (s *contentServiceImpl) GenerateTest(ctx context.Context, src *models.CourseContentSource, testID int) (*models.GeneratedTest, error) {
	client := s.client(src)

	testRow, err := baserow.GetRow[models.TestRow](ctx, client, src.Config.TestsTableID, testID)
	if err != nil {
		if baserow.IsNotFound(err) {
			return nil, apperrors.ErrTestNotFound
		}
		return nil, fmt.Errorf("%w: fetching test %d: %w", apperrors.ErrGenerationFailed, testID, err)
	}

	perCategory := testRow.QuestionsPerCategory.Value
	if !testRow.QuestionsPerCategory.Valid || perCategory <= 0 {
		perCategory = DefaultQuestionsPerCategory
	}

	rows, err := baserow.GetAllRows[models.QuestionRow](ctx, client, src.Config.QuestionsTableID, baserow.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("%w: fetching questions: %w", apperrors.ErrGenerationFailed, err)
	}

	selected, categories := s.sample(rows, perCategory)

	questions := make([]models.Question, 0, len(selected))
	for _, row := range selected {
		questions = append(questions, toQuestion(row))
	}

	telemetry.TestsGeneratedTotal.WithLabelValues(src.CourseID).Inc()
	s.logger.Debug().
		Int("testID", testID).
		Int("questions", len(questions)).
		Int("categories", len(categories)).
		Msg("Test generated")

	return &models.GeneratedTest{
		ID:                   strconv.Itoa(testRow.ID),
		CourseID:             src.CourseID,
		Title:                testRow.Title,
		Description:          testRow.Description,
		TimeLimit:            testRow.TimeLimit.Ptr(),
		PassingScore:         testRow.PassingScore.Value,
		QuestionsPerCategory: perCategory,
		Questions:            questions,
		Categories:           categories,
	}, nil
}

// sample groups rows by category in first-seen order, takes a random
// min(perCategory, len(group)) from each group and shuffles the union.
func (s *contentServiceImpl) sample(rows []models.QuestionRow, perCategory int) ([]models.QuestionRow, []string) {
	categories := []string{}
	groups := map[string][]models.QuestionRow{}
	for _, row := range rows {
		c := categoryOf(row.Category)
		if _, ok := groups[c]; !ok {
			categories = append(categories, c)
		}
		groups[c] = append(groups[c], row)
	}

	selected := make([]models.QuestionRow, 0, len(categories)*perCategory)
	for _, c := range categories {
		group := shuffle(groups[c], s.intN)
		selected = append(selected, group[:min(perCategory, len(group))]...)
	}

	return shuffle(selected, s.intN), categories
}

// shuffle returns a Fisher-Yates shuffled copy of items. intN must return a
// uniform integer in [0, n).
func shuffle[T any](items []T, intN func(n int) int) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := intN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
