package dto

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/coursepass/internal/pkg/validation"
)

func TestHandleValidationError(t *testing.T) {
	v := validator.New()
	v.SetTagName("binding")
	require.NoError(t, validation.Register(v))

	err := v.Struct(CreateAccessCodeRequest{Code: "ab"})
	msg := HandleValidationError(err)

	assert.Contains(t, msg, "code must be 3-64 letters, digits, dashes or underscores")
	assert.Contains(t, msg, "courseID is required")
	assert.Contains(t, msg, "courseName is required")
}

func TestHandleValidationError_NonValidatorError(t *testing.T) {
	assert.Equal(t, "Invalid request format", HandleValidationError(errors.New("unexpected EOF")))
}

func TestQuestionsQuery_Validation(t *testing.T) {
	v := validator.New()
	v.SetTagName("binding")

	assert.NoError(t, v.Struct(QuestionsQuery{}))
	assert.NoError(t, v.Struct(QuestionsQuery{TestID: "12", Category: "Math"}))

	err := v.Struct(QuestionsQuery{TestID: "twelve"})
	assert.Equal(t, "testID must be numeric", HandleValidationError(err))
}
