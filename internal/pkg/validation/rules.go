package validation

import (
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Validation rule patterns
var (
	// AccessCodePattern allows letters, digits, dashes and underscores.
	// Surrounding whitespace is trimmed before matching.
	AccessCodePattern = `^[A-Za-z0-9][A-Za-z0-9_-]*$`

	AccessCodeMinLength = 3
	AccessCodeMaxLength = 64
)

// AccessCodeTag is the binding tag checked by ValidateAccessCode
const AccessCodeTag = "accesscode"

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	AccessCode *regexp.Regexp
}{
	AccessCode: regexp.MustCompile(AccessCodePattern),
}

// IsValidAccessCode reports whether code is acceptable once trimmed
func IsValidAccessCode(code string) bool {
	code = strings.TrimSpace(code)
	if len(code) < AccessCodeMinLength || len(code) > AccessCodeMaxLength {
		return false
	}
	return CompiledPatterns.AccessCode.MatchString(code)
}

// ValidateAccessCode is the validator.Func behind AccessCodeTag
func ValidateAccessCode(fl validator.FieldLevel) bool {
	return IsValidAccessCode(fl.Field().String())
}

// Register adds the custom rules to v
func Register(v *validator.Validate) error {
	return v.RegisterValidation(AccessCodeTag, ValidateAccessCode)
}

var (
	ginOnce sync.Once
	ginErr  error
)

// RegisterWithGin adds the custom rules to gin's binding validator.
// Only the first call registers.
func RegisterWithGin() error {
	ginOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			ginErr = Register(v)
		}
	})
	return ginErr
}
