// Package seed creates the default access codes and pushes demo course
// content into Baserow.
package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/yigit/coursepass/internal/app/models"
	"github.com/yigit/coursepass/internal/app/services"
)

// DefaultCode describes one access code created by CreateDefaultData
type DefaultCode struct {
	Code       string
	CourseID   string
	CourseName string
}

// DefaultCodes are the codes every fresh installation gets
var DefaultCodes = []DefaultCode{
	{Code: "TEST123", CourseID: "course-1", CourseName: "GED Test Prep"},
	{Code: "DEMO2024", CourseID: "course-2", CourseName: "GED Test Prep Demo"},
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// CreateDefaultData upserts DefaultCodes with the given Baserow credentials.
// Existing codes keep their usage count and active flag. Every code is
// attempted and the failures are joined.
func CreateDefaultData(ctx context.Context, admin services.AdminService, src models.ContentSourceConfig, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default access codes...")

	if src.APIToken == "" {
		lgr.Warn().Msg("No Baserow API token configured for seeded codes, content routes will answer 500 for them")
	}

	var finalErr error
	for _, d := range DefaultCodes {
		code, err := admin.UpsertAccessCode(ctx, &models.AccessCode{
			Code:       d.Code,
			CourseID:   d.CourseID,
			CourseName: d.CourseName,
			IsActive:   true,
			ContentSource: models.ContentSourceFields{
				APIToken:          optional(src.APIToken),
				LessonsTableID:    optional(src.LessonsTableID),
				FlashcardsTableID: optional(src.FlashcardsTableID),
				TestsTableID:      optional(src.TestsTableID),
				QuestionsTableID:  optional(src.QuestionsTableID),
			},
		})
		if err != nil {
			lgr.Error().Err(err).Str("code", d.Code).Msg("Error upserting default access code")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		lgr.Info().Str("code", code.Code).Str("courseID", code.CourseID).Msg("Default access code ready")
	}

	return finalErr
}
