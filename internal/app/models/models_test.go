package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestContentSourceFields_Config(t *testing.T) {
	full := ContentSourceFields{
		APIToken:          strPtr("tok"),
		LessonsTableID:    strPtr("1"),
		FlashcardsTableID: strPtr("2"),
		TestsTableID:      strPtr("3"),
		QuestionsTableID:  strPtr("4"),
	}

	cfg, ok := full.Config()
	assert.True(t, ok)
	assert.Equal(t, ContentSourceConfig{
		APIToken: "tok", LessonsTableID: "1", FlashcardsTableID: "2", TestsTableID: "3", QuestionsTableID: "4",
	}, cfg)

	missing := full
	missing.TestsTableID = nil
	_, ok = missing.Config()
	assert.False(t, ok)

	blank := full
	blank.APIToken = strPtr("")
	_, ok = blank.Config()
	assert.False(t, ok)
}

func TestAccessCode_Checks(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Minute)
	future := now.Add(time.Hour)
	limit := 2

	assert.False(t, (&AccessCode{}).IsExpired(now))
	assert.True(t, (&AccessCode{ExpiresAt: &past}).IsExpired(now))
	assert.False(t, (&AccessCode{ExpiresAt: &future}).IsExpired(now))

	assert.False(t, (&AccessCode{UsageCount: 100}).UsageExhausted())
	assert.False(t, (&AccessCode{UsageLimit: &limit, UsageCount: 1}).UsageExhausted())
	assert.True(t, (&AccessCode{UsageLimit: &limit, UsageCount: 2}).UsageExhausted())
}

func TestSession_IsExpired(t *testing.T) {
	now := time.Now()
	assert.True(t, (&Session{ExpiresAt: now.Add(-time.Second)}).IsExpired(now))
	assert.False(t, (&Session{ExpiresAt: now.Add(time.Second)}).IsExpired(now))
}
