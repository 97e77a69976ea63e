package service

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeUID(t *testing.T) {
	assert.Equal(t, "04A1B2", NormalizeUID("04 a1 b2"))
	assert.Equal(t, "04A1B2", NormalizeUID("  04A1B2\t"))
	assert.Equal(t, "04A1B2", NormalizeUID("04A1B2"))
	assert.Equal(t, "", NormalizeUID("   "))
}

func TestUIDMatchPatternTolerantOfWhitespaceVariants(t *testing.T) {
	// Readers report the same card with or without spacing; both forms must
	// resolve to the same stored value.
	assert.Equal(t, UIDMatchPattern("04 A1"), UIDMatchPattern("04A1"))

	re := regexp.MustCompile("(?i)" + UIDMatchPattern("04 A1 B2"))
	assert.True(t, re.MatchString("04A1B2"))
	assert.True(t, re.MatchString("04 a1 b2"))
	assert.True(t, re.MatchString(" 04 A1B2 "))
	// Anchored: a card must not resolve against a longer UID containing it.
	assert.False(t, re.MatchString("0004A1B2FF"))
	assert.False(t, re.MatchString("04A1"))
}

func TestUIDMatchPatternQuotesMetaCharacters(t *testing.T) {
	re := regexp.MustCompile("(?i)" + UIDMatchPattern("A.B"))
	assert.True(t, re.MatchString("A.B"))
	assert.False(t, re.MatchString("AXB"))
}
