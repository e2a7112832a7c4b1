package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterpretMemberStringMention(t *testing.T) {
	assert.Equal(t, "123456789012345678", interpretMemberString("<@123456789012345678>"))
}

func TestInterpretMemberStringNicknameMention(t *testing.T) {
	assert.Equal(t, "123456789012345678", interpretMemberString("<@!123456789012345678>"))
}

func TestInterpretMemberStringRawID(t *testing.T) {
	assert.Equal(t, "123456789012345678", interpretMemberString("  123456789012345678 "))
}

func TestInterpretMemberStringRejectsGarbage(t *testing.T) {
	assert.Empty(t, interpretMemberString(""))
	assert.Empty(t, interpretMemberString("someusername"))
	assert.Empty(t, interpretMemberString("<@&123456789012345678>"))
	assert.Empty(t, interpretMemberString("12345"))
}
