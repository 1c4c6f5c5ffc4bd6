package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextCmd_Executes(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"reverse", []string{"text", "reverse", "hello"}, "olleh\n"},
		{"reverse joins args", []string{"text", "reverse", "ab", "cd"}, "dc ba\n"},
		{"reverse unicode", []string{"text", "reverse", "añb"}, "bña\n"},
		{"palindrome true", []string{"text", "palindrome", "Was it a car or a cat I saw?"}, "true\n"},
		{"palindrome false", []string{"text", "palindrome", "hello"}, "false\n"},
		{"words", []string{"text", "words", "  one   two three "}, "3\n"},
		{"words empty", []string{"text", "words"}, "0\n"},
		{
			"analyse",
			[]string{"text", "analyse", "Level"},
			"Original: Level\nUppercase: LEVEL\nLength: 5\nReversed: leveL\nPalindrome: true\nWords: 1\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, cleanup := setupTestServices()
			defer cleanup()

			out, err := executeCommand(t, "", tt.args...)

			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestTextCmd_AnalyzeAlias(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	out, err := executeCommand(t, "", "text", "analyze", "hi")

	require.NoError(t, err)
	assert.Contains(t, out, "Uppercase: HI")
}

func TestTextCmd_NotConfigured(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()
	textService = nil

	_, err := executeCommand(t, "", "text", "words", "a")

	assert.EqualError(t, err, "text service not configured")
}

func TestJoinArgs(t *testing.T) {
	assert.Equal(t, "", joinArgs(nil))
	assert.Equal(t, "a b", joinArgs([]string{"a", "b"}))
}
