package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrimQuotes(t *testing.T) {
	assert.Equal(t, "", TrimQuotes(""))
	assert.Equal(t, "", TrimQuotes(" "))
	assert.Equal(t, "", TrimQuotes(` " `))
	assert.Equal(t, "", TrimQuotes(` "    " `))
	assert.Equal(t, "x", TrimQuotes(` " x     " `))
	assert.Equal(t, "Hello", TrimQuotes(`  "Hello"  `))
	assert.Equal(t, "no quotes", TrimQuotes("no quotes"))
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "a、b", Sanitize("a,b"))
	assert.Equal(t, "don’t", Sanitize("don't"))
	assert.Equal(t, "tick’d", Sanitize("tick`d"))
	// surrounding quotes are stripped, inner ones replaced
	assert.Equal(t, "say ’hi’", Sanitize(`"say 'hi'"`))
}

func TestIsJapanese(t *testing.T) {
	assert.False(t, IsJapanese("One Piece"))
	assert.False(t, IsJapanese(""))
	assert.True(t, IsJapanese("ゆるキャン△"))
	assert.True(t, IsJapanese("ゲート―自衛隊彼の地にて、斯く戦えり"))
	assert.True(t, IsJapanese("mixed 漫画 title"))
}

func TestTimestampRoundTrip(t *testing.T) {
	// 2023-07-16T14:25:34 UTC
	const millis = int64(1689517534000)

	s := FormatEpochMillis(millis)
	assert.Equal(t, "2023-07-16T14:25:34", s)

	back, err := ParseTimestamp(s)
	assert.NoError(t, err)
	assert.Equal(t, millis, back)
}

func TestParseTimestampInvalid(t *testing.T) {
	_, err := ParseTimestamp("not a timestamp")
	assert.Error(t, err)

	_, err = ParseTimestamp("2023-07-16 14:25:34") // wrong separator
	assert.Error(t, err)
}

func TestMicrosToMillis(t *testing.T) {
	assert.Equal(t, int64(1689519634292), MicrosToMillis(1689519634292000))
	assert.Equal(t, int64(0), MicrosToMillis(0))
}
