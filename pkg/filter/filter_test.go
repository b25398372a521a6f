package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/postboard/placeholder_sdk_go/pkg/filter"
)

func TestStringEncodesOnlyValues(t *testing.T) {
	got := filter.String([]filter.Criterion{
		{Key: "a", Value: "b c"},
		{Key: "d", Value: "e"},
	})
	assert.Equal(t, "a=b%20c&d=e", got)
}

func TestStringEmpty(t *testing.T) {
	assert.Equal(t, "", filter.String(nil))
	assert.Equal(t, "", filter.String([]filter.Criterion{}))
}

func TestStringKeepsOrderAndDuplicates(t *testing.T) {
	got := filter.String(filter.FromPairs("userId", "2", "id", "7", "userId", "3"))
	assert.Equal(t, "userId=2&id=7&userId=3", got)
}

func TestStringKeyNotEncoded(t *testing.T) {
	got := filter.String([]filter.Criterion{{Key: "a b", Value: "x"}})
	assert.Equal(t, "a b=x", got)
}

func TestEscapeComponent(t *testing.T) {
	cases := map[string]string{
		"plain":       "plain",
		"a+b":         "a%2Bb",
		"x&y=z":       "x%26y%3Dz",
		"it's (ok)!":  "it's%20(ok)!",
		"~_.-*":       "~_.-*",
		"a/b?c#d":     "a%2Fb%3Fc%23d",
		"é":           "%C3%A9",
		"me@mail.com": "me%40mail.com",
	}
	for in, want := range cases {
		assert.Equal(t, want, filter.EscapeComponent(in), "input %q", in)
	}
}

func TestParse(t *testing.T) {
	c, err := filter.Parse("title=qui est=esse")
	require.NoError(t, err)
	assert.Equal(t, filter.Criterion{Key: "title", Value: "qui est=esse"}, c)

	c, err = filter.Parse("userId=")
	require.NoError(t, err)
	assert.Equal(t, "", c.Value)

	_, err = filter.Parse("novalue")
	assert.ErrorIs(t, err, filter.ErrMalformed)

	_, err = filter.Parse("=x")
	assert.ErrorIs(t, err, filter.ErrMalformed)
}

func TestParseAll(t *testing.T) {
	got, err := filter.ParseAll([]string{"userId=1", "id=3"})
	require.NoError(t, err)
	assert.Equal(t, filter.FromPairs("userId", "1", "id", "3"), got)

	_, err = filter.ParseAll([]string{"userId=1", "bad"})
	assert.ErrorIs(t, err, filter.ErrMalformed)
}
