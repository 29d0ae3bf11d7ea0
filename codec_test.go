package swiftdsv

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestSpecExamples(t *testing.T) {
	t.Parallel()

	c, err := New()
	require.NoError(t, err)

	encoded := c.EncodeField(`the "cat"`)
	assert.Equal(t, `"the ""cat"""`, encoded)
	table, err := c.Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{`the "cat"`}}, table)

	table, err = c.Decode(`a,"b,b",c`)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b,b", "c"}}, table)

	_, err = c.Decode("a,b\n1,2,3")
	assert.ErrorIs(t, err, ErrMalformedInput)
	_, err = c.Decode("a,b\n1,2\n")
	assert.ErrorIs(t, err, ErrMalformedInput)

	header, err := c.DecodeHeaderRow("h1,h2\nbad,row,extra")
	require.NoError(t, err)
	assert.Equal(t, []string{"h1", "h2"}, header)

	quiet, err := New(WithStringifyNullish(false))
	require.NoError(t, err)
	assert.Equal(t, "", quiet.EncodeField(nil))
	assert.Equal(t, "null", c.EncodeField(nil))
}

func TestRoundTripDialects(t *testing.T) {
	t.Parallel()

	table := [][]string{
		{"id", "name", "quote"},
		{"1", "a,b;c", `he said "hi"`},
		{"2", "", "it's\rfine"},
		{"3", "«§»", "\t"},
	}

	dialects := map[string][]Option{
		"default":   nil,
		"semicolon": {WithDelimiter(';'), WithEscaper('\'')},
		"tab":       {WithDelimiter('\t')},
		"pipe":      {WithDelimiter('|'), WithEscapeAllFields(true)},
		"wide":      {WithDelimiter('§'), WithEscaper('«')},
	}

	for name, opts := range dialects {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			c, err := New(opts...)
			require.NoError(t, err)

			text, err := c.Encode(table)
			require.NoError(t, err)
			assert.NotContains(t, text[len(text)-1:], "\n")

			got, err := c.Decode(text)
			require.NoError(t, err)
			assert.Equal(t, table, got)
		})
	}
}

func TestCodecConcurrentUse(t *testing.T) {
	t.Parallel()

	comma, err := New()
	require.NoError(t, err)
	semi, err := New(WithDelimiter(';'), WithEscaper('\''))
	require.NoError(t, err)

	var g errgroup.Group
	for i := 0; i < 32; i++ {
		c := comma
		if i%2 == 1 {
			c = semi
		}
		g.Go(func() error {
			table := [][]string{
				{"n", "text"},
				{fmt.Sprint(i), fmt.Sprintf("value, 'quoted' \"%d\"", i)},
			}
			for j := 0; j < 50; j++ {
				text, err := c.Encode(table)
				if err != nil {
					return err
				}
				got, err := c.Decode(text)
				if err != nil {
					return err
				}
				if got[1][1] != table[1][1] {
					return fmt.Errorf("goroutine %d: got %q, want %q", i, got[1][1], table[1][1])
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
