package idx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewProducesValidIDs(t *testing.T) {
	id := New()
	require.False(t, id.IsZero())
	require.Len(t, id.String(), 26)

	parsed, err := Parse(id.String())
	require.NoError(t, err)
	require.Equal(t, id, parsed)
}

func TestNewIsMonotonicWithinRun(t *testing.T) {
	prev := New()
	for range 1000 {
		next := New()
		require.Less(t, prev.String(), next.String())
		prev = next
	}
}

func TestParseRejectsMalformedInput(t *testing.T) {
	for _, s := range []string{
		"",
		"   ",
		"not-a-ulid",
		"0123456789",
		"01ARZ3NDEKTSV4RRFFQ69G5FA!", // invalid character
	} {
		_, err := Parse(s)
		require.ErrorIs(t, err, ErrInvalid, "input %q", s)
	}
}

func TestParseTrimsWhitespace(t *testing.T) {
	id := New()
	parsed, err := Parse("  " + id.String() + "\n")
	require.NoError(t, err)
	require.Equal(t, id, parsed)
}

func TestTimeRoundTrip(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	id := NewAt(at)
	require.Equal(t, at, id.Time())
}

func TestMustParsePanicsOnInvalid(t *testing.T) {
	require.Panics(t, func() { MustParse("bogus") })
}
