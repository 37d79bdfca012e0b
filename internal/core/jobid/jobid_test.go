package jobid

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNext(t *testing.T) {
	tests := []struct {
		name   string
		latest string
		want   string
	}{
		{name: "no existing jobs", latest: "", want: "A0001"},
		{name: "simple increment", latest: "A0001", want: "A0002"},
		{name: "keeps padding", latest: "B0099", want: "B0100"},
		{name: "zero number", latest: "C0000", want: "C0001"},
		{name: "letter rollover", latest: "A9999", want: "B0001"},
		{name: "last letter below max", latest: "Z9998", want: "Z9999"},
		{name: "two letters falls back to floor", latest: "AB001", want: Floor},
		{name: "too short falls back to floor", latest: "A12", want: Floor},
		{name: "lowercase falls back to floor", latest: "a0001", want: Floor},
		{name: "too long falls back to floor", latest: "A00001", want: Floor},
		{name: "trailing space falls back to floor", latest: "A0001 ", want: Floor},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Next(tc.latest)
			require.NoError(t, err)
			require.Equal(t, tc.want, got.String())
		})
	}
}

func TestNext_IncrementsEveryNumberBelowMax(t *testing.T) {
	for _, letter := range []byte{'A', 'M', 'Z'} {
		for n := 0; n < maxNumber; n++ {
			latest := fmt.Sprintf("%c%04d", letter, n)
			got, err := Next(latest)
			require.NoError(t, err)
			require.Equal(t, fmt.Sprintf("%c%04d", letter, n+1), got.String())
		}
	}
}

func TestNext_ExhaustedSpace(t *testing.T) {
	_, err := Next("Z9999")
	require.ErrorIs(t, err, ErrIdentifierSpaceExhausted)
}

func TestParse(t *testing.T) {
	id, err := Parse("K0420")
	require.NoError(t, err)
	require.Equal(t, byte('K'), id.Letter)
	require.Equal(t, 420, id.Number)

	for _, bad := range []string{"", "A12", "AB001", "10001", "A-001", "Ä0001"} {
		_, err := Parse(bad)
		require.ErrorIs(t, err, ErrMalformedIdentifier, "input %q", bad)
	}
}

func TestID_Less(t *testing.T) {
	require.True(t, MustParse("A9999").Less(MustParse("B0001")))
	require.True(t, MustParse("B0001").Less(MustParse("B0002")))
	require.False(t, MustParse("B0002").Less(MustParse("B0002")))
	require.False(t, MustParse("C0001").Less(MustParse("B9999")))
}
