package fixture_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/submatch/fixture"
)

func TestParseScenarioRoundTrip(t *testing.T) {
	r := strings.NewReader("CC\noverlap=1 permute=0\nCCCC\n(a1 a2)\n(a2 a3)\n(a3 a4)\n()\n")
	sc, err := fixture.Parse(r)
	require.NoError(t, err)
	require.Equal(t, "CC", sc.PatternSMILES)
	require.Equal(t, "CCCC", sc.TargetSMILES)
	require.True(t, sc.Overlap)
	require.False(t, sc.Permute)
	require.Equal(t, [][]string{{"a1", "a2"}, {"a2", "a3"}, {"a3", "a4"}}, sc.Expected)
}

func TestParseScenarioMissingSentinelFails(t *testing.T) {
	r := strings.NewReader("CC\noverlap=1 permute=0\nCC\n(a1 a2)\n")
	_, err := fixture.Parse(r)
	require.ErrorIs(t, err, fixture.ErrMissingSentinel)
}

func TestParseMatchListEmpty(t *testing.T) {
	out, err := fixture.ParseMatchList([]string{"()"})
	require.NoError(t, err)
	require.Nil(t, out)
}

func TestScenarioCorpusMatchesSpec(t *testing.T) {
	scenarios, err := fixture.LoadDir("testdata")
	require.NoError(t, err)
	require.Len(t, scenarios, 6)

	for _, sc := range scenarios {
		sc := sc
		t.Run(sc.Name, func(t *testing.T) {
			got, err := sc.Run()
			require.NoError(t, err)
			require.Equal(t, sc.Expected, got)
		})
	}
}
