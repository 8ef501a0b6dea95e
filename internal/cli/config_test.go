package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evolve/xoshiro"
)

func TestParseSeed(t *testing.T) {
	s, err := parseSeed(defaultSeed)
	require.NoError(t, err)
	assert.Equal(t, [4]uint64{
		0x93920339ac7730ac,
		0x8db68f4acc7c22b1,
		0x8b804df6a99a1289,
		0xff5fa2f037375aa9,
	}, s)

	s, err = parseSeed(" 0x1, 2 ,0x3,4")
	require.NoError(t, err)
	assert.Equal(t, [4]uint64{1, 2, 3, 4}, s)

	s, err = parseSeed("2a")
	require.NoError(t, err)
	g, err := xoshiro.Seed256Plus(42)
	require.NoError(t, err)
	assert.Equal(t, g.State(), s)

	_, err = parseSeed("1,2")
	assert.ErrorIs(t, err, errBadSeed)
	_, err = parseSeed("")
	assert.ErrorIs(t, err, errBadSeed)
}

func TestConfigAlgorithm(t *testing.T) {
	cfg := Config{Algorithm: "GA", Iterations: 1, Population: 2, Tournament: 1}
	algo, err := cfg.algorithm()
	require.NoError(t, err)
	assert.Equal(t, "ga", algo.Name)

	cfg.Algorithm = "de"
	algo, err = cfg.algorithm()
	require.NoError(t, err)
	assert.Equal(t, "de", algo.Name)

	cfg.Algorithm = "sa"
	_, err = cfg.algorithm()
	assert.ErrorIs(t, err, errUnknownAlgorithm)
}
