package substitution

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const tinyMatrix = `  A  B
A  4 -2
B -2  5
`

func TestLoadAndScore(t *testing.T) {
	m, err := Load(strings.NewReader(tinyMatrix))
	assert.NoError(t, err)

	score, err := m.Score('A', 'A')
	assert.NoError(t, err)
	assert.Equal(t, 4, score)

	score, err = m.Score('A', 'B')
	assert.NoError(t, err)
	assert.Equal(t, -2, score)
}

func TestScoreUnknownLetter(t *testing.T) {
	m, err := Load(strings.NewReader(tinyMatrix))
	assert.NoError(t, err)

	_, err = m.Score('A', 'Z')
	assert.Error(t, err)
}

func TestLoadNamedBlosum62IsSymmetric(t *testing.T) {
	m, err := LoadNamed("blosum62")
	assert.NoError(t, err)

	for _, a := range m.Alphabet() {
		for _, b := range m.Alphabet() {
			sab, err := m.Score(a, b)
			assert.NoError(t, err)
			sba, err := m.Score(b, a)
			assert.NoError(t, err)
			assert.Equal(t, sab, sba, "matrix should be symmetric for %c,%c", a, b)
		}
	}
}

func TestLoadNamedBlosum90(t *testing.T) {
	m, err := LoadNamed("blosum90")
	assert.NoError(t, err)
	score, err := m.Score('W', 'W')
	assert.NoError(t, err)
	assert.Equal(t, 11, score)
}

func TestLoadRejectsMismatchedRowLength(t *testing.T) {
	bad := "  A  B\nA 1\n"
	_, err := Load(strings.NewReader(bad))
	assert.Error(t, err)
}
