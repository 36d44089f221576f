package seqtrie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequencesLexicalOrder(t *testing.T) {
	s := NewStore()
	insertAll(t, s, "21", "1", "012", "00")

	want := []string{"0", "00", "01", "012", "1", "2", "21"}
	assert.Equal(t, want, s.Sequences())
}

func TestSequencesEmptyStore(t *testing.T) {
	s := NewStore()
	assert.Empty(t, s.Sequences())
}

func TestWalkStopsWhenVisitorReturnsFalse(t *testing.T) {
	s := NewStore()
	insertAll(t, s, "012", "2")

	var visited []string
	s.Walk(func(sequence string, _ ClassID, _ string) bool {
		visited = append(visited, sequence)
		return len(visited) < 2
	})
	assert.Equal(t, []string{"0", "01"}, visited)
}

func TestClassesOrderedByID(t *testing.T) {
	s := NewStore()
	insertAll(t, s, "0", "1", "2")

	_, err := s.SetName("2", "C")
	require.NoError(t, err)
	_, err = s.SetName("0", "A")
	require.NoError(t, err)

	classes := s.Classes()
	require.Len(t, classes, 2)
	assert.Equal(t, ClassID(1), classes[0].ID)
	assert.Equal(t, "C", classes[0].Name)
	assert.Equal(t, []string{"2"}, classes[0].Members)
	assert.Equal(t, ClassID(2), classes[1].ID)
	assert.Equal(t, "A", classes[1].Name)
	assert.Equal(t, []string{"0"}, classes[1].Members)
}

func TestClassesStringerForDebug(t *testing.T) {
	s := NewStore()
	insertAll(t, s, "0", "1")

	_, err := s.SetName("0", "A")
	require.NoError(t, err)
	merged, err := s.Equivalent("0", "1")
	require.NoError(t, err)
	require.True(t, merged)

	assert.Equal(t, "2:A[0,1]", classesStringer(s.Classes(), " "))

	s2 := NewStore()
	insertAll(t, s2, "0", "1")
	_, err = s2.Equivalent("0", "1")
	require.NoError(t, err)
	assert.Equal(t, "1:<unnamed>[0,1]", classesStringer(s2.Classes(), " "))
}
