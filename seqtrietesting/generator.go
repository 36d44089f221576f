package seqtrietesting

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/forestrie/go-merklelog/seqtrie"
)

// RandomSequence returns a uniformly random valid sequence with a length in
// [1, maxLen].
func (c *TestContext) RandomSequence(maxLen int) string {
	length := 1 + c.Rng.Intn(maxLen)
	b := make([]byte, length)
	for i := range b {
		b[i] = byte('0' + c.Rng.Intn(seqtrie.Arity))
	}
	return string(b)
}

// RandomLabel returns a class label that is unique across the whole test
// run, carrying the configured prefix for log readability.
func (c *TestContext) RandomLabel() string {
	return fmt.Sprintf("%s-%s", c.Cfg.TestLabelPrefix, uuid.NewString()[:8])
}

// PopulateStore inserts count random sequences and returns them, duplicates
// included, so callers can replay exactly what was stored.
func (c *TestContext) PopulateStore(store *seqtrie.Store, count int, maxLen int) []string {
	sequences := make([]string, 0, count)
	for i := 0; i < count; i++ {
		sequence := c.RandomSequence(maxLen)
		_, err := store.Insert(sequence)
		require.NoError(c.T, err)
		sequences = append(sequences, sequence)
	}
	return sequences
}

// RequirePrefixClosed asserts that every non-empty prefix of every given
// sequence is contained in the store.
func (c *TestContext) RequirePrefixClosed(store *seqtrie.Store, sequences []string) {
	for _, sequence := range sequences {
		for i := 1; i <= len(sequence); i++ {
			ok, err := store.Contains(sequence[:i])
			require.NoError(c.T, err)
			require.True(c.T, ok, "prefix %q of %q must be contained", sequence[:i], sequence)
		}
	}
}
