package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntrySerialization(t *testing.T) {
	entries := []Entry{
		{Rank: 1, Freq: 22038615},
		{Rank: 4855, Freq: 128000.5},
		{},
	}

	for _, entry := range entries {
		data := MarshalEntry(entry)
		require.Len(t, data, EntryMUS.Size(entry))

		got, err := UnmarshalEntry(data)
		require.NoError(t, err)
		assert.Equal(t, entry, got)
	}
}

func TestUnmarshalEntry_Truncated(t *testing.T) {
	data := MarshalEntry(Entry{Rank: 4855, Freq: 128000})
	_, err := UnmarshalEntry(data[:1])
	assert.Error(t, err)
}
