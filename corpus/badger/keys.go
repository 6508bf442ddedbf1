package badger

import "strings"

// Key prefix for corpus entries
const entryPrefix = "corent"

// makeEntryKey generates a key for a corpus entry by normalized word.
func makeEntryKey(word string) []byte {
	return []byte(entryPrefix + ":" + strings.ToLower(word))
}
