package batch

import (
	"encoding/binary"

	"github.com/go-crypt/x/blake2b"
)

// DocumentID is a content-derived identifier for a document.
type DocumentID uint64

// IDFromContent generates a deterministic ID from document text using
// BLAKE2b hashing. Identical content produces identical IDs.
func IDFromContent(text string) DocumentID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return DocumentID(binary.LittleEndian.Uint64(sum))
}
