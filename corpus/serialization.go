// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package corpus

import (
	mus "github.com/mus-format/mus-go"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

// EntryMUS serializes corpus entries in the MUS format. It is used by the
// badger subpackage to store entries as compact binary values.
var EntryMUS mus.Serializer[Entry] = entrySer{}

type entrySer struct{}

func (entrySer) Marshal(e Entry, bs []byte) (n int) {
	n = varint.Int.Marshal(e.Rank, bs)
	n += raw.Float64.Marshal(e.Freq, bs[n:])
	return n
}

func (entrySer) Unmarshal(bs []byte) (e Entry, n int, err error) {
	e.Rank, n, err = varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	e.Freq, n1, err = raw.Float64.Unmarshal(bs[n:])
	n += n1
	return
}

func (entrySer) Size(e Entry) (size int) {
	return varint.Int.Size(e.Rank) + raw.Float64.Size(e.Freq)
}

func (entrySer) Skip(bs []byte) (n int, err error) {
	n, err = varint.Int.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = raw.Float64.Skip(bs[n:])
	n += n1
	return
}

// MarshalEntry serializes an Entry to bytes.
func MarshalEntry(entry Entry) []byte {
	buf := make([]byte, EntryMUS.Size(entry))
	EntryMUS.Marshal(entry, buf)
	return buf
}

// UnmarshalEntry deserializes an Entry from bytes.
func UnmarshalEntry(data []byte) (Entry, error) {
	entry, _, err := EntryMUS.Unmarshal(data)
	return entry, err
}
