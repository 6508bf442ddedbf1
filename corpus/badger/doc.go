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


// Package badger provides a persistent corpus store backed by BadgerDB.
//
// Reference corpora can run to hundreds of thousands of rows; the store
// keeps them on disk as MUS-encoded values so an extractor can be built
// without holding the full corpus in memory. The store implements
// corpus.Corpus and is read-only on the extraction path.
package badger
