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


// Package corpus provides reference word-frequency corpora used to bias
// keyword scores toward rarer, more informative words.
//
// A corpus maps a word to its frequency rank and raw occurrence count in a
// large reference body of text (for example the BYU English corpus).
// Corpora can be loaded from JSON or delimited files, or served from a
// persistent BadgerDB store (see the badger subpackage).
package corpus
