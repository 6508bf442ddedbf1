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


package rake

import "errors"

var (
	// ErrStopListRequired is returned when a stop list is not provided.
	ErrStopListRequired = errors.New("stop list required")

	// ErrInvalidLength is returned when a requested result length is not positive.
	ErrInvalidLength = errors.New("length must be greater than 0")

	// ErrInvalidMinWordLength is returned when the minimum word length is not positive.
	ErrInvalidMinWordLength = errors.New("minimum word length must be greater than 0")

	// ErrInvalidMaxPhraseWords is returned when the phrase word limit is negative.
	ErrInvalidMaxPhraseWords = errors.New("maximum phrase words cannot be negative")
)
