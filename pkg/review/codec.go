// Copyright 2025 walteh LLC
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

package review

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// ErrNotArray reports a review file whose top-level value is not a JSON
// array. Such files are rejected wholesale, never partially processed.
var ErrNotArray = errors.Base("top-level value is not an array of reviews")

// Decode parses a review file's bytes into its top-level array.
// Numbers are kept as json.Number so untouched fields re-encode
// exactly as they were read.
func Decode(data []byte) ([]any, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var doc any
	if err := decoder.Decode(&doc); err != nil {
		return nil, errors.Errorf("parsing JSON: %w", err)
	}

	// A review file is exactly one JSON document. Anything left in the
	// stream makes the whole file malformed, or the rewrite would
	// silently drop the trailing bytes.
	if _, err := decoder.Token(); err != io.EOF {
		return nil, errors.New("parsing JSON: unexpected data after top-level value")
	}

	elements, ok := doc.([]any)
	if !ok {
		return nil, errors.WithStack(ErrNotArray)
	}
	return elements, nil
}

// Encode renders the augmented array back to pretty-printed JSON.
// HTML escaping is off so non-ASCII review text stays literal instead
// of turning into \uXXXX escapes.
func Encode(elements []any, indent int) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", strings.Repeat(" ", indent))

	if err := encoder.Encode(elements); err != nil {
		return nil, errors.Errorf("encoding JSON: %w", err)
	}
	return buf.Bytes(), nil
}
