/*
   Copyright 2025 The kvx Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package rallytobulk implements the RallyToBulk Transform variant: Rally
// benchmark JSON in, Elasticsearch bulk NDJSON item pairs out, one hop, no
// intermediate representation.
package rallytobulk

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"kvx.dev/kvx/apis/kvxerrors"
	"kvx.dev/kvx/apis/kvxpage"
	"kvx.dev/kvx/apis/kvxtransform"
)

// metadataFields are the Rally API wrapper fields stripped at the top
// level only; nested occurrences (e.g. Project._ref) are left alone.
var metadataFields = []string{
	"_rallyAPIMajor",
	"_rallyAPIMinor",
	"_ref",
	"_refObjectUUID",
	"_objectVersion",
	"_CreatedAt",
}

// Transform maps Rally JSON lines to action-line/source-line item pairs.
type Transform struct{}

var _ kvxtransform.Transform = Transform{}

// New constructs a RallyToBulk transform.
func New() Transform { return Transform{} }

// Kind returns kvxtransform.KindRallyToBulk.
func (Transform) Kind() kvxtransform.Kind { return kvxtransform.KindRallyToBulk }

// Apply splits the page on "\n", skipping empty lines, and converts each
// non-empty line to one owned item of the form "<action-line>\n<source-line>".
func (Transform) Apply(page kvxpage.Page) ([]kvxpage.Item, error) {
	lines := bytes.Split(page, []byte("\n"))
	items := make([]kvxpage.Item, 0, len(lines))

	for i, line := range lines {
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		if !gjson.ValidBytes(line) {
			return nil, kvxerrors.TransformParseError(fmt.Sprintf("invalid JSON at line %d", i+1), nil)
		}

		item, err := convertLine(line)
		if err != nil {
			return nil, kvxerrors.TransformParseError(fmt.Sprintf("convert line %d", i+1), err)
		}
		items = append(items, kvxpage.OwnedItem(item))
	}

	return items, nil
}

func convertLine(line []byte) (string, error) {
	doc := gjson.ParseBytes(line)

	id, hasID := documentID(doc)

	cleaned := line
	var err error
	for _, field := range metadataFields {
		cleaned, err = sjson.DeleteBytes(cleaned, field)
		if err != nil {
			return "", err
		}
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, cleaned); err != nil {
		return "", err
	}

	action := actionLine(id, hasID)
	return action + "\n" + compact.String(), nil
}

// documentID extracts Rally's ObjectID and stringifies it: numbers keep
// their raw textual form, strings are used unescaped, everything else
// falls back to its JSON textual form.
func documentID(doc gjson.Result) (string, bool) {
	oid := doc.Get("ObjectID")
	if !oid.Exists() {
		return "", false
	}
	if oid.Type == gjson.String {
		return oid.String(), true
	}
	return oid.Raw, true
}

func actionLine(id string, hasID bool) string {
	if !hasID {
		return `{"index":{}}`
	}
	return fmt.Sprintf(`{"index":{"_id":"%s"}}`, escapeJSONString(id))
}

// escapeJSONString escapes a string for safe embedding inside a JSON
// string literal: quote, backslash, the common whitespace escapes, and
// control characters below 0x20 as \uXXXX.
func escapeJSONString(s string) string {
	needsEscape := false
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b == '"' || b == '\\' || b < 0x20 {
			needsEscape = true
			break
		}
	}
	if !needsEscape {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 8)
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u%04x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}
