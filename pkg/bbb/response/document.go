// Package response decodes API response bodies. Bodies are parsed into a
// generic document tree (XML for most operations, JSON for the text-track
// operations) and wrapped in per-operation types that expose the success
// flag, error classification, and typed field accessors.
package response

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/meetkit/bbbclient/internal/common/apperrors"
)

// ErrParsing is the root error for malformed response bodies. The error
// message carries a truncated copy of the offending body for diagnostics.
var ErrParsing = apperrors.New("unable to parse server response")

// Node is one element of a parsed XML body.
type Node struct {
	Name     string
	Attr     map[string]string
	Children []*Node
	Text     string
}

func (n *Node) find(name string) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

func (n *Node) text() string {
	return strings.TrimSpace(n.Text)
}

// Document is a queryable parsed response body. Paths are dot-separated
// field names relative to the top-level response element; a numeric segment
// indexes repeated elements.
type Document struct {
	raw    []byte
	root   *Node
	json   gjson.Result
	isJSON bool
}

// DecodeXML parses body as XML. A parse failure returns an error derived
// from ErrParsing; the raw body is never partially exposed as a document.
func DecodeXML(body []byte) (*Document, error) {
	root, err := parseXML(body)
	if err != nil {
		return nil, ErrParsing.MsgErr(fmt.Sprintf("malformed XML response: %s", truncate(body, 200)), err)
	}
	return &Document{raw: body, root: root}, nil
}

// DecodeJSON parses body as JSON. The API nests JSON payloads under a
// top-level "response" object; paths are resolved relative to it so XML and
// JSON documents share the same accessor surface.
func DecodeJSON(body []byte) (*Document, error) {
	if !gjson.ValidBytes(body) {
		return nil, ErrParsing.Msg(fmt.Sprintf("malformed JSON response: %s", truncate(body, 200)))
	}
	r := gjson.ParseBytes(body)
	if inner := r.Get("response"); inner.Exists() {
		r = inner
	}
	return &Document{raw: body, json: r, isJSON: true}, nil
}

// Raw returns the undecoded response body.
func (d *Document) Raw() []byte {
	return d.raw
}

// Get returns the value at path, or a non-present Value when the field is
// absent.
func (d *Document) Get(path string) Value {
	if d.isJSON {
		r := d.json.Get(path)
		if !r.Exists() {
			return Value{}
		}
		return Value{present: true, s: r.String()}
	}
	nodes := d.walk(path)
	if len(nodes) == 0 {
		return Value{}
	}
	return Value{present: true, s: nodes[0].text()}
}

// All returns one sub-document per element matching path. It is how list
// responses (meetings, recordings, tracks, hooks) are iterated.
func (d *Document) All(path string) []*Document {
	var out []*Document
	if d.isJSON {
		for _, r := range d.json.Get(path).Array() {
			out = append(out, &Document{json: r, isJSON: true})
		}
		return out
	}
	for _, n := range d.walk(path) {
		out = append(out, &Document{root: n})
	}
	return out
}

func (d *Document) walk(path string) []*Node {
	if d.root == nil {
		return nil
	}
	nodes := []*Node{d.root}
	for _, seg := range strings.Split(path, ".") {
		if seg == "" {
			continue
		}
		if idx, err := strconv.Atoi(seg); err == nil {
			if idx < 0 || idx >= len(nodes) {
				return nil
			}
			nodes = nodes[idx : idx+1]
			continue
		}
		var next []*Node
		for _, n := range nodes {
			next = append(next, n.find(seg)...)
		}
		if len(next) == 0 {
			return nil
		}
		nodes = next
	}
	return nodes
}

func parseXML(body []byte) (*Node, error) {
	dec := xml.NewDecoder(bytes.NewReader(body))
	var stack []*Node
	var root *Node
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{Name: t.Name.Local}
			for _, a := range t.Attr {
				if n.Attr == nil {
					n.Attr = make(map[string]string)
				}
				n.Attr[a.Name.Local] = a.Value
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("multiple root elements")
				}
				root = n
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			}
			stack = append(stack, n)
		case xml.EndElement:
			if len(stack) == 0 {
				return nil, fmt.Errorf("unbalanced end element </%s>", t.Name.Local)
			}
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].Text += string(t)
			}
		}
	}
	if root == nil {
		return nil, fmt.Errorf("empty document")
	}
	if len(stack) != 0 {
		return nil, fmt.Errorf("unexpected end of document inside <%s>", stack[len(stack)-1].Name)
	}
	return root, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}

// Value is one field pulled out of a document. Accessors take a default that
// is returned when the field is absent or not coercible; absence is never an
// error.
type Value struct {
	present bool
	s       string
}

// Exists reports whether the field was present in the response.
func (v Value) Exists() bool {
	return v.present
}

// String returns the field as a string, or def when absent.
func (v Value) String(def string) string {
	if !v.present {
		return def
	}
	return v.s
}

// Bool returns the field as a bool. The API emits literal "true"/"false";
// matching is case-insensitive.
func (v Value) Bool(def bool) bool {
	if !v.present {
		return def
	}
	b, err := strconv.ParseBool(strings.ToLower(v.s))
	if err != nil {
		return def
	}
	return b
}

// Int returns the field as an int, or def when absent or non-numeric.
func (v Value) Int(def int) int {
	return int(v.Int64(int64(def)))
}

// Int64 returns the field as an int64, or def when absent or non-numeric.
func (v Value) Int64(def int64) int64 {
	if !v.present {
		return def
	}
	n, err := strconv.ParseInt(v.s, 10, 64)
	if err != nil {
		return def
	}
	return n
}

// Time interprets the field as epoch milliseconds, the representation the
// API uses for createTime/startTime/endTime fields.
func (v Value) Time(def time.Time) time.Time {
	if !v.present {
		return def
	}
	ms, err := strconv.ParseInt(v.s, 10, 64)
	if err != nil {
		return def
	}
	return time.UnixMilli(ms).UTC()
}
