// Package params defines the call parameters of every API operation. Each
// operation has one struct; Pairs validates required fields and emits the
// set fields as ordered key/value pairs for query-string encoding. Fields
// that travel in the request body (presentation documents, track files,
// config XML) are never emitted as pairs.
package params

import (
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/meetkit/bbbclient/internal/common/apperrors"
	"github.com/meetkit/bbbclient/pkg/bbb/wire"
)

// ErrValidation is the root error for missing or invalid required
// parameters. It is returned before any network I/O happens.
var ErrValidation = apperrors.New("invalid call parameters")

var validate = validator.New()

// Encoder is implemented by every parameter struct.
type Encoder interface {
	// Pairs returns the set fields in wire order, or ErrValidation when a
	// required field is absent.
	Pairs() ([]wire.Pair, error)
}

// Bool returns a pointer to v, for setting optional boolean parameters.
func Bool(v bool) *bool {
	return &v
}

func check(p any) error {
	if err := validate.Struct(p); err != nil {
		return ErrValidation.MsgErr("missing or invalid required parameter", err)
	}
	return nil
}

// pairList accumulates pairs with presence semantics: empty strings, nil
// bools, zero ints, and empty lists are unset and omitted.
type pairList struct {
	pairs []wire.Pair
}

func (l *pairList) add(key, value string) {
	if value == "" {
		return
	}
	l.pairs = append(l.pairs, wire.Pair{Key: key, Value: value})
}

func (l *pairList) addBool(key string, v *bool) {
	if v == nil {
		return
	}
	l.pairs = append(l.pairs, wire.Pair{Key: key, Value: strconv.FormatBool(*v)})
}

// addAlwaysBool emits the literal regardless of value, for required boolean
// parameters where false is meaningful.
func (l *pairList) addAlwaysBool(key string, v bool) {
	l.pairs = append(l.pairs, wire.Pair{Key: key, Value: strconv.FormatBool(v)})
}

func (l *pairList) addInt(key string, v int) {
	if v == 0 {
		return
	}
	l.pairs = append(l.pairs, wire.Pair{Key: key, Value: strconv.Itoa(v)})
}

func (l *pairList) addInt64(key string, v int64) {
	if v == 0 {
		return
	}
	l.pairs = append(l.pairs, wire.Pair{Key: key, Value: strconv.FormatInt(v, 10)})
}

// addList joins values with ',' under a single key, the convention the API
// uses for ID filters.
func (l *pairList) addList(key string, vs []string) {
	if len(vs) == 0 {
		return
	}
	l.add(key, strings.Join(vs, ","))
}

// addMeta emits one meta_<key> pair per entry in sorted key order so the
// encoding, and with it the checksum, is deterministic.
func (l *pairList) addMeta(meta map[string]string) {
	if len(meta) == 0 {
		return
	}
	keys := make([]string, 0, len(meta))
	for k := range meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		l.pairs = append(l.pairs, wire.Pair{Key: "meta_" + k, Value: meta[k]})
	}
}
