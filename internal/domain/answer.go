package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// AnswerKind discriminates the closed set of answer value shapes.
type AnswerKind int

const (
	KindAbsent AnswerKind = iota
	KindString
	KindNumber
	KindBool
	KindList
)

// AnswerValue is a closed sum over the shapes an interview answer can
// take: a string, a number, a bool, or a list of strings. The zero value
// is the absent answer, which never satisfies any condition.
type AnswerValue struct {
	kind AnswerKind
	str  string
	num  float64
	b    bool
	list []string
}

// StringAnswer wraps a free-text or choice answer.
func StringAnswer(s string) AnswerValue { return AnswerValue{kind: KindString, str: s} }

// NumberAnswer wraps a numeric or measurement answer.
func NumberAnswer(n float64) AnswerValue { return AnswerValue{kind: KindNumber, num: n} }

// BoolAnswer wraps a yes/no answer.
func BoolAnswer(b bool) AnswerValue { return AnswerValue{kind: KindBool, b: b} }

// ListAnswer wraps a multi-select answer. Items are copied.
func ListAnswer(items ...string) AnswerValue {
	cp := make([]string, len(items))
	copy(cp, items)
	return AnswerValue{kind: KindList, list: cp}
}

// Kind returns the shape discriminator.
func (v AnswerValue) Kind() AnswerKind { return v.kind }

// IsZero reports whether the value is the absent answer.
func (v AnswerValue) IsZero() bool { return v.kind == KindAbsent }

// Text renders the canonical string form: numbers in minimal decimal
// notation, bools as "true"/"false", lists joined with commas.
func (v AnswerValue) Text() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindList:
		return strings.Join(v.list, ",")
	default:
		return ""
	}
}

// Number coerces to a float64. Strings parse through strconv; bools and
// lists are never numeric.
func (v AnswerValue) Number() (float64, bool) {
	switch v.kind {
	case KindNumber:
		return v.num, true
	case KindString:
		n, err := strconv.ParseFloat(strings.TrimSpace(v.str), 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// List returns a copy of the items for list values.
func (v AnswerValue) List() ([]string, bool) {
	if v.kind != KindList {
		return nil, false
	}
	items := make([]string, len(v.list))
	copy(items, v.list)
	return items, true
}

// Bool returns the underlying bool for bool values.
func (v AnswerValue) Bool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// Equal reports exact equality: kinds must match and lists compare
// element-wise in order.
func (v AnswerValue) Equal(other AnswerValue) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == other.str
	case KindNumber:
		return v.num == other.num
	case KindBool:
		return v.b == other.b
	case KindList:
		if len(v.list) != len(other.list) {
			return false
		}
		for i := range v.list {
			if v.list[i] != other.list[i] {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// MarshalJSON encodes the native JSON shape: scalars as scalars, lists as
// string arrays, absent as null.
func (v AnswerValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return json.Marshal(v.str)
	case KindNumber:
		return json.Marshal(v.num)
	case KindBool:
		return json.Marshal(v.b)
	case KindList:
		return json.Marshal(v.list)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts any JSON scalar or an array of scalars. Array
// elements are coerced to their string forms; objects are rejected.
func (v *AnswerValue) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := answerFromJSON(raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func answerFromJSON(raw any) (AnswerValue, error) {
	switch t := raw.(type) {
	case nil:
		return AnswerValue{}, nil
	case string:
		return StringAnswer(t), nil
	case float64:
		return NumberAnswer(t), nil
	case bool:
		return BoolAnswer(t), nil
	case []any:
		items := make([]string, 0, len(t))
		for _, el := range t {
			switch e := el.(type) {
			case string:
				items = append(items, e)
			case float64:
				items = append(items, strconv.FormatFloat(e, 'f', -1, 64))
			case bool:
				items = append(items, strconv.FormatBool(e))
			default:
				return AnswerValue{}, fmt.Errorf("unsupported answer list element %T", el)
			}
		}
		return ListAnswer(items...), nil
	default:
		return AnswerValue{}, fmt.Errorf("unsupported answer value %T", raw)
	}
}

// AnswerMap records answers keyed by question id, preserving submission
// order. Skip-logic evaluation walks prior answers in that order, so the
// outcome is deterministic for a given session history.
type AnswerMap struct {
	order  []string
	values map[string]AnswerValue
}

// NewAnswerMap returns an empty map ready for use.
func NewAnswerMap() *AnswerMap {
	return &AnswerMap{values: make(map[string]AnswerValue)}
}

// Set records the answer for a field. The first submission fixes the
// field's position; resubmissions overwrite in place.
func (m *AnswerMap) Set(field string, v AnswerValue) {
	if m.values == nil {
		m.values = make(map[string]AnswerValue)
	}
	if _, seen := m.values[field]; !seen {
		m.order = append(m.order, field)
	}
	m.values[field] = v
}

// Get fetches the answer for a field. A nil map behaves as empty.
func (m *AnswerMap) Get(field string) (AnswerValue, bool) {
	if m == nil || m.values == nil {
		return AnswerValue{}, false
	}
	v, ok := m.values[field]
	return v, ok
}

// Len returns the number of recorded answers.
func (m *AnswerMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.order)
}

// Fields returns the recorded field names in submission order.
func (m *AnswerMap) Fields() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

type answerEntry struct {
	Field string      `json:"field"`
	Value AnswerValue `json:"value"`
}

// MarshalJSON encodes the map as an ordered entries array.
func (m *AnswerMap) MarshalJSON() ([]byte, error) {
	entries := make([]answerEntry, 0, m.Len())
	if m != nil {
		for _, f := range m.order {
			entries = append(entries, answerEntry{Field: f, Value: m.values[f]})
		}
	}
	return json.Marshal(entries)
}

// UnmarshalJSON restores the map from its entries-array form.
func (m *AnswerMap) UnmarshalJSON(data []byte) error {
	var entries []answerEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	m.order = nil
	m.values = make(map[string]AnswerValue, len(entries))
	for _, e := range entries {
		m.Set(e.Field, e.Value)
	}
	return nil
}
