package value

import (
	"cmp"
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/cespare/xxhash/v2"

	"github.com/leengari/minisql/internal/domain/errors"
)

// Value is a single cell: a closed tagged union over the four column kinds.
// Only the payload field matching kind is meaningful.
type Value struct {
	kind Kind
	i    int64
	f    float64
	s    string
	b    bool
}

func Int(i int64) Value    { return Value{kind: KindInteger, i: i} }
func Real(f float64) Value { return Value{kind: KindReal, f: f} }
func Text(s string) Value  { return Value{kind: KindText, s: s} }
func Bool(b bool) Value    { return Value{kind: KindBoolean, b: b} }
func (v Value) Kind() Kind { return v.kind }

func (v Value) AsInt() int64   { return v.i }
func (v Value) AsText() string { return v.s }

// Parse converts a literal token into a Value of the given kind.
// It never panics; malformed input yields an *errors.InvalidLiteralError.
func Parse(literal string, kind Kind) (Value, error) {
	invalid := &errors.InvalidLiteralError{Literal: literal, Kind: kind.String()}

	switch kind {
	case KindInteger:
		i, err := strconv.ParseInt(literal, 10, 64)
		if err != nil {
			return Value{}, invalid
		}
		return Int(i), nil
	case KindReal:
		f, err := strconv.ParseFloat(literal, 64)
		if err != nil {
			return Value{}, invalid
		}
		return Real(f), nil
	case KindText:
		if strings.ContainsFunc(literal, unicode.IsSpace) {
			return Value{}, invalid
		}
		return Text(literal), nil
	case KindBoolean:
		switch literal {
		case "true", "1":
			return Bool(true), nil
		case "false", "0":
			return Bool(false), nil
		}
		return Value{}, invalid
	default:
		return Value{}, fmt.Errorf("parse %q: unknown kind %v", literal, kind)
	}
}

// Compare orders two values of the same kind (-1, 0, +1).
// Reals follow cmp.Compare: NaN sorts first and equals itself, -0 equals +0.
// Comparing different kinds is an invariant violation and panics.
func (v Value) Compare(other Value) int {
	if v.kind != other.kind {
		panic(fmt.Sprintf("value: compare %v with %v", v.kind, other.kind))
	}
	switch v.kind {
	case KindInteger:
		return cmp.Compare(v.i, other.i)
	case KindReal:
		return cmp.Compare(v.f, other.f)
	case KindText:
		return strings.Compare(v.s, other.s)
	case KindBoolean:
		switch {
		case v.b == other.b:
			return 0
		case !v.b:
			return -1
		default:
			return 1
		}
	}
	return 0
}

func (v Value) Equal(other Value) bool { return v.Compare(other) == 0 }
func (v Value) Less(other Value) bool  { return v.Compare(other) < 0 }

// Hash returns a 64-bit digest consistent with Equal
func (v Value) Hash() uint64 {
	var buf [9]byte
	buf[0] = byte(v.kind)

	switch v.kind {
	case KindInteger:
		binary.LittleEndian.PutUint64(buf[1:], uint64(v.i))
	case KindReal:
		f := v.f
		switch {
		case math.IsNaN(f):
			f = math.NaN()
		case f == 0:
			f = 0
		}
		binary.LittleEndian.PutUint64(buf[1:], math.Float64bits(f))
	case KindText:
		d := xxhash.New()
		_, _ = d.Write(buf[:1])
		_, _ = d.WriteString(v.s)
		return d.Sum64()
	case KindBoolean:
		if v.b {
			buf[1] = 1
		}
		return xxhash.Sum64(buf[:2])
	}
	return xxhash.Sum64(buf[:])
}

// String renders the value the way PRINT and JOIN show it
func (v Value) String() string {
	switch v.kind {
	case KindInteger:
		return strconv.FormatInt(v.i, 10)
	case KindReal:
		return strconv.FormatFloat(v.f, 'g', 6, 64)
	case KindText:
		return v.s
	case KindBoolean:
		return strconv.FormatBool(v.b)
	default:
		return "<invalid>"
	}
}

// Row is one record: one Value per column, positionally aligned with the schema
type Row []Value
