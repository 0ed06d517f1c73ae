package value

import (
	"fmt"

	"github.com/leengari/minisql/internal/domain/errors"
)

// Kind is the type tag of a Value and of a column
type Kind uint8

const (
	KindInteger Kind = iota + 1
	KindReal
	KindText
	KindBoolean
)

// String returns the type name used by CREATE (int, double, string, bool)
func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "int"
	case KindReal:
		return "double"
	case KindText:
		return "string"
	case KindBoolean:
		return "bool"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// ParseKind maps a CREATE type token to its Kind
func ParseKind(name string) (Kind, error) {
	switch name {
	case "int":
		return KindInteger, nil
	case "double":
		return KindReal, nil
	case "string":
		return KindText, nil
	case "bool":
		return KindBoolean, nil
	default:
		return 0, errors.NewMalformed("Invalid column type '%s'", name)
	}
}
