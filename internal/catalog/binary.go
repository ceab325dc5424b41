package catalog

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Binary holds varbinary and binary column values such as memory addresses,
// plan handles and security identifiers. Its text form is the T-SQL literal
// notation (0x0A1B...).
type Binary []byte

func (b Binary) String() string {
	return "0x" + strings.ToUpper(hex.EncodeToString(b))
}

func (b Binary) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func (b *Binary) UnmarshalText(text []byte) error {
	s := strings.TrimPrefix(strings.TrimPrefix(string(text), "0x"), "0X")
	raw, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Errorf("decode binary literal: %w", err)
	}
	*b = raw
	return nil
}

// Scan copies the driver supplied bytes, the driver may reuse its buffer
// once the next row is fetched.
func (b *Binary) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*b = nil
	case []byte:
		*b = append(Binary(nil), v...)
	case string:
		*b = Binary(v)
	default:
		return fmt.Errorf("scan %T into Binary: unsupported type", src)
	}
	return nil
}
