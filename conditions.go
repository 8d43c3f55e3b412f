package mswallet

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/btcsuite/btcutil/bech32"
	"github.com/iov-one/mswallet/errors"
)

// AddressLength is the size of every address. Stored keys depend on it, so
// it must not change once a store holds data.
var AddressLength = 20

// condPattern matches "ext/type/data". The data part is binary and may hold
// newlines, hence the s flag.
var condPattern = regexp.MustCompile(`(?s)^([a-zA-Z0-9_\-]{3,8})/([a-zA-Z0-9_\-]{3,8})/(.+)$`)

// Condition names something that can authorize an action: a signature, a
// wallet or a contract. Its layout is "ext/type/data".
type Condition []byte

// NewCondition joins the three parts of a condition.
func NewCondition(ext, typ string, data []byte) Condition {
	c := make(Condition, 0, len(ext)+len(typ)+len(data)+2)
	c = append(c, ext...)
	c = append(c, '/')
	c = append(c, typ...)
	c = append(c, '/')
	return append(c, data...)
}

// Parse splits the condition into extension, type and data.
func (c Condition) Parse() (ext, typ string, data []byte, err error) {
	m := condPattern.FindSubmatch(c)
	if m == nil {
		return "", "", nil, errors.Wrapf(errors.ErrInput, "malformed condition %X", []byte(c))
	}
	return string(m[1]), string(m[2]), m[3], nil
}

// Address is the digest of the condition.
func (c Condition) Address() Address {
	return NewAddress(c)
}

func (c Condition) Equals(other Condition) bool {
	return bytes.Equal(c, other)
}

// String prints extension and type as text and the data as hex.
func (c Condition) String() string {
	ext, typ, data, err := c.Parse()
	if err != nil {
		return fmt.Sprintf("Invalid Condition: %X", []byte(c))
	}
	return fmt.Sprintf("%s/%s/%X", ext, typ, data)
}

func (c Condition) Validate() error {
	if !condPattern.Match(c) {
		return errors.Wrapf(errors.ErrInput, "malformed condition %X", []byte(c))
	}
	return nil
}

// parseCondition reads the String form back. The empty string gives a nil
// condition.
func parseCondition(s string) (Condition, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return nil, errors.Wrapf(errors.ErrInput, "want ext/type/data, got %q", s)
	}
	data, err := hex.DecodeString(parts[2])
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "condition data: %s", err)
	}
	c := NewCondition(parts[0], parts[1], data)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Address identifies owners, wallets and contracts. It is the truncated
// sha256 of a Condition and is AddressLength bytes long.
type Address []byte

// NewAddress hashes data into an address. Nil data gives a nil address.
func NewAddress(data []byte) Address {
	if data == nil {
		return nil
	}
	sum := sha256.Sum256(data)
	return Address(sum[:AddressLength])
}

func (a Address) Equals(other Address) bool {
	return bytes.Equal(a, other)
}

func (a Address) Validate() error {
	if len(a) != AddressLength {
		return errors.Wrapf(errors.ErrInput, "address must be %d bytes, got %d", AddressLength, len(a))
	}
	return nil
}

// String is upper case hex, or "(nil)" for an empty address.
func (a Address) String() string {
	if len(a) == 0 {
		return "(nil)"
	}
	return strings.ToUpper(hex.EncodeToString(a))
}

// MarshalJSON writes the address as upper case hex instead of base64.
func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(strings.ToUpper(hex.EncodeToString(a)))
}

// UnmarshalJSON accepts every form ParseAddress does.
func (a *Address) UnmarshalJSON(raw []byte) error {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	addr, err := ParseAddress(s)
	if err != nil {
		return err
	}
	*a = addr
	return nil
}

// Bech32 encodes the address with the given human readable part.
func (a Address) Bech32(hrp string) (string, error) {
	bits, err := bech32.ConvertBits(a, 8, 5, true)
	if err != nil {
		return "", errors.Wrapf(errors.ErrInput, "bech32 bits: %s", err)
	}
	s, err := bech32.Encode(hrp, bits)
	if err != nil {
		return "", errors.Wrapf(errors.ErrInput, "bech32: %s", err)
	}
	return s, nil
}

// ParseAddress reads an address written as plain hex, as "cond:ext/type/HEX"
// or as "bech32:<any hrp>1...". An empty value gives a nil address.
func ParseAddress(s string) (Address, error) {
	format, val := "hex", s
	if i := strings.IndexByte(s, ':'); i >= 0 {
		format, val = s[:i], s[i+1:]
	}
	if val == "" {
		return nil, nil
	}

	var addr Address
	switch format {
	case "hex":
		raw, err := hex.DecodeString(val)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrInput, "hex address: %s", err)
		}
		addr = raw
	case "cond":
		c, err := parseCondition(val)
		if err != nil {
			return nil, err
		}
		return c.Address(), nil
	case "bech32":
		_, bits, err := bech32.Decode(val)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrInput, "bech32 address: %s", err)
		}
		raw, err := bech32.ConvertBits(bits, 5, 8, false)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrInput, "bech32 bits: %s", err)
		}
		addr = raw
	default:
		return nil, errors.Wrapf(errors.ErrType, "unknown address format %q", format)
	}
	if err := addr.Validate(); err != nil {
		return nil, err
	}
	return addr, nil
}
