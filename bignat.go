package exess

import "math/big"

// BigNat is an arbitrary-precision natural number. The algorithm this
// package is modeled on keeps a fixed array of 32-bit limbs sized for
// ~1280 significant bits, the largest precision a double's boundary cases
// ever require (subnormal parsing at exponent -1074 with 17 mantissa
// digits). This rewrite substitutes Go's growable math/big.Int for the
// fixed limb array: the arithmetic is the same, but the capacity ceiling
// disappears along with the manual limb-clamping bookkeeping it exists to
// manage. The method names below match the named operations FloatingDecimal
// and DecimalParse call, so those two files read the same either way.
type BigNat struct {
	v big.Int
}

// NewBigNat returns a BigNat equal to zero.
func NewBigNat() *BigNat {
	return &BigNat{}
}

// SetU32 sets n to v.
func (n *BigNat) SetU32(v uint32) *BigNat {
	n.v.SetUint64(uint64(v))
	return n
}

// SetU64 sets n to v.
func (n *BigNat) SetU64(v uint64) *BigNat {
	n.v.SetUint64(v)
	return n
}

// SetPow10 sets n to 10^e.
func (n *BigNat) SetPow10(e int) *BigNat {
	n.v.Exp(big.NewInt(10), big.NewInt(int64(e)), nil)
	return n
}

// SetDecimalString sets n to the natural number represented by the decimal
// digit string s (which must be non-empty and contain only '0'-'9'),
// returning false if s is not such a string.
func (n *BigNat) SetDecimalString(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	_, ok := n.v.SetString(s, 10)
	return ok
}

// MultiplyU32 multiplies n by v in place and returns n.
func (n *BigNat) MultiplyU32(v uint32) *BigNat {
	n.v.Mul(&n.v, big.NewInt(int64(v)))
	return n
}

// MultiplyU64 multiplies n by v in place and returns n.
func (n *BigNat) MultiplyU64(v uint64) *BigNat {
	vv := new(big.Int).SetUint64(v)
	n.v.Mul(&n.v, vv)
	return n
}

// MultiplyPow10 multiplies n by 10^e in place, as one exact multiplication
// by 10^e computed with math/big's Exp (rather than multiplying by 5^e and
// then shifting left by e bits, which gives the same result).
func (n *BigNat) MultiplyPow10(e int) *BigNat {
	if e == 0 {
		return n
	}
	pow := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(e)), nil)
	n.v.Mul(&n.v, pow)
	return n
}

// ShiftLeft shifts n left by the given number of bits (multiplies by 2^bits).
func (n *BigNat) ShiftLeft(bits uint) *BigNat {
	n.v.Lsh(&n.v, bits)
	return n
}

// AddU32 adds v to n in place.
func (n *BigNat) AddU32(v uint32) *BigNat {
	n.v.Add(&n.v, big.NewInt(int64(v)))
	return n
}

// Add adds other to n in place.
func (n *BigNat) Add(other *BigNat) *BigNat {
	n.v.Add(&n.v, &other.v)
	return n
}

// Subtract subtracts other from n in place. Precondition: n >= other.
func (n *BigNat) Subtract(other *BigNat) *BigNat {
	n.v.Sub(&n.v, &other.v)
	return n
}

// DivMod divides n by other, leaving the remainder in n and returning the
// (single-limb, i.e. fits in uint64) quotient.
func (n *BigNat) DivMod(other *BigNat) uint64 {
	q := new(big.Int)
	r := new(big.Int)
	q.QuoRem(&n.v, &other.v, r)
	n.v.Set(r)
	return q.Uint64()
}

// Compare returns -1, 0, or +1 as n is less than, equal to, or greater than
// other.
func (n *BigNat) Compare(other *BigNat) int {
	return n.v.Cmp(&other.v)
}

// IsZero reports whether n is zero.
func (n *BigNat) IsZero() bool {
	return n.v.Sign() == 0
}

// PlusCompare returns the sign of (a + b) - c without materializing a+b as
// a persistent value (math/big still computes the sum temporarily, but the
// two operands a and b are left untouched; callers rely on plus_compare
// never mutating either addend).
func PlusCompare(a, b, c *BigNat) int {
	sum := new(big.Int).Add(&a.v, &b.v)
	return sum.Cmp(&c.v)
}

// Clone returns a copy of n.
func (n *BigNat) Clone() *BigNat {
	c := &BigNat{}
	c.v.Set(&n.v)
	return c
}

// String returns the decimal digit string of n, with no leading zeros
// (except "0" itself).
func (n *BigNat) String() string {
	return n.v.String()
}
