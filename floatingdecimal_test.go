package exess

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecomposeFloat64Special(t *testing.T) {
	require.Equal(t, FDNaN, DecomposeFloat64(math.NaN()).Kind)
	require.Equal(t, FDPosInf, DecomposeFloat64(math.Inf(1)).Kind)
	require.Equal(t, FDNegInf, DecomposeFloat64(math.Inf(-1)).Kind)
	require.Equal(t, FDPosZero, DecomposeFloat64(0).Kind)
	require.Equal(t, FDNegZero, DecomposeFloat64(math.Copysign(0, -1)).Kind)
}

func TestDecomposeFloat64Digits(t *testing.T) {
	fd := DecomposeFloat64(4.2e16)
	require.Equal(t, FDPositive, fd.Kind)
	require.Equal(t, uint8(2), fd.NDigits)
	require.Equal(t, "42", string(fd.Digits[:fd.NDigits]))
	require.Equal(t, int32(16), fd.Exponent)

	fd2 := DecomposeFloat64(-0.1)
	require.Equal(t, FDNegative, fd2.Kind)
	require.Equal(t, "1", string(fd2.Digits[:fd2.NDigits]))
	require.Equal(t, int32(-1), fd2.Exponent)

	fd3 := DecomposeFloat64(3)
	require.Equal(t, "3", string(fd3.Digits[:fd3.NDigits]))
	require.Equal(t, int32(0), fd3.Exponent)
}

func TestDecomposeFloat32(t *testing.T) {
	fd := DecomposeFloat32(1.5)
	require.Equal(t, FDPositive, fd.Kind)
	require.Equal(t, "15", string(fd.Digits[:fd.NDigits]))
	require.Equal(t, int32(0), fd.Exponent)
}
