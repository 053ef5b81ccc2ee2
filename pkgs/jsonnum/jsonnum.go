// Package jsonnum implements component E: for every JSON numeric
// literal it probes every integer width and the three floating-point
// widths the target platform exposes, recording which succeeded.
//
// The literal is parsed exactly once with the widest available integer
// and floating parsers, then projected into each named width with an
// explicit range check (spec §9 "Numeric conversion portability") —
// no width-specific C type is assumed anywhere in this package.
package jsonnum

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// IntFit is the outcome of projecting a literal onto one integer width.
type IntFit struct {
	Fits  bool
	Value int64 // meaningful only when Fits; set for signed widths only.
	// Unsigned widths carry their value in UValue and leave Value zero.
	UValue uint64
}

// FloatFit is the outcome of projecting a literal onto one float width.
type FloatFit struct {
	Fits       bool
	Value      float64
	IsIntegral bool
}

// Record is the NumericRecord of spec §3. Widths are named after their
// C aliases on an LP64 platform (the platform-dependent mapping used
// throughout this package, documented in DESIGN.md): int==int32,
// long==int64, long long==int64, size_t/uintmax_t==uint64, etc.
type Record struct {
	AsStr       string
	IsNegative  bool
	IsFloating  bool
	IsENotation bool
	Converted   bool

	Int8   IntFit
	Uint8  IntFit
	Int16  IntFit
	Uint16 IntFit
	Int32  IntFit
	Uint32 IntFit
	Int64  IntFit
	Uint64 IntFit

	// C-alias widths, LP64-mapped (see DESIGN.md):
	Int               IntFit // int32
	Unsigned          IntFit // uint32
	Long              IntFit // int64
	UnsignedLong      IntFit // uint64
	LongLong          IntFit // int64
	UnsignedLongLong  IntFit // uint64
	SizeT             IntFit // uint64
	SSizeT            IntFit // int64
	OffT              IntFit // int64
	IntmaxT           IntFit // int64
	UintmaxT          IntFit // uint64

	Float32  FloatFit
	Float64  FloatFit
	Extended FloatFit // long double; modeled as float64 on platforms
	// without a wider native type, per DESIGN.md.
}

// Decode classifies and converts a JSON number lexeme (as delimited by
// pkgs/jsonlex, undecoded) into a Record.
func Decode(lexeme string) Record {
	trimmed := strings.TrimSpace(lexeme)
	rec := Record{AsStr: trimmed}

	rec.IsNegative = strings.HasPrefix(trimmed, "-")
	rec.IsFloating = strings.ContainsAny(trimmed, ".")
	rec.IsENotation = strings.ContainsAny(trimmed, "eE")

	if !rec.IsFloating && !rec.IsENotation {
		if decodeInteger(trimmed, &rec) {
			rec.Converted = true
		}
	}
	// Even integer-shaped literals are also probed as floats: e.g. "5"
	// fits float32/float64/extended too, and e-notation literals like
	// "1e3" are converted only here, even though they look whole.
	if decodeFloat(trimmed, &rec) {
		rec.Converted = true
	}

	return rec
}

func decodeInteger(s string, rec *Record) bool {
	// Widest-integer parse: one arbitrary-precision parse covers every
	// signed and unsigned range, negatives included.
	var bi big.Int
	if _, ok := bi.SetString(s, 10); !ok {
		return false
	}

	fitsSigned := func(bits int) (int64, bool) {
		lo := new(big.Int).Lsh(big.NewInt(-1), uint(bits-1))
		hi := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(bits-1)), big.NewInt(1))
		if bi.Cmp(lo) < 0 || bi.Cmp(hi) > 0 {
			return 0, false
		}
		return bi.Int64(), true
	}
	fitsUnsigned := func(bits int) (uint64, bool) {
		if bi.Sign() < 0 {
			return 0, false
		}
		hi := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(bits)), big.NewInt(1))
		if bi.Cmp(hi) > 0 {
			return 0, false
		}
		return bi.Uint64(), true
	}

	setSigned := func(dst *IntFit, bits int) {
		if v, ok := fitsSigned(bits); ok {
			dst.Fits, dst.Value = true, v
		}
	}
	setUnsigned := func(dst *IntFit, bits int) {
		if v, ok := fitsUnsigned(bits); ok {
			dst.Fits, dst.UValue = true, v
		}
	}

	setSigned(&rec.Int8, 8)
	setUnsigned(&rec.Uint8, 8)
	setSigned(&rec.Int16, 16)
	setUnsigned(&rec.Uint16, 16)
	setSigned(&rec.Int32, 32)
	setUnsigned(&rec.Uint32, 32)
	setSigned(&rec.Int64, 64)
	setUnsigned(&rec.Uint64, 64)

	// LP64 C-alias mapping (DESIGN.md): int/unsigned are 32-bit; long,
	// long long, ssize_t, off_t, intmax_t are 64-bit signed; unsigned
	// long, unsigned long long, size_t, uintmax_t are 64-bit unsigned.
	rec.Int = rec.Int32
	rec.Unsigned = rec.Uint32
	rec.Long = rec.Int64
	rec.UnsignedLong = rec.Uint64
	rec.LongLong = rec.Int64
	rec.UnsignedLongLong = rec.Uint64
	rec.SizeT = rec.Uint64
	rec.SSizeT = rec.Int64
	rec.OffT = rec.Int64
	rec.IntmaxT = rec.Int64
	rec.UintmaxT = rec.Uint64

	return true
}

func decodeFloat(s string, rec *Record) bool {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return false
	}

	rec.Float64 = FloatFit{Fits: true, Value: f, IsIntegral: isIntegral(f)}

	f32 := float32(f)
	if !math.IsInf(float64(f32), 0) || math.IsInf(f, 0) {
		rec.Float32 = FloatFit{Fits: true, Value: float64(f32), IsIntegral: isIntegral(float64(f32))}
	}

	// No wider native float type is assumed portable (spec §9); model
	// "extended" as float64's own range, matching platforms where long
	// double is not wider than double.
	rec.Extended = rec.Float64

	return true
}

func isIntegral(f float64) bool {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	return f == math.Trunc(f)
}
