package numeric

import (
	"math/big"
	"sync"
)

// maxDecimalExponent bounds decimal exponent magnitude in the reader: an
// exact (#e) literal beyond it is a LimitViolation, and an inexact literal
// whose exponent reaches four times it reads as +-inf or 0. Expt uses its
// own 2^32 exponent bound.
const maxDecimalExponent = 324

// powTenTableSize covers maxDecimalExponent plus headroom for
// intermediate scaling; pow10Big computes larger powers directly.
const powTenTableSize = 340

var (
	powTenOnce  sync.Once
	powTenTable [powTenTableSize + 1]*big.Int
)

// initTables populates the process-wide read-only tables. Callers that
// touch powTenTable or the interned constants call initTables
// (idempotent, sync.Once-guarded) first, so the tables are always ready
// before the printer/reader runs.
func initTables() {
	powTenOnce.Do(func() {
		ten := big.NewInt(10)
		acc := big.NewInt(1)
		for i := 0; i <= powTenTableSize; i++ {
			powTenTable[i] = new(big.Int).Set(acc)
			acc = new(big.Int).Mul(acc, ten)
		}
	})
}

// pow10Big returns 10^e as a *big.Int, using the precomputed table when
// e is in range and computing directly otherwise (algorithmR reaches the
// fallback when a long mantissa offsets a decimal exponent past the table).
func pow10Big(e int) *big.Int {
	initTables()
	if e >= 0 && e <= powTenTableSize {
		return new(big.Int).Set(powTenTable[e])
	}
	if e < 0 {
		panic("numeric: pow10Big called with negative exponent")
	}
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(e)), nil)
}

// radixInfo holds the per-radix limits the reader uses to decide when to
// switch from machine-word accumulation to big.Int accumulation, mirroring
// Gauche's longlimit/longdigs/bigdig tables.
type radixInfo struct {
	longLimit int64 // radix^longDigs, the largest power of radix below 2^62
	longDigs  int   // number of digits that safely accumulate before switching to big
	bigDig    int64 // radix^longDigs, the multiplier used when folding into the big accumulator
}

var radixTable [37]radixInfo

var radixTableOnce sync.Once

func initRadixTable() {
	radixTableOnce.Do(func() {
		const wordBits = 63 // stay one bit inside int64 to keep the multiply-then-compare safe
		for radix := 2; radix <= 36; radix++ {
			digs := 0
			limit := int64(1)
			for {
				next := limit * int64(radix)
				if next < 0 || bitLength(next) >= wordBits {
					break
				}
				limit = next
				digs++
			}
			bigDig := int64(1)
			for i := 0; i < digs; i++ {
				bigDig *= int64(radix)
			}
			radixTable[radix] = radixInfo{longLimit: limit, longDigs: digs, bigDig: bigDig}
		}
	})
}

func bitLength(v int64) int {
	n := 0
	for v > 0 {
		v >>= 1
		n++
	}
	return n
}

func radixLimits(radix int) radixInfo {
	initRadixTable()
	return radixTable[radix]
}
