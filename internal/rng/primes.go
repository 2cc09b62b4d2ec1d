package rng

import "github.com/wirehair-go/wirehair/params"

// NextPrime16 returns the smallest prime >= n, for 0 <= n <= 65521 (the
// largest prime below 2^16). It is the modulus used by the Weyl column
// generators in DeriveRowParams.
func NextPrime16(n uint32) uint32 {
	if n <= 2 {
		return 2
	}
	if n == 3 {
		return 3
	}

	for candidate := n; ; candidate++ {
		if isPrime16(candidate) {
			return candidate
		}
	}
}

// isPrime16 tests primality by trial division against the small primes
// {2,3,5,7} and the table of primes in [11,256), which together cover
// every divisor up to sqrt(65521) < 256. params.SieveTable lets the caller
// cheaply reject multiples of 2*3*5*7 before falling through to the table
// (a 210-wheel), and params.SquareRootTable gives the trial-division bound
// without a floating-point sqrt.
func isPrime16(n uint32) bool {
	if n < 2 {
		return false
	}
	for _, p := range [...]uint32{2, 3, 5, 7} {
		if n == p {
			return true
		}
		if n%p == 0 {
			return false
		}
	}
	if params.SieveTable[n%210] == 0 {
		return false
	}

	bound := sqrtBound(n)
	for _, p := range params.PrimesUnder256From11 {
		if p > bound {
			break
		}
		if n%p == 0 {
			return n == p
		}
	}
	return true
}

// sqrtBound returns an integer upper bound on sqrt(n) using
// params.SquareRootTable as a coarse table lookup on the high byte of n,
// then stepped up one at a time until its square reaches n, so it never
// undershoots.
func sqrtBound(n uint32) uint32 {
	hi := n >> 8
	if hi > 255 {
		hi = 255
	}
	guess := uint32(params.SquareRootTable[hi])*16 + 16
	if guess == 0 {
		guess = 1
	}
	for guess*guess < n {
		guess++
	}
	return guess
}
