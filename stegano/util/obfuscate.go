package util
import (
	"unicode/utf16"
)

const (
	fnvOffset = uint32(2166136261)
	fnvPrime = uint32(16777619)

	lcgMultiplier = uint32(1664525)
	lcgIncrement = uint32(1013904223)
)

/*
 * FNV-1a style hash over the UTF-16 code units of the key.
 */
func Seed( key string ) uint32 {
	hash := fnvOffset
	for _, code := range utf16.Encode( []rune(key) ) {
		hash ^= uint32(code)
		hash *= fnvPrime
	}
	return hash
}

/*
 * XORs every bit with the low bit of an LCG advanced once per bit.
 * Applying it twice with the same seed gives back the input.
 * The input slice is left untouched.
 */
func Mask( bits []byte, seed uint32 ) []byte {
	out := make( []byte, len(bits) )
	for i, b := range bits {
		seed = seed * lcgMultiplier + lcgIncrement
		out[i] = ( b & 1 ) ^ byte( seed & 1 )
	}
	return out
}

// empty key means no obfuscation at all.
func Obfuscate( bits []byte, key string ) []byte {
	if key == "" {
		return bits
	}
	return Mask( bits, Seed( key ) )
}
