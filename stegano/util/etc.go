package util
import (
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// comparison form of a name: compatibility-normalised, then case-folded.
// Only for matching; never store the result.
func FoldKey( in string ) string {
	return cases.Fold().String( norm.NFKC.String( in ) )
}

// capacity in payload bytes for a carrier with the given number of bit slots.
func CapacityFromBits( bits int ) int {
	c := bits / 8 - len(Terminator)
	if c < 0 {
		return 0
	}
	return c
}
