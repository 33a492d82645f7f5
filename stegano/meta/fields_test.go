package meta
import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDMS( t *testing.T ) {
	tests := []struct {
		deg	float64
		ref	string
	}{
		{ 0, "N" },
		{ 48.858370, "N" },
		{ -33.856784, "S" },
		{ 89.9999999, "N" },
		{ -90, "S" },
		{ 12.5, "N" },
	}
	for _, tt := range tests {
		ref, dms := ToDMS( tt.deg, "N", "S" )
		assert.Equal( t, tt.ref, ref )
		require.Len( t, dms, 3 )
		assert.True( t, dms[1].Numerator < 60 )
		assert.True( t, dms[2].Numerator < 60 * secondsDenominator )

		back, err := FromDMS( ref, dms )
		require.NoError( t, err )
		assert.InDelta( t, tt.deg, back, 1e-7 )
	}

	ref, dms := ToDMS( 12.5, "E", "W" )
	assert.Equal( t, "E", ref )
	assert.Equal( t, uint32(12), dms[0].Numerator )
	assert.Equal( t, uint32(30), dms[1].Numerator )
	assert.Equal( t, uint32(0), dms[2].Numerator )

	ref, _ = ToDMS( -151.2, "E", "W" )
	assert.Equal( t, "W", ref )
}

func TestDMSCarry( t *testing.T ) {
	// 59.99999999 minutes rounds to a whole degree
	_, dms := ToDMS( 10.99999999999, "N", "S" )
	assert.Equal( t, uint32(11), dms[0].Numerator )
	assert.Equal( t, uint32(0), dms[1].Numerator )
	assert.Equal( t, uint32(0), dms[2].Numerator )
}

func TestFromDMSErrors( t *testing.T ) {
	_, dms := ToDMS( 1, "N", "S" )
	_, err := FromDMS( "X", dms )
	assert.Error( t, err )
	_, err = FromDMS( "N", dms[:2] )
	assert.Error( t, err )
	dms[2].Denominator = 0
	_, err = FromDMS( "N", dms )
	assert.Error( t, err )
}

func TestCoordinatesValidate( t *testing.T ) {
	assert.NoError( t, ( &Coordinates{ 90, -180 } ).Validate() )
	assert.Error( t, ( &Coordinates{ 90.1, 0 } ).Validate() )
	assert.Error( t, ( &Coordinates{ 0, 180.5 } ).Validate() )
	assert.Error( t, ( &Coordinates{ math.NaN(), 0 } ).Validate() )
}
