package util
import (
	"fmt"
	"errors"
)

var (
	ErrCapacityExceeded = errors.New("capacity exceeded")
	ErrMarkerNotFound = errors.New("no hidden message found")
	ErrCorruptedMarker = errors.New("corrupted hidden message")
	ErrInvalidEncoding = errors.New("error decoding message")
	ErrUnsupportedCarrier = errors.New("unsupported carrier")
)

// the carrier doesn't have enough embedding slots. Counts are in bits.
type CapacityError struct {
	Channel		string
	Required	int
	Available	int
}

func(e *CapacityError) Error() string {
	return fmt.Sprintf(
		"%s: message needs %d bits but the carrier holds only %d; use a shorter message or a larger carrier",
		e.Channel, e.Required, e.Available,
	)
}

func(e *CapacityError) Is( target error ) bool {
	return target == ErrCapacityExceeded
}
