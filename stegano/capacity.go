package stegano
import (
	"fmt"

	"github.com/lvcoi/SteganoSaurus/stegano/img"
	"github.com/lvcoi/SteganoSaurus/stegano/text"
	"github.com/lvcoi/SteganoSaurus/stegano/util"
)

/*
 * What a carrier can hold. AvailableBits counts the raw bit slots, the
 * terminator included; MaxPayload is what is left for the message.
 * Unlimited channels report the advised maximum in MaxPayload instead.
 */
type CapacityReport struct {
	Channel		string
	AvailableBits	int
	MaxPayload	int
	Unlimited	bool
}

func Capacity( channel string, carrier []byte ) (*CapacityReport, error) {
	r := &CapacityReport{ Channel: channel }
	var err error
	switch channel {
	case ZeroWidth:
		r.MaxPayload, r.Unlimited = text.Capacity( carrier )
		return r, nil
	case Pixel:
		r.AvailableBits, err = img.SlotsOf( carrier )
	case Jpeg:
		r.AvailableBits, err = img.JpegSlots( carrier )
	default:
		return nil, fmt.Errorf("capacity is not tracked for channel %q", channel)
	}
	if err != nil {
		return nil, err
	}
	r.MaxPayload = util.CapacityFromBits( r.AvailableBits )
	return r, nil
}

// replaces the advised maximum of an unlimited channel. No-op otherwise.
func(r *CapacityReport) SetAdvisedLimit( limit int ) {
	if r.Unlimited && limit > 0 {
		r.MaxPayload = limit
	}
}

// nil when the payload fits; the advised limit of unlimited channels
// doesn't count.
func(r *CapacityReport) Check( payload string ) error {
	if r.Unlimited {
		return nil
	}
	required := util.FramedBits( payload )
	if required > r.AvailableBits {
		return &util.CapacityError{
			Channel: r.Channel,
			Required: required,
			Available: r.AvailableBits,
		}
	}
	return nil
}

// true when an unlimited channel is asked to carry more than advised.
func(r *CapacityReport) Bloated( payload string ) bool {
	return r.Unlimited && len(payload) > r.MaxPayload
}
