package domain

import (
	"fmt"
	"strings"
)

// WagonType is the class of a wagon. The zero value is Restaurant, so the
// zero Wagon is an empty restaurant car.
type WagonType int

const (
	Restaurant WagonType = iota
	Sitting
	Economy
	Luxury
)

// PassengerTypes lists the wagon classes that carry passengers, in the order
// the balancing algorithms visit them.
var PassengerTypes = []WagonType{Sitting, Economy, Luxury}

// Canonical capacities used when a wagon is built from its type alone.
const (
	SittingCapacity = 100
	EconomyCapacity = 50
	LuxuryCapacity  = 30
)

func (t WagonType) Valid() bool {
	return t >= Restaurant && t <= Luxury
}

// CanonicalCapacity is the default seat count for the class.
func (t WagonType) CanonicalCapacity() int {
	switch t {
	case Sitting:
		return SittingCapacity
	case Economy:
		return EconomyCapacity
	case Luxury:
		return LuxuryCapacity
	default:
		return 0
	}
}

func (t WagonType) CarriesPassengers() bool {
	return t == Sitting || t == Economy || t == Luxury
}

func (t WagonType) String() string {
	switch t {
	case Sitting:
		return "Sitting"
	case Economy:
		return "Economy"
	case Luxury:
		return "Luxury"
	case Restaurant:
		return "Restaurant"
	default:
		return fmt.Sprintf("WagonType(%d)", int(t))
	}
}

// Code returns the numeric type code used by the compact text format
// (0=Sitting, 1=Economy, 2=Luxury, 3=Restaurant).
func (t WagonType) Code() int {
	switch t {
	case Sitting:
		return 0
	case Economy:
		return 1
	case Luxury:
		return 2
	default:
		return 3
	}
}

// WagonTypeFromCode is the inverse of Code.
func WagonTypeFromCode(code int) (WagonType, error) {
	switch code {
	case 0:
		return Sitting, nil
	case 1:
		return Economy, nil
	case 2:
		return Luxury, nil
	case 3:
		return Restaurant, nil
	default:
		return 0, InvalidArgument("wagon type from code", "type code %d not in [0, 3]", code)
	}
}

// ParseWagonType accepts the case-insensitive class name.
func ParseWagonType(s string) (WagonType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sitting":
		return Sitting, nil
	case "economy":
		return Economy, nil
	case "luxury":
		return Luxury, nil
	case "restaurant":
		return Restaurant, nil
	default:
		return 0, InvalidArgument("parse wagon type", "unsupported wagon type %q", s)
	}
}
