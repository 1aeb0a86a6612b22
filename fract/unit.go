package fract

import "strconv"

// Fixed point type to represent fractional values used for font
// rendering and font size keys.
//
// 26 bits represent the integer part of the value, while the remaining
// 6 bits represent the decimal part. A Unit of 64 is one pixel, 96 is
// 1.5 pixels.
type Unit int32

// Returns whether the Unit is a whole number.
func (self Unit) IsWhole() bool {
	return self & 0x3F == 0
}

// Multiplies two units, rounding the result half up.
func (self Unit) Mul(multiplier Unit) Unit {
	mx64 := int64(self)*int64(multiplier)
	return Unit((mx64 + 32) >> 6)
}

// Multiplies the unit by a float64 factor. The result is rounded
// to the closest unit, ties up.
func (self Unit) Scale(factor float64) Unit {
	return FromFloat64Up(self.ToFloat64()*factor)
}

func (self Unit) ToFloat64() float64 {
	return float64(self)/64.0
}

func (self Unit) ToFloat32() float32 {
	return float32(self)/64.0
}

// Defaults to [Unit.ToIntHalfUp]().
func (self Unit) ToInt() int {
	return self.ToIntHalfUp()
}

// Fastest conversion from Unit to int.
func (self Unit) ToIntFloor() int {
	return int(self) >> 6
}

func (self Unit) ToIntCeil() int {
	return (int(self) + 63) >> 6
}

func (self Unit) ToIntHalfUp() int {
	return (int(self) + 32) >> 6
}

func (self Unit) Floor() Unit {
	return self & ^0x3F
}

func (self Unit) Ceil() Unit {
	return (self + 0x3F).Floor()
}

func (self Unit) HalfUp() Unit {
	return (self + 32).Floor()
}

// Returns the larger of the two units.
func (self Unit) Max(other Unit) Unit {
	if self >= other { return self }
	return other
}

// Returns the smaller of the two units.
func (self Unit) Min(other Unit) Unit {
	if self <= other { return self }
	return other
}

// Returns a textual representation of the unit (e.g.: "-1.5").
func (self Unit) String() string {
	return strconv.FormatFloat(self.ToFloat64(), 'f', -1, 64)
}
