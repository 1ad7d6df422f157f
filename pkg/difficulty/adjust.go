package difficulty

import (
	"fmt"
	"math"
)

const (
	// MaxFigure is the upper bound of the AR/OD/CS/HP scale.
	MaxFigure = 10.0

	hardRockCSMultiplier = 1.3
	hardRockMultiplier   = 1.4
	doubleTimeRate       = 1.5

	// OD <-> 300 hit window in milliseconds: window = 79.5 - 6*OD
	odWindowBase  = 79.5
	odWindowSlope = 6.0
)

// Attributes are the mod-adjusted figures of a beatmap.
type Attributes struct {
	AR         float64
	OD         float64
	CS         float64
	HP         float64
	BPM        float64
	StarRating float64
}

// WithStarRating returns a copy carrying sr rounded to two digits.
func (a Attributes) WithStarRating(sr float64) Attributes {
	a.StarRating = Round(sr, 2)
	return a
}

// Adjust applies mod to the base figures. HardRock scales and clamps the four
// figures, DoubleTime-class mods speed up BPM and rescale AR and OD, every
// other mod passes the figures through. StarRating is left at zero.
func Adjust(cs, hp, ar, od, bpm float64, mod Modifier) Attributes {
	switch {
	case mod == HardRock:
		cs = math.Min(cs*hardRockCSMultiplier, MaxFigure)
		hp = math.Min(hp*hardRockMultiplier, MaxFigure)
		ar = math.Min(ar*hardRockMultiplier, MaxFigure)
		od = math.Min(od*hardRockMultiplier, MaxFigure)
	case mod.IsDoubleTime():
		bpm *= doubleTimeRate
		ar = Round(((ar*2)+13)/3, 2)
		od = scaleOD(od, doubleTimeRate)
	}

	return Attributes{
		AR:  Round(ar, 2),
		OD:  Round(od, 2),
		CS:  Round(cs, 2),
		HP:  Round(hp, 2),
		BPM: Round(bpm, 2),
	}
}

// scaleOD converts OD to its hit window, shrinks the window by rate and
// converts back. The result keeps a single decimal digit and is not clamped.
func scaleOD(od, rate float64) float64 {
	window := -odWindowSlope*od + odWindowBase
	window /= rate
	return Round((odWindowBase-window)/odWindowSlope, 1)
}

// Round rounds x to the given number of decimal digits, half away from zero.
func Round(x float64, digits int) float64 {
	p := math.Pow(10, float64(digits))
	return math.Round(x*p) / p
}

// DisplayLength formats a drain length as M:SS. DoubleTime-class mods shorten
// the length by the playback rate, truncating to whole seconds.
func DisplayLength(seconds int, mod Modifier) string {
	if mod.IsDoubleTime() {
		seconds = int(float64(seconds) / doubleTimeRate)
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
