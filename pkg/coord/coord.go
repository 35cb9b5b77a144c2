// Package coord maps time values to pixel positions on the timeline and back.
//
// The viewport of width vw sits in the middle of a wider drawing strip, the
// extended frame, of width (2n+1)·vw where n is ExtensionMultiplier:
//
//	d0                    d1          d2                    d3
//	---------------------------------------------------------
//	|                     |     vw     |                    |
//	---------------------------------------------------------
//	t0                    t1          t2                    t3
//
// t1 is the anchor and t2-t1 is the scale. Positions returned by Position are
// measured from d0, so the anchor lands at n·vw.
package coord

import (
	"math"
	"time"
)

const (
	// ExtensionMultiplier is the number of viewport widths padded on either
	// side of the viewport in the extended frame.
	ExtensionMultiplier = 0.5

	// SliderMultiplier is k in slider = -k·log10(scale/OneSecond).
	SliderMultiplier = 5.0

	// IconWidth is the pixel footprint of a single point.
	IconWidth = 10.0
	// ClusterWidth is the pixel footprint of a badge grouping two or more points.
	ClusterWidth = 25.0
)

// Fixed spans in milliseconds.
const (
	OneMillisecond = 1.0
	OneSecond      = 1000 * OneMillisecond
	OneMinute      = 60 * OneSecond
	OneHour        = 60 * OneMinute
	OneDay         = 24 * OneHour
	OneWeek        = 7 * OneDay
)

const (
	// MinScale is the narrowest window reachable by zooming.
	MinScale = OneSecond
	// MaxScale is the widest window reachable by zooming, ten years.
	MaxScale = OneDay * 365.25 * 10
)

// Position returns the offset of t inside the extended frame:
// d = vw·(n + (t-t1)/scale).
func Position(t, anchor, scale, width float64) float64 {
	return width * (ExtensionMultiplier + (t-anchor)/scale)
}

// Time is the inverse of Position: t = t1 + (d/vw - n)·scale.
func Time(d, anchor, scale, width float64) float64 {
	return anchor + (d/width-ExtensionMultiplier)*scale
}

// TimeDelta converts a horizontal pixel movement into a time offset.
func TimeDelta(dx, scale, width float64) float64 {
	return dx * scale / width
}

// PixelDelta converts a time offset into a horizontal pixel offset.
func PixelDelta(dt, scale, width float64) float64 {
	return dt * width / scale
}

// NewAnchorForZoom returns the anchor that keeps fixed at the same pixel when
// the scale changes from oldScale to newScale.
//
// (t-t1)/s1 = (t-et1)/s2, so et1 = t - (t-t1)·s2/s1.
func NewAnchorForZoom(fixed, oldAnchor, oldScale, newScale float64) float64 {
	return fixed - (fixed-oldAnchor)*newScale/oldScale
}

// ScaleToSlider converts a scale to its slider value. One second maps to 0,
// the maximum; wider scales give negative values.
func ScaleToSlider(scale float64) float64 {
	return -SliderMultiplier * math.Log10(scale/OneSecond)
}

// SliderToScale is the inverse of ScaleToSlider.
func SliderToScale(slider float64) float64 {
	return OneSecond * math.Pow(10, -slider/SliderMultiplier)
}

// ClampScale bounds scale to [MinScale, MaxScale]. NaN collapses to MinScale.
func ClampScale(scale float64) float64 {
	switch {
	case math.IsNaN(scale), scale < MinScale:
		return MinScale
	case scale > MaxScale:
		return MaxScale
	}
	return scale
}

// SliderRange returns the slider values for MaxScale and MinScale.
func SliderRange() (min, max float64) {
	return ScaleToSlider(MaxScale), ScaleToSlider(MinScale)
}

// ClampSlider bounds a slider value to SliderRange.
func ClampSlider(v float64) float64 {
	lo, hi := SliderRange()
	switch {
	case math.IsNaN(v), v > hi:
		return hi
	case v < lo:
		return lo
	}
	return v
}

// FrameWidth is the width of the extended frame, (2n+1)·vw.
func FrameWidth(width float64) float64 {
	return (2*ExtensionMultiplier + 1) * width
}

// FrameLeft is the offset of the extended frame relative to the viewport, d0.
func FrameLeft(width float64) float64 {
	return -ExtensionMultiplier * width
}

// DragBounds is the range the frame may be shifted while dragging before it
// needs to be re-anchored.
func DragBounds(width float64) (min, max float64) {
	return -2 * ExtensionMultiplier * width, 0
}

// PositionBounds is the range of positions that fall inside the extended
// frame, [d0, d3] measured from d1.
func PositionBounds(width float64) (min, max float64) {
	return -ExtensionMultiplier * width, (ExtensionMultiplier + 1) * width
}

// Millis converts t to milliseconds since the Unix epoch.
func Millis(t time.Time) float64 {
	return float64(t.UnixMilli())
}

// Instant converts milliseconds since the Unix epoch to a time in loc.
// Fractional milliseconds are truncated toward zero.
func Instant(ms float64, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.UnixMilli(int64(ms)).In(loc)
}
