package rtree

import "math"

// Interval is a closed range [Min, Max] along a single axis.
type Interval struct {
	Min, Max float64
}

// Overlaps reports whether the two intervals share at least one value.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Min <= other.Max && other.Min <= iv.Max
}

// Contains reports whether other lies entirely within iv.
func (iv Interval) Contains(other Interval) bool {
	return iv.Min <= other.Min && other.Max <= iv.Max
}

// ContainsValue reports whether v lies within iv.
func (iv Interval) ContainsValue(v float64) bool {
	return iv.Min <= v && v <= iv.Max
}

// Length is the extent of the interval. It is negative for an inverted
// interval.
func (iv Interval) Length() float64 {
	return iv.Max - iv.Min
}

// Box is an axis-aligned bounding box, holding one Interval per dimension.
type Box []Interval

// emptyBox gives the placeholder box of a node that holds nothing. Each axis
// is inverted so that combining it with any real box gives that box back.
func emptyBox(numDims int) Box {
	bb := make(Box, numDims)
	for i := range bb {
		bb[i] = Interval{Min: math.Inf(+1), Max: math.Inf(-1)}
	}
	return bb
}

func isEmpty(bb Box) bool {
	for _, iv := range bb {
		if iv.Min > iv.Max {
			return true
		}
	}
	return false
}

// pointBox gives the degenerate box occupied by a single coordinate.
func pointBox(coords []float64) Box {
	bb := make(Box, len(coords))
	for i, c := range coords {
		bb[i] = Interval{Min: c, Max: c}
	}
	return bb
}

func (bb Box) clone() Box {
	c := make(Box, len(bb))
	copy(c, bb)
	return c
}

// combine gives the smallest bounding box containing both bbox1 and bbox2.
func combine(bbox1, bbox2 Box) Box {
	bb := make(Box, len(bbox1))
	for i := range bb {
		bb[i] = Interval{
			Min: math.Min(bbox1[i].Min, bbox2[i].Min),
			Max: math.Max(bbox1[i].Max, bbox2[i].Max),
		}
	}
	return bb
}

// enlargement returns how much additional area the existing Box would have to
// enlarge by to accommodate the additional Box.
func enlargement(existing, additional Box) float64 {
	return area(combine(existing, additional)) - area(existing)
}

// area is the hyper-volume of the box. The empty placeholder has no area.
func area(bb Box) float64 {
	if isEmpty(bb) {
		return 0
	}
	a := 1.0
	for _, iv := range bb {
		a *= iv.Length()
	}
	return a
}

func overlap(bbox1, bbox2 Box) bool {
	for i := range bbox1 {
		if !bbox1[i].Overlaps(bbox2[i]) {
			return false
		}
	}
	return true
}

// contains reports whether inner lies entirely within outer. The empty
// placeholder is contained by everything.
func contains(outer, inner Box) bool {
	for i := range outer {
		if !outer[i].Contains(inner[i]) {
			return false
		}
	}
	return true
}

func containsPoint(bb Box, coords []float64) bool {
	for i, c := range coords {
		if !bb[i].ContainsValue(c) {
			return false
		}
	}
	return true
}

// squaredDistance is the squared Euclidean distance between the closest
// points of the two boxes. Overlapping boxes are at distance zero.
func squaredDistance(bbox1, bbox2 Box) float64 {
	var sum float64
	for i := range bbox1 {
		var d float64
		switch {
		case bbox1[i].Max < bbox2[i].Min:
			d = bbox2[i].Min - bbox1[i].Max
		case bbox2[i].Max < bbox1[i].Min:
			d = bbox1[i].Min - bbox2[i].Max
		}
		sum += d * d
	}
	return sum
}
