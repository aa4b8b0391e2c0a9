// internal/shatter/segment.go
package shatter

import (
	"image"
	"math"

	"electro-shoot/internal/config"
)

// Rand is the random source the decomposer draws from.
// utils.PRNGService satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// GroupID labels a fragment group. Zero means ungrouped.
type GroupID uint32

// Segmentation assigns every opaque pixel of a mask to one group.
type Segmentation struct {
	Width, Height int
	// Labels holds one GroupID per pixel in raster order.
	Labels []GroupID
	// Boxes[i] is the tight bounding box of group i+1.
	Boxes []BoundingBox
}

func (s *Segmentation) Label(x, y int) GroupID { return s.Labels[y*s.Width+x] }

// Group returns the id of the group whose box is Boxes[i].
func (s *Segmentation) Group(i int) GroupID { return GroupID(i + 1) }

type groupCounter struct {
	last uint32
}

func (c *groupCounter) next() GroupID {
	if c.last == math.MaxUint32 {
		panic("shatter: group id space exhausted")
	}
	c.last++
	return GroupID(c.last)
}

// Segment splits the opaque pixels of mask into small irregular groups by
// stamping random rectangles around randomly chosen seed pixels.
func Segment(mask *Mask, rng Rand) Segmentation {
	return segment(mask, rng, &groupCounter{})
}

func segment(mask *Mask, rng Rand, ids *groupCounter) Segmentation {
	seg := Segmentation{
		Width:  mask.Width,
		Height: mask.Height,
		Labels: make([]GroupID, mask.Width*mask.Height),
	}

	remaining := mask.Count()
	for remaining > 0 {
		seed := seg.pickSeed(mask, 1+rng.Intn(remaining))
		group := ids.next()
		box := PointBox(seed)

		stamps := 1 + rng.Intn(config.ShatterStampsMax)
		for i := 0; i < stamps; i++ {
			area := stampAround(seed, rng, mask.Width, mask.Height)
			for y := area.Min.Y; y < area.Max.Y; y++ {
				for x := area.Min.X; x < area.Max.X; x++ {
					idx := y*seg.Width + x
					if !mask.Opaque(x, y) || seg.Labels[idx] != 0 {
						continue
					}
					seg.Labels[idx] = group
					box = box.Extend(image.Pt(x, y))
					remaining--
				}
			}
		}
		seg.Boxes = append(seg.Boxes, box)
	}

	return seg
}

// pickSeed returns the k-th (1-based) opaque ungrouped pixel in raster order.
func (s *Segmentation) pickSeed(mask *Mask, k int) image.Point {
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			if !mask.Opaque(x, y) || s.Labels[y*s.Width+x] != 0 {
				continue
			}
			k--
			if k == 0 {
				return image.Pt(x, y)
			}
		}
	}
	panic("shatter: opaque pixel count out of sync with labels")
}

// stampAround draws a random rectangle containing seed, clipped to the image.
func stampAround(seed image.Point, rng Rand, width, height int) image.Rectangle {
	span := config.ShatterStampMax - config.ShatterStampMin + 1
	w := config.ShatterStampMin + rng.Intn(span)
	h := config.ShatterStampMin + rng.Intn(span)
	x0 := seed.X - rng.Intn(w)
	y0 := seed.Y - rng.Intn(h)
	r := image.Rect(x0, y0, x0+w, y0+h)
	return r.Intersect(image.Rect(0, 0, width, height))
}
