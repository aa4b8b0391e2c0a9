// internal/shatter/pack.go
package shatter

// Pack groups boxes into atlases so that no box of one atlas intersects a box
// of another. Each atlas lists indices into boxes.
func Pack(boxes []BoundingBox) [][]int {
	used := make([]bool, len(boxes))
	var atlases [][]int

	for start := range boxes {
		if used[start] {
			continue
		}
		used[start] = true
		atlas := []int{start}

		for changed := true; changed; {
			changed = false
			for i, box := range boxes {
				if used[i] || !intersectsAny(box, boxes, atlas) {
					continue
				}
				used[i] = true
				atlas = append(atlas, i)
				changed = true
			}
		}
		atlases = append(atlases, atlas)
	}

	return atlases
}

func intersectsAny(box BoundingBox, boxes []BoundingBox, members []int) bool {
	for _, m := range members {
		if box.Intersects(boxes[m]) {
			return true
		}
	}
	return false
}
