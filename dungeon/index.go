package dungeon

import (
	"github.com/dhconnelly/rtreego"

	"github.com/katalvlaran/lvldungeon/geom"
)

// Tolerance pulled in from each face of a query box so that boxes sharing
// only a face do not report as intersecting.
const touchSlack = 0.25

// boxEntry is one placed box in the index.
type boxEntry struct {
	ID     int
	Origin geom.Cell
	Size   geom.Cell
	rect   rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (b *boxEntry) Bounds() rtreego.Rect { return b.rect }

// boxIndex answers margin-overlap queries over placed rooms and hallways.
type boxIndex struct {
	tree *rtreego.Rtree
	n    int
}

func newBoxIndex() *boxIndex {
	return &boxIndex{tree: rtreego.NewTree(3, 2, 8)}
}

// Insert adds the box [origin, origin+size).
func (ix *boxIndex) Insert(id int, origin, size geom.Cell) error {
	r, err := rtreego.NewRect(
		rtreego.Point{float64(origin.X), float64(origin.Y), float64(origin.Z)},
		[]float64{float64(size.X), float64(size.Y), float64(size.Z)},
	)
	if err != nil {
		return err
	}
	ix.tree.Insert(&boxEntry{ID: id, Origin: origin, Size: size, rect: r})
	ix.n++

	return nil
}

// Len returns the number of indexed boxes.
func (ix *boxIndex) Len() int { return ix.n }

// Collides reports whether any indexed box shares a cell with [origin,
// origin+size) grown by margin on all six faces.
func (ix *boxIndex) Collides(origin, size geom.Cell, margin int) bool {
	m := float64(margin) - touchSlack
	q, err := rtreego.NewRect(
		rtreego.Point{float64(origin.X) - m, float64(origin.Y) - m, float64(origin.Z) - m},
		[]float64{float64(size.X) + 2*m, float64(size.Y) + 2*m, float64(size.Z) + 2*m},
	)
	if err != nil {
		return true
	}

	return len(ix.tree.SearchIntersect(q)) > 0
}
