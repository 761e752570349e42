package renderer

import (
	"image"

	"github.com/kschuler/lumentrace/pkg/vmath"
)

// Tile is a rectangular region of the image rendered as one unit of
// work, grounded on the teacher's pkg/renderer/progressive.go Tile type.
// Each tile carries its own RNG seeded from its ID so a render's output
// is reproducible regardless of which worker picks up which tile.
type Tile struct {
	ID              int
	Bounds          image.Rectangle
	PassesCompleted int
	Rng             vmath.Rng
}

// NewTile creates a tile with a deterministic per-tile RNG.
func NewTile(id int, bounds image.Rectangle) *Tile {
	return &Tile{ID: id, Bounds: bounds, Rng: vmath.NewRng(int64(id + 42))}
}

// NewTileGrid creates a grid of tiles covering width x height.
func NewTileGrid(width, height, tileSize int) []*Tile {
	var tiles []*Tile
	tileID := 0

	tilesX := (width + tileSize - 1) / tileSize
	tilesY := (height + tileSize - 1) / tileSize

	for ty := 0; ty < tilesY; ty++ {
		for tx := 0; tx < tilesX; tx++ {
			x0 := tx * tileSize
			y0 := ty * tileSize
			x1 := min(x0+tileSize, width)
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, NewTile(tileID, image.Rect(x0, y0, x1, y1)))
			tileID++
		}
	}

	return tiles
}
