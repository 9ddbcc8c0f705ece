package ui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Crater-Duel/internal/game"
)

// terrainLayer caches the field as an image and re-uploads it only when the
// field's revision or identity changes.
type terrainLayer struct {
	img      *ebiten.Image
	pix      []byte
	field    *game.Field
	revision int
}

func newTerrainLayer(w, h int) *terrainLayer {
	return &terrainLayer{
		img: ebiten.NewImage(w, h),
		pix: make([]byte, w*h*4),
	}
}

// sync redraws the cached image if f changed since the last call.
func (tl *terrainLayer) sync(f *game.Field) {
	if f == tl.field && f.Revision() == tl.revision {
		return
	}
	tl.field, tl.revision = f, f.Revision()
	fillTerrainPixels(tl.pix, f)
	tl.img.WritePixels(tl.pix)
}

func (tl *terrainLayer) draw(screen *ebiten.Image) {
	screen.DrawImage(tl.img, nil)
}

// fillTerrainPixels writes f as row-major RGBA: ground over sky.
func fillTerrainPixels(pix []byte, f *game.Field) {
	w, h := f.Width(), f.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := skyColor
			if f.IsSolid(x, y) {
				c = groundColor
			}
			i := (y*w + x) * 4
			pix[i] = c.R
			pix[i+1] = c.G
			pix[i+2] = c.B
			pix[i+3] = c.A
		}
	}
}
