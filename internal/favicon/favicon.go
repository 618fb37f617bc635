// Package favicon renders the application favicon set: a gradient disc
// with a dollar glyph, emitted as a multi-size .ico plus standalone PNGs.
//
// Rendering is fully procedural and deterministic; running the generator
// twice produces byte-identical files.
package favicon

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/ryokushen/devserver/internal/logging"
)

const (
	// canvasSize is the base render resolution.
	canvasSize = 64

	glyph     = "$"
	glyphSize = 32
)

// Theme colors matching the app's dark palette.
var (
	background = color.RGBA{R: 15, G: 23, B: 42, A: 255}
	accent     = color.NRGBA{R: 59, G: 130, B: 246}
	shadow     = color.RGBA{A: 128}
	foreground = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Output file names, written into the target directory.
const (
	FileICO   = "favicon.ico"
	FilePNG32 = "favicon-32x32.png"
	FilePNG16 = "favicon-16x16.png"
)

// Generate renders the favicon set into dir, overwriting existing files.
// When rendering or encoding fails it degrades to writing a placeholder
// favicon.ico so tooling that expects the file to exist keeps working.
func Generate(dir string) error {
	img, err := render()
	if err == nil {
		err = emit(dir, img)
	}
	if err != nil {
		logging.UserWarning("Rendering failed (%v), writing placeholder favicon.ico", err)
		return WritePlaceholder(dir)
	}
	return nil
}

// render draws the 64x64 base image.
func render() (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, canvasSize, canvasSize))
	draw.Draw(img, img.Bounds(), &image.Uniform{background}, image.Point{}, draw.Src)

	drawGradientDisc(img)

	if err := drawGlyph(img); err != nil {
		return nil, err
	}
	return img, nil
}

// drawGradientDisc paints concentric circles of decreasing opacity,
// approximating a soft radial blend in the accent hue.
func drawGradientDisc(img *image.RGBA) {
	center := canvasSize / 2
	radius := canvasSize/2 - 4

	for r := radius; r >= 1; r-- {
		c := accent
		c.A = uint8(255 * r / radius)
		fillCircle(img, center, center, r, c)
	}
}

// fillCircle composites a solid disc over the image.
func fillCircle(img *image.RGBA, cx, cy, r int, c color.NRGBA) {
	src := &image.Uniform{c}
	mask := &circleMask{cx: cx, cy: cy, r: r}
	draw.DrawMask(img, img.Bounds(), src, image.Point{}, mask, image.Point{}, draw.Over)
}

// circleMask is an alpha mask selecting the disc of radius r around
// (cx, cy).
type circleMask struct {
	cx, cy, r int
}

func (m *circleMask) ColorModel() color.Model { return color.AlphaModel }

func (m *circleMask) Bounds() image.Rectangle {
	return image.Rect(m.cx-m.r, m.cy-m.r, m.cx+m.r+1, m.cy+m.r+1)
}

func (m *circleMask) At(x, y int) color.Color {
	dx, dy := x-m.cx, y-m.cy
	if dx*dx+dy*dy <= m.r*m.r {
		return color.Alpha{A: 255}
	}
	return color.Alpha{}
}

// drawGlyph renders the centered dollar sign with a one-pixel drop
// shadow. The bundled Go Bold face keeps output identical across hosts;
// if it fails to parse, the built-in fixed-size face is used instead.
func drawGlyph(img *image.RGBA) error {
	face, err := loadFace()
	if err != nil {
		logging.Debug("font load failed, using default face", "error", err)
		face = basicfont.Face7x13
	}

	bounds, advance := font.BoundString(face, glyph)
	width := advance
	height := bounds.Max.Y - bounds.Min.Y

	size := fixed.I(canvasSize)
	dotX := (size - width) / 2
	dotY := (size-height)/2 - bounds.Min.Y

	d := &font.Drawer{
		Dst:  img,
		Src:  &image.Uniform{shadow},
		Face: face,
		Dot:  fixed.Point26_6{X: dotX + fixed.I(1), Y: dotY + fixed.I(1)},
	}
	d.DrawString(glyph)

	d.Src = &image.Uniform{foreground}
	d.Dot = fixed.Point26_6{X: dotX, Y: dotY}
	d.DrawString(glyph)

	return nil
}

func loadFace() (font.Face, error) {
	f, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    glyphSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// scale downsamples the base image with a high-quality resampling kernel.
func scale(src *image.RGBA, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// emit writes favicon.ico and the standalone PNGs.
func emit(dir string, img *image.RGBA) error {
	img32 := scale(img, 32)
	img16 := scale(img, 16)

	if err := writeICO(filepath.Join(dir, FileICO), img16, img32, img); err != nil {
		return fmt.Errorf("failed to write %s: %w", FileICO, err)
	}
	if err := writePNG(filepath.Join(dir, FilePNG32), img32); err != nil {
		return err
	}
	return writePNG(filepath.Join(dir, FilePNG16), img16)
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Base(path), err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", filepath.Base(path), err)
	}
	return f.Close()
}
