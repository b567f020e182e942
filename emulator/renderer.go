package emulator

import (
	"image"
	"image/color"
)

// ToImage converts VRAM into a displayable image, unpacking each halfword
// with the same bit layout GP0(0x68) writes (g in [9:5], b in [14:10], r in
// [4:0]) so the picture matches what was actually written to VRAM, deviation
// from PSX BGR555 included. Conversion is pure and runs on demand, once per
// presented frame; it is never invoked from inside the CORE.
func (gpu *GPU) ToImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, VRAMWidth, VRAMHeight))
	for y := 0; y < VRAMHeight; y++ {
		for x := 0; x < VRAMWidth; x++ {
			img.Set(x, y, unpackVRAMPixel(gpu.VRAM[vramIndex(uint32(x), uint32(y))]))
		}
	}
	return img
}

func unpackVRAMPixel(val uint16) color.RGBA {
	r := uint8(val&0x1f) << 3
	g := uint8((val>>5)&0x1f) << 3
	b := uint8((val>>10)&0x1f) << 3
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// PublishFrame sends `img` on the capacity-1 frame channel, draining any
// stale frame first so the render goroutine always sees the latest one and
// the emulation goroutine never blocks on a full channel.
func PublishFrame(frames chan image.Image, img image.Image) {
	select {
	case <-frames:
	default:
	}
	frames <- img
}
