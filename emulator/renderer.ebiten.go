package emulator

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// FramebufferView is a thin ebiten.Game that blits frames published by the
// emulation goroutine. It owns no CORE state, never reads from the CPU or
// GPU directly, and never feeds input back into them (controller input is
// out of scope for this core).
type FramebufferView struct {
	Frames <-chan image.Image
	latest *ebiten.Image
}

// Creates a new FramebufferView reading frames from `frames`.
func NewFramebufferView(frames <-chan image.Image) *FramebufferView {
	return &FramebufferView{Frames: frames}
}

func (v *FramebufferView) Update() error {
	return nil
}

func (v *FramebufferView) Draw(screen *ebiten.Image) {
	select {
	case img := <-v.Frames:
		v.latest = ebiten.NewImageFromImage(img)
	default:
	}
	if v.latest != nil {
		screen.DrawImage(v.latest, nil)
	}
}

func (v *FramebufferView) Layout(outsideWidth, outsideHeight int) (int, int) {
	return VRAMWidth, VRAMHeight
}
