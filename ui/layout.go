package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// Share of the row width given to the first object of a split row.
const (
	OneThird  float32 = 1.0 / 3
	OneFourth float32 = 1.0 / 4
	Half      float32 = 1.0 / 2
	TwoThirds float32 = 2.0 / 3
)

// splitLayout lays out exactly two objects side by side. The first gets share of the width,
// the second the remainder. Both keep their minimum height.
type splitLayout struct {
	share float32
}

// MinSize is the two minimum widths side by side and the taller of the two heights.
func (s *splitLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) < 2 {
		return fyne.NewSize(0, 0)
	}
	left, right := objects[0].MinSize(), objects[1].MinSize()
	return fyne.NewSize(left.Width+right.Width, fyne.Max(left.Height, right.Height))
}

// Layout arranges the two objects.
func (s *splitLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 2 {
		return
	}
	leftWidth := size.Width * s.share

	objects[0].Resize(fyne.NewSize(leftWidth, objects[0].MinSize().Height))
	objects[0].Move(fyne.NewPos(0, 0))

	objects[1].Resize(fyne.NewSize(size.Width-leftWidth, objects[1].MinSize().Height))
	objects[1].Move(fyne.NewPos(leftWidth, 0))
}

// NewSplitRow creates a row holding left and right, left taking share of the width.
func NewSplitRow(left, right fyne.CanvasObject, share float32) *fyne.Container {
	return container.New(&splitLayout{share: share}, left, right)
}
