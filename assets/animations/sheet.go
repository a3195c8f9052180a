package animations

import "image"

// Sheet is a grid of equally sized frames on one image, read left to right
// then top to bottom.
type Sheet struct {
	Columns     int
	Rows        int
	FrameWidth  int
	FrameHeight int
}

// NewSheet lays frames of frameW x frameH over an image. A partial frame at
// the right or bottom edge still counts as a column or row.
func NewSheet(imageW, imageH, frameW, frameH int) Sheet {
	if frameW <= 0 || frameH <= 0 {
		return Sheet{}
	}
	return Sheet{
		Columns:     ceilDiv(imageW, frameW),
		Rows:        ceilDiv(imageH, frameH),
		FrameWidth:  frameW,
		FrameHeight: frameH,
	}
}

func (s Sheet) FrameCount() int {
	return s.Columns * s.Rows
}

// SourceRect returns where frame sits on the image. Frames past the end wrap.
func (s Sheet) SourceRect(frame int) image.Rectangle {
	n := s.FrameCount()
	if n == 0 {
		return image.Rectangle{}
	}
	frame %= n
	if frame < 0 {
		frame += n
	}
	x := (frame % s.Columns) * s.FrameWidth
	y := (frame / s.Columns) * s.FrameHeight
	return image.Rect(x, y, x+s.FrameWidth, y+s.FrameHeight)
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
