package shape

import "solid-example/domain/shared"

type Square struct {
	Rectangle
}

func NewSquare(side int) *Square {
	return &Square{Rectangle{Width: side, Height: side}}
}

// CalculateArea fails once Width and Height have been set apart.
func (s *Square) CalculateArea() (int, error) {
	if s.Width != s.Height {
		return 0, shared.NewInvalidArgumentError("square", "width", "the width and height of a square should be equal")
	}
	return s.Width * s.Width, nil
}

func DefaultSquare() Quadrilateral {
	return NewSquare(3)
}

var _ Quadrilateral = (*Square)(nil)
