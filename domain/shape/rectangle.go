/*
Package shape keeps a Square that is not a valid Rectangle substitute.

Square embeds Rectangle and satisfies Quadrilateral, but its CalculateArea
demands Width == Height, a precondition Rectangle never had. Code written
against Quadrilateral that resizes one side breaks when handed a Square.
This is intentional and must not be "fixed" here.
*/
package shape

// Quadrilateral is the contract callers of Rectangle rely on.
type Quadrilateral interface {
	SetWidth(width int)
	SetHeight(height int)
	CalculateArea() (int, error)
}

type Rectangle struct {
	Width  int
	Height int
}

func NewRectangle(width, height int) *Rectangle {
	return &Rectangle{Width: width, Height: height}
}

func (r *Rectangle) SetWidth(width int)   { r.Width = width }
func (r *Rectangle) SetHeight(height int) { r.Height = height }

// CalculateArea never fails for a Rectangle.
func (r *Rectangle) CalculateArea() (int, error) {
	return r.Width * r.Height, nil
}

func DefaultRectangle() Quadrilateral {
	return NewRectangle(3, 6)
}

var _ Quadrilateral = (*Rectangle)(nil)
