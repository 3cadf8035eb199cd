package particles

// Circle is a FillCircle call captured by a Recorder.
type Circle struct {
	X, Y, R float64
	Tint    Tint
}

// Line is a StrokeLine call captured by a Recorder.
type Line struct {
	X1, Y1, X2, Y2 float64
	Width          float64
	Tint           Tint
}

// Recorder is a Surface that remembers the drawing commands of the current frame.
// Clear drops everything recorded so far.
type Recorder struct {
	Clears  int
	Circles []Circle
	Lines   []Line
}

func (r *Recorder) Clear() {
	r.Clears++
	r.Circles = r.Circles[:0]
	r.Lines = r.Lines[:0]
}

func (r *Recorder) FillCircle(x, y, radius float64, t Tint) {
	r.Circles = append(r.Circles, Circle{X: x, Y: y, R: radius, Tint: t})
}

func (r *Recorder) StrokeLine(x1, y1, x2, y2, width float64, t Tint) {
	r.Lines = append(r.Lines, Line{X1: x1, Y1: y1, X2: x2, Y2: y2, Width: width, Tint: t})
}
