package progrow

// Layout reserves column widths so that several rows line up. A zero length
// means no reservation: the segment takes its natural width.
//
// Rows computes a layout automatically. Build one by hand to align rows that
// are rendered one at a time, such as a stream whose values are not known up
// front; the closer the guess, the better the alignment.
type Layout struct {
	// NameLength is reserved for the name and its suffix.
	NameLength int
	// LeftFractionLength is reserved for the current value.
	LeftFractionLength int
	// RightFractionLength is reserved for the maximum value.
	RightFractionLength int
	// PercentLength is reserved for the percentage, including its prefix.
	PercentLength int
}

// ConsiderName grows NameLength to length if length is larger.
func (l *Layout) ConsiderName(length int) {
	l.NameLength = max(l.NameLength, length)
}

// ConsiderLeftFraction grows LeftFractionLength to length if length is larger.
func (l *Layout) ConsiderLeftFraction(length int) {
	l.LeftFractionLength = max(l.LeftFractionLength, length)
}

// ConsiderRightFraction grows RightFractionLength to length if length is
// larger.
func (l *Layout) ConsiderRightFraction(length int) {
	l.RightFractionLength = max(l.RightFractionLength, length)
}

// ConsiderPercent grows PercentLength to length if length is larger.
func (l *Layout) ConsiderPercent(length int) {
	l.PercentLength = max(l.PercentLength, length)
}
