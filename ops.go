package rope

// Append appends the text of other to r. other is left untouched.
func (r *Rope) Append(other Rope) {
	r.t().Append(&other.tree)
}

// AppendString appends text to r.
func (r *Rope) AppendString(text string) {
	r.Append(FromString(text))
}

// SplitOff splits r at byte offset at. r keeps [0,at) and the returned rope
// holds [at,ByteLen()). A non-boundary offset is snapped backward to the start
// of its character.
func (r *Rope) SplitOff(at int) Rope {
	var right Rope
	right.tree = *r.t().SplitOff(at)
	return right
}

// TruncateFront drops the bytes [0,start).
func (r *Rope) TruncateFront(start int) {
	r.t().TruncateFront(start)
}

// TruncateBack drops the bytes [end,ByteLen()).
func (r *Rope) TruncateBack(end int) {
	r.t().TruncateBack(end)
}

// ReplaceRange replaces the bytes [start,end) with text. Both bounds are
// snapped backward to character boundaries.
func (r *Rope) ReplaceRange(start, end int, text string) {
	repl := FromString(text)
	r.t().ReplaceRange(start, end, &repl.tree)
}

// Insert inserts text before byte offset at.
func (r *Rope) Insert(at int, text string) {
	r.ReplaceRange(at, at, text)
}

// Delete removes the bytes [start,end).
func (r *Rope) Delete(start, end int) {
	r.t().ReplaceRange(start, end, nil)
}
