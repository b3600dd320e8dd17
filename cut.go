package pwl

// Cut partitions the waveform into three disjoint sub-waveforms by time
// value: center holds samples with clipStart <= t <= clipEnd (inclusive on
// both ends), pre holds samples with t < clipStart, post holds samples with
// t > clipEnd. Only existing samples are selected; no interpolation happens
// at the window edges, so a sample exactly on a boundary lands in center and
// never in pre or post. Callers cutting at abutting windows should pick
// non-overlapping boundaries if double selection across calls matters.
//
// Any of the three results may be empty; that is a valid outcome, not an
// error.
func (w Waveform) Cut(clipStart, clipEnd float64) (center, pre, post Waveform) {
	for i, t := range w.Times {
		switch {
		case t < clipStart:
			pre.Times = append(pre.Times, t)
			pre.Values = append(pre.Values, w.Values[i])
		case t > clipEnd:
			post.Times = append(post.Times, t)
			post.Values = append(post.Values, w.Values[i])
		default:
			center.Times = append(center.Times, t)
			center.Values = append(center.Values, w.Values[i])
		}
	}
	return center, pre, post
}
