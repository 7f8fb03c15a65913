package spectrum

// TrackDominant returns the strongest-bin frequency for every time column of
// the grid, considering only bins within [minFreq, maxFreq]. When no bin
// falls inside the range, every frame reports the range midpoint.
func TrackDominant(g Grid, minFreq, maxFreq float64) []float64 {
	rows := bandRows(g, minFreq, maxFreq)
	out := make([]float64, g.Frames())

	if len(rows) == 0 {
		mid := (minFreq + maxFreq) / 2
		for i := range out {
			out[i] = mid
		}

		return out
	}

	for c := range out {
		bestRow := rows[0]
		bestVal := g.Power[bestRow][c]

		for _, r := range rows[1:] {
			if g.Power[r][c] > bestVal {
				bestVal = g.Power[r][c]
				bestRow = r
			}
		}

		out[c] = g.Frequencies[bestRow]
	}

	return out
}

// TrackPeak is [TrackDominant] with parabolic sub-bin interpolation around
// each frame's peak for finer frequency estimates.
func TrackPeak(g Grid, minFreq, maxFreq float64) []float64 {
	rows := bandRows(g, minFreq, maxFreq)
	out := make([]float64, g.Frames())

	if len(rows) < 3 {
		mid := (minFreq + maxFreq) / 2
		for i := range out {
			out[i] = mid
		}

		return out
	}

	binHz := g.Frequencies[rows[1]] - g.Frequencies[rows[0]]

	frame := make([]float64, len(rows))
	for c := range out {
		peak := 0
		for i, r := range rows {
			frame[i] = g.Power[r][c]
			if frame[i] > frame[peak] {
				peak = i
			}
		}

		offset := ParabolicPeakOffset(frame, peak)
		out[c] = g.Frequencies[rows[peak]] + offset*binHz
	}

	return out
}

// bandRows returns the grid row indices whose frequencies lie in
// [minFreq, maxFreq].
func bandRows(g Grid, minFreq, maxFreq float64) []int {
	var rows []int
	for r, f := range g.Frequencies {
		if f >= minFreq && f <= maxFreq {
			rows = append(rows, r)
		}
	}

	return rows
}
