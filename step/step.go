package step

// Decode converts data into an ordered sequence of directions.
//
// Every byte contributes four directions taken from bit pairs 0–1, 2–3,
// 4–5 and 6–7, in that order. When limit > 0 the sequence is cut after
// limit directions; when the data holds fewer than limit directions all of
// them are returned and nothing is padded. limit == 0 means "all of them".
// Negative limits are treated like 0.
//
// Empty data yields an empty, non-nil slice.
// Complexity: O(min(limit, 4·len(data))).
func Decode(data []byte, limit int) []Direction {
	n := StepsPerByte * len(data)
	if limit > 0 && limit < n {
		n = limit
	}

	out := make([]Direction, 0, n)
	for _, b := range data {
		for shift := 0; shift < StepsPerByte*bitsPerStep; shift += bitsPerStep {
			if len(out) == n {
				return out
			}
			out = append(out, FromBits(b>>shift))
		}
	}

	return out
}
