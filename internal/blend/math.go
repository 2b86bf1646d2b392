package blend

// div255 divides x by 255 with round-to-nearest, without using division.
//
// Formula: ((x + 128) + ((x + 128) >> 8)) >> 8
//
// Exact for every product of two bytes, which keeps repeated overdraw
// pixel-deterministic.
func div255(x uint16) uint16 {
	t := x + 128
	return (t + (t >> 8)) >> 8
}

// mulDiv255 multiplies two bytes and divides by 255.
func mulDiv255(a, b byte) byte {
	return byte(div255(uint16(a) * uint16(b)))
}

// addClamp adds two bytes and clamps to 255.
func addClamp(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}

// absDiff returns |a - b|.
func absDiff(a, b byte) byte {
	if a > b {
		return a - b
	}
	return b - a
}

func minByte(a, b byte) byte {
	if a < b {
		return a
	}
	return b
}

func maxByte(a, b byte) byte {
	if a > b {
		return a
	}
	return b
}
