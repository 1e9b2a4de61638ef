package generator

const upperhex = "0123456789ABCDEF"

// AppendKey appends v rendered as exactly width uppercase hexadecimal
// digits, left-padded with zeros. Digits that do not fit in width are
// dropped; callers must size width to the largest value they render.
func AppendKey(dst []byte, v uint64, width int) []byte {
	n := len(dst)
	for i := 0; i < width; i++ {
		dst = append(dst, '0')
	}
	for i := n + width - 1; i >= n; i-- {
		dst[i] = upperhex[v&0xf]
		v >>= 4
	}
	return dst
}

// FormatKey returns v as a fixed-width uppercase hex key.
func FormatKey(v uint64, width int) string {
	return string(AppendKey(make([]byte, 0, width), v, width))
}

// Count returns the inclusive size of the range [start, end].
func Count(start, end uint64) uint64 {
	return end - start + 1
}

// HexWidth returns the number of hex digits needed to represent v.
func HexWidth(v uint64) int {
	width := 1
	for v > 0xf {
		v >>= 4
		width++
	}
	return width
}
