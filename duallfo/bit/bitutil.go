package bit

// IsSet will check if the bit at the specified index is set to 1 or not.
func IsSet(index, value uint16) bool {
	return ((value >> index) & 1) == 1
}

// Set will return the passed value with the bit at the specified index set to 1.
func Set(index, value uint16) uint16 {
	return value | (1 << index)
}

// Clear will return the passed value with the bit at the specified index set to 0.
func Clear(index, value uint16) uint16 {
	return value & ^(1 << index)
}

// Assign sets or clears the bit at index depending on on.
func Assign(index, value uint16, on bool) uint16 {
	if on {
		return Set(index, value)
	}
	return Clear(index, value)
}

// String renders the lowest width bits of value, most significant first,
// using on and off runes.
func String(value uint16, width int, on, off rune) string {
	out := make([]rune, width)
	for i := 0; i < width; i++ {
		if IsSet(uint16(width-1-i), value) {
			out[i] = on
		} else {
			out[i] = off
		}
	}
	return string(out)
}
