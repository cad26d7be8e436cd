package bfvm

// The cell helpers return the new value, or the error kind and the unchanged
// value. Wrapping is explicit so that 64-bit cells do not lean on native
// overflow.

func incrementCell(v, max uint64, wrap bool) (uint64, error) {
	if v >= max {
		if wrap {
			return 0, nil
		}
		return v, ErrCellOverflow
	}
	return v + 1, nil
}

func decrementCell(v, max uint64, wrap bool) (uint64, error) {
	if v == 0 {
		if wrap {
			return max, nil
		}
		return v, ErrCellUnderflow
	}
	return v - 1, nil
}

// inputCell reduces an input byte modulo 2^bits. max+1 is a power of two, so
// the reduction is a mask.
func inputCell(b byte, max uint64, wrap bool) (uint64, error) {
	v := uint64(b)
	if v > max {
		if wrap {
			return v & max, nil
		}
		return v, ErrCellOverflow
	}
	return v, nil
}
