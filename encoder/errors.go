package encoder

import "fmt"

// ImmediateRangeError indicates a value that does not fit the signed
// immediate width of the format being assembled.
type ImmediateRangeError struct {
	Value int64
	Width uint
}

func (e *ImmediateRangeError) Error() string {
	return fmt.Sprintf("immediate %d does not fit in %d signed bits", e.Value, e.Width)
}

// CheckImmRange validates that value fits in a signed field of the
// given width before truncating encode functions silently wrap it.
func CheckImmRange(value int64, width uint) error {
	lo := -(int64(1) << (width - 1))
	hi := (int64(1) << (width - 1)) - 1
	if value < lo || value > hi {
		return &ImmediateRangeError{Value: value, Width: width}
	}
	return nil
}
