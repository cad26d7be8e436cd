package vars

// FirstNonZero picks the first set value in precedence order, such as a
// flag, then a config file, then the environment.
func FirstNonZero[T comparable](values ...T) (ret T) {
	for _, value := range values {
		if value != ret {
			return value
		}
	}
	return
}
