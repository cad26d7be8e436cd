package cmds

// Var defines a command that takes one argument and stores it. A second
// occurrence in the same argument list is an error. name+"." resets the
// value to zero.
func Var[T any](name string, desc string, aliases ...string) *T {
	var value T

	// set
	Define(name, Func(func(v T) {
		value = v
	}).Desc(desc).Alias(aliases...).OnlyOnce())

	// set zero
	var zero T
	Define(name+".", Func(func() {
		value = zero
	}))

	return &value
}

func Switch(name string, desc string, aliases ...string) *bool {
	var value bool

	// set true
	Define(name, Func(func() {
		value = true
	}).Desc(desc).Alias(aliases...))

	// set false
	Define("!"+name, Func(func() {
		value = false
	}))

	return &value
}
