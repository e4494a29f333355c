package fermions

// containerOptions collects the optional knobs shared by all fermion
// containers.
type containerOptions struct {
	numberModes *int
}

// Option configures a fermion container at construction time.
type Option func(*containerOptions)

// WithNumberModes declares a fixed mode count for the container. Keys
// touching a mode at or past n are rejected with ErrNumberModesExceeded.
// Panics on negative n (programmer error).
func WithNumberModes(n int) Option {
	if n < 0 {
		panic("fermions: WithNumberModes requires n >= 0")
	}
	return func(o *containerOptions) {
		bound := n
		o.numberModes = &bound
	}
}

func applyOptions(opts []Option) containerOptions {
	var o containerOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// checkModeBound verifies a key's mode reach against a declared bound.
func checkModeBound(bound *int, current int) error {
	if bound != nil && current > *bound {
		return ErrNumberModesExceeded
	}
	return nil
}
