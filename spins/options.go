package spins

// containerOptions collects the optional knobs shared by all spin containers.
type containerOptions struct {
	numberSpins *int
}

// Option configures a spin container at construction time.
type Option func(*containerOptions)

// WithNumberSpins declares a fixed qubit count for the container. Keys
// touching a qubit at or past n are rejected with ErrNumberSpinsExceeded.
// Panics on negative n (programmer error).
func WithNumberSpins(n int) Option {
	if n < 0 {
		panic("spins: WithNumberSpins requires n >= 0")
	}
	return func(o *containerOptions) {
		bound := n
		o.numberSpins = &bound
	}
}

func applyOptions(opts []Option) containerOptions {
	var o containerOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// checkSpinBound verifies a key's qubit reach against a declared bound.
func checkSpinBound(bound *int, current int) error {
	if bound != nil && current > *bound {
		return ErrNumberSpinsExceeded
	}
	return nil
}
