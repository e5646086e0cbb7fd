package gurobi

type Option func(*Model) error

// WithLogger routes the engine's log stream to the given logger.
func WithLogger(logger Logger) Option {
	return func(m *Model) error {
		m.logger = logger

		return nil
	}
}

// WithName sets the name of the engine model (purely informational).
func WithName(name string) Option {
	return func(m *Model) error {
		m.name = name

		return nil
	}
}

// WithOutputEnabled turns the engine's console output on from the start,
// including the license banner printed while the environment starts.
func WithOutputEnabled() Option {
	return func(m *Model) error {
		m.setIntParam(paramLogToConsole, 1)

		return nil
	}
}
