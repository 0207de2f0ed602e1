package dataset

// Option applies a configuration option to the FSStore.
type Option func(*FSStore)

// WithLayout sets the fmt pattern naming a day's directory, e.g. "day-%d".
func WithLayout(layout string) Option {
	return func(s *FSStore) {
		if layout != "" {
			s.layout = layout
		}
	}
}

// WithSource names the store in errors and metrics, e.g. "embedded" or a
// directory path.
func WithSource(source string) Option {
	return func(s *FSStore) {
		if source != "" {
			s.source = source
		}
	}
}
