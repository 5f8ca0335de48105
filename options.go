package untimed

// Option configures a Shell at construction time.
type Option func(*Shell)

// WithTracer installs a Tracer for diagnostic output; the default is
// DefaultTracer, which discards everything.
func WithTracer(t Tracer) Option {
	return func(s *Shell) { s.tracer = t }
}
