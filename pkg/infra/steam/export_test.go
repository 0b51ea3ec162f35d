package steam

// WithRegistry replaces the registry lookup in tests
func WithRegistry(fn func() (string, error)) Option {
	return func(l *Locator) {
		l.registryPath = fn
	}
}
