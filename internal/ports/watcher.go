package ports

// Watcher monitors a single puzzle input file and reports when it changes.
// Editors often save by writing a temp file and renaming it over the
// original, so adapters watch the containing directory and filter by name.
// Only one Watch call should be active at a time.
type Watcher interface {
	// Watch starts monitoring filePath. onChange is called with the
	// absolute path of the file after each burst of writes settles. The
	// callback may be invoked from any goroutine. Returns an error if the
	// containing directory doesn't exist or can't be watched.
	Watch(filePath string, onChange func(filePath string)) error

	// Stop ends monitoring and releases all resources. After Stop returns,
	// no further onChange calls will fire and none is still running, so
	// Stop must not be called from inside onChange. Safe to call multiple
	// times.
	Stop() error
}
