// Package runner provides multi-file analysis orchestration: Rust file
// discovery and a bounded worker pool with deterministic result order.
package runner

// rustExtension is the file extension considered Rust source.
const rustExtension = ".rs"

// Options controls discovery and concurrency.
type Options struct {
	// Paths are the user-specified paths (files or directories) to
	// process. Empty defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// Empty means the process working directory.
	WorkingDir string

	// ExcludeGlobs are glob patterns used to skip files or directories,
	// matched against slash-separated paths relative to WorkingDir.
	ExcludeGlobs []string

	// Jobs is the maximum number of concurrent workers. Zero or
	// negative means one per CPU.
	Jobs int
}

// effectivePaths returns the paths to process, defaulting to "." if empty.
func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
