package domain

// ScanRequest describes a single scan. It is built once from configuration
// and passed by value.
type ScanRequest struct {
	BaseDir         string   // Root of the scan
	Includes        []string // Include globs, empty means all files
	Excludes        []string // Exclude globs
	CaseSensitive   bool     // Match case exactly
	PrefixWithSlash bool     // Prepend "/" to every matched path
}

// Suite names the generated JUnit suite class
type Suite struct {
	Package string
	Class   string
}

// Result describes a completed generation
type Result struct {
	Files      []string // Rendered paths, in traversal order
	Format     Format
	OutputFile string
	Bytes      int
}
