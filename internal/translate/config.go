package translate

// Config holds the options of one reconciliation run.
type Config struct {
	// LowestOnly keeps only targets flagged as lowest level. It has no
	// effect while IncludeSubAssociations is set.
	LowestOnly bool `yaml:"lowest_only"`
	// IncludeSubAssociations keeps sub-association targets. When false they
	// are replaced by their parent association.
	IncludeSubAssociations bool `yaml:"include_subassociations"`
}

// DefaultConfig returns the default reconciliation configuration.
func DefaultConfig() Config {
	return Config{
		LowestOnly:             false,
		IncludeSubAssociations: true,
	}
}

// lowestOnly is the effective lowest-level filter; it is forced off while
// sub-associations are kept.
func (c Config) lowestOnly() bool {
	return c.LowestOnly && !c.IncludeSubAssociations
}
