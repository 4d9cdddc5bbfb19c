package cache

// Keyer produces cache keys.
type Keyer interface {
	// ArtifactKey returns the key of an artifact rendered from the layout
	// whose content hash is layoutHash.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts holds every render input that changes artifact bytes.
type ArtifactKeyOpts struct {
	Format  string `json:"format"`
	Fill    string `json:"fill,omitempty"`
	Outline bool   `json:"outline,omitempty"`
}

// DefaultKeyer derives keys by hashing their components.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default key scheme.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ArtifactKey returns "artifact:<sha256(layoutHash, opts)>".
func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}
