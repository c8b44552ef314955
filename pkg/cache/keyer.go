package cache

// Keyer derives cache keys.
type Keyer interface {
	MazeKey(opts MazeKeyOpts) string
}

// MazeKeyOpts are the parameters that fully determine an encoding.
type MazeKeyOpts struct {
	Height    int    `json:"h"`
	Width     int    `json:"w"`
	Seed      uint64 `json:"seed"`
	Algorithm string `json:"algo"`
	Mode      string `json:"mode"`
}

// DefaultKeyer hashes key parameters with a fixed prefix per kind.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// MazeKey returns "maze:<sha256>" over opts.
func (DefaultKeyer) MazeKey(opts MazeKeyOpts) string {
	return hashKey("maze", opts)
}
