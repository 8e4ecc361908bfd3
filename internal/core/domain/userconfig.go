package domain

import "slices"

// UserConfig is the persisted per-user state: the ordered list of known installation roots.
type UserConfig struct {
	Paths []string `json:"path"`
}

// Add appends root unless it is already registered. It reports whether the list changed.
func (c *UserConfig) Add(root string) bool {
	if slices.Contains(c.Paths, root) {
		return false
	}
	c.Paths = append(c.Paths, root)
	return true
}

// KeymapKind selects keyboard mappings or mapping settings profiles.
type KeymapKind uint8

const (
	// KindMapping is a .kmp keyboard mapping.
	KindMapping KeymapKind = iota
	// KindProfile is a .smp mapping settings profile.
	KindProfile
)

// Ext returns the file extension of the kind.
func (k KeymapKind) Ext() string {
	if k == KindProfile {
		return ProfileExt
	}
	return KeymapExt
}

func (k KeymapKind) String() string {
	if k == KindProfile {
		return "profile"
	}
	return "mapping"
}
