// Package version enumerates the beacon state forks the rewards engine can be
// handed.
package version

const (
	Phase0 = iota
	Altair
	Bellatrix
)

// String returns the fork name of the version.
func String(version int) string {
	switch version {
	case Phase0:
		return "phase0"
	case Altair:
		return "altair"
	case Bellatrix:
		return "bellatrix"
	default:
		return "unknown version"
	}
}

// FromString parses a fork name. Unknown names report false.
func FromString(name string) (int, bool) {
	switch name {
	case "phase0", "":
		return Phase0, true
	case "altair":
		return Altair, true
	case "bellatrix":
		return Bellatrix, true
	default:
		return 0, false
	}
}
