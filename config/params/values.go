package params

const (
	Mainnet ConfigName = iota
	Minimal
	EndToEnd
)

// ConfigNames provides network configuration names.
var ConfigNames = map[ConfigName]string{
	Mainnet:  "mainnet",
	Minimal:  "minimal",
	EndToEnd: "end-to-end",
}

// ConfigName enum describes the type of known network in use.
type ConfigName int

func (n ConfigName) String() string {
	s, ok := ConfigNames[n]
	if !ok {
		return "undefined"
	}
	return s
}

// ByName returns a fresh copy of the named config, or false if the name is unknown.
func ByName(name string) (*BeaconChainConfig, bool) {
	switch name {
	case ConfigNames[Mainnet]:
		return MainnetConfig(), true
	case ConfigNames[Minimal]:
		return MinimalSpecConfig(), true
	case ConfigNames[EndToEnd]:
		return E2ETestConfig(), true
	}
	return nil, false
}
