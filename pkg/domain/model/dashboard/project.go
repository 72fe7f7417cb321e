package dashboard

// Project is a deployed web project. Fully static.
type Project struct {
	Name        string `json:"name" yaml:"name"`
	URL         string `json:"url" yaml:"url"`
	Description string `json:"description" yaml:"description"`
	Status      string `json:"status" yaml:"status"`
	Icon        string `json:"icon" yaml:"icon"`
}

// System holds the overall flags shown on the home section. They never follow upstream state.
type System struct {
	Gateway   bool `json:"gateway" yaml:"gateway"`
	Tailscale bool `json:"tailscale" yaml:"tailscale"`
}
