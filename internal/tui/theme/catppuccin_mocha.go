package theme

// NewCatppuccinMocha creates the default Catppuccin Mocha theme.
func NewCatppuccinMocha() *Theme {
	return &Theme{
		Name:   "catppuccin-mocha",
		IsDark: true,

		// Semantic colors
		Primary:   "#89b4fa", // Blue
		Secondary: "#94e2d5", // Teal

		// Background hierarchy
		BgBase:    "#1e1e2e", // Base
		BgMantle:  "#181825", // Mantle
		BgSurface: "#313244", // Surface0

		// Foreground hierarchy
		FgMuted:  "#6c7086", // Overlay0
		FgSubtle: "#a6adc8", // Subtext0
		FgBase:   "#cdd6f4", // Main text color

		// Borders
		BorderDefault: "#585b70", // Surface2

		// Status colors
		Success: "#a6e3a1", // Green
		Warning: "#f9e2af", // Yellow
		Error:   "#f38ba8", // Red
		Info:    "#89dceb", // Sky
	}
}
