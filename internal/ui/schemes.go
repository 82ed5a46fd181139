package ui

// colorSchemes lists the selectable palettes in cycle order. The first is the default.
var colorSchemes = []ColorScheme{
	{
		ID:    "blue",
		Label: "Default",
		Tokens: SchemeTokens{
			Primary:            "#2563eb",
			PrimaryHover:       "#1d4ed8",
			PrimaryDark:        "#1e40af",
			PrimaryLightBg:     "#dbeafe",
			PrimaryLightBgDark: "#1e3a8a",
			PrimaryText:        "#1d4ed8",
			PrimaryTextDark:    "#60a5fa",
			PrimaryBorder:      "#3b82f6",
			OnPrimary:          "#ffffff",
			Page:               "#e8f0ff",
			PageDark:           "#0d101c",
			Surface:            "#f1f7ff",
			SurfaceDark:        "#161c2d",
		},
	},
	{
		ID:    "ocean",
		Label: "Ocean",
		Tokens: SchemeTokens{
			Primary:            "#0d9488",
			PrimaryHover:       "#0f766e",
			PrimaryDark:        "#115e59",
			PrimaryLightBg:     "#ccfbf1",
			PrimaryLightBgDark: "#134e4a",
			PrimaryText:        "#0f766e",
			PrimaryTextDark:    "#5eead4",
			PrimaryBorder:      "#14b8a6",
			OnPrimary:          "#ffffff",
			Page:               "#e4f8f5",
			PageDark:           "#0c1314",
			Surface:            "#eefcf9",
			SurfaceDark:        "#09454f",
		},
	},
	{
		ID:    "forest",
		Label: "Forest",
		Tokens: SchemeTokens{
			Primary:            "#059669",
			PrimaryHover:       "#047857",
			PrimaryDark:        "#065f46",
			PrimaryLightBg:     "#d1fae5",
			PrimaryLightBgDark: "#064e3b",
			PrimaryText:        "#047857",
			PrimaryTextDark:    "#6ee7b7",
			PrimaryBorder:      "#10b981",
			OnPrimary:          "#ffffff",
			Page:               "#e4f8ee",
			PageDark:           "#0c130f",
			Surface:            "#edfcf4",
			SurfaceDark:        "#153625",
		},
	},
	{
		ID:    "sunset",
		Label: "Red Alert",
		Tokens: SchemeTokens{
			Primary:            "#dc2626",
			PrimaryHover:       "#b91c1c",
			PrimaryDark:        "#991b1b",
			PrimaryLightBg:     "#fee2e2",
			PrimaryLightBgDark: "#7f1d1d",
			PrimaryText:        "#b91c1c",
			PrimaryTextDark:    "#f87171",
			PrimaryBorder:      "#ef4444",
			OnPrimary:          "#ffffff",
			Page:               "#ffebeb",
			PageDark:           "#260000",
			Surface:            "#fff3f3",
			SurfaceDark:        "#440100",
		},
	},
	{
		ID:    "rose",
		Label: "Rose",
		Tokens: SchemeTokens{
			Primary:            "#db2777",
			PrimaryHover:       "#be185d",
			PrimaryDark:        "#9d174d",
			PrimaryLightBg:     "#fce7f3",
			PrimaryLightBgDark: "#831843",
			PrimaryText:        "#be185d",
			PrimaryTextDark:    "#f472b6",
			PrimaryBorder:      "#ec4899",
			OnPrimary:          "#ffffff",
			Page:               "#fce8f3",
			PageDark:           "#2f0017",
			Surface:            "#fdf2f9",
			SurfaceDark:        "#841c51",
		},
	},
	{
		ID:    "violet",
		Label: "Grape",
		Tokens: SchemeTokens{
			Primary:            "#9333ea",
			PrimaryHover:       "#7e22ce",
			PrimaryDark:        "#6b21a8",
			PrimaryLightBg:     "#ede2ff",
			PrimaryLightBgDark: "#4c1d95",
			PrimaryText:        "#7e22ce",
			PrimaryTextDark:    "#c084fc",
			PrimaryBorder:      "#a855f7",
			OnPrimary:          "#ffffff",
			Page:               "#f3ebff",
			PageDark:           "#100d1a",
			Surface:            "#f7f3ff",
			SurfaceDark:        "#30165c",
		},
	},
	{
		ID:        "glass",
		Label:     "Glass",
		ForceDark: true,
		Tokens: SchemeTokens{
			Primary:            "#818cf8",
			PrimaryHover:       "#6366f1",
			PrimaryDark:        "#4338ca",
			PrimaryLightBg:     "#312e81",
			PrimaryLightBgDark: "#312e81",
			PrimaryText:        "#a5b4fc",
			PrimaryTextDark:    "#a5b4fc",
			PrimaryBorder:      "#818cf8",
			OnPrimary:          "#ffffff",
			Page:               "#0f172a",
			PageDark:           "#0f172a",
			Surface:            "#1e1b4b",
			SurfaceDark:        "#1e1b4b",
		},
	},
	{
		ID:        "cinema",
		Label:     "Cinema",
		ForceDark: true,
		Tokens: SchemeTokens{
			Primary:            "#d4af37",
			PrimaryHover:       "#bc9b28",
			PrimaryDark:        "#8a6d3b",
			PrimaryLightBg:     "#1e190a",
			PrimaryLightBgDark: "#1e190a",
			PrimaryText:        "#d4af37",
			PrimaryTextDark:    "#d4af37",
			PrimaryBorder:      "#8a6d3b",
			OnPrimary:          "#0d0d0d",
			Page:               "#1a1a1a",
			PageDark:           "#1a1a1a",
			Surface:            "#0d0d0d",
			SurfaceDark:        "#0d0d0d",
		},
	},
	{
		ID:        "gaming",
		Label:     "Gaming",
		ForceDark: true,
		Tokens: SchemeTokens{
			Primary:            "#00d2ff",
			PrimaryHover:       "#bc13fe",
			PrimaryDark:        "#1b1b2f",
			PrimaryLightBg:     "#00d2ff",
			PrimaryLightBgDark: "#001e32",
			PrimaryText:        "#00d2ff",
			PrimaryTextDark:    "#00d2ff",
			PrimaryBorder:      "#00d2ff",
			OnPrimary:          "#05050a",
			Page:               "#05050a",
			PageDark:           "#05050a",
			Surface:            "#0c0c12",
			SurfaceDark:        "#0c0c12",
		},
	},
	{
		ID:        "royale",
		Label:     "Royale",
		ForceDark: true,
		Tokens: SchemeTokens{
			Primary:            "#007bff",
			PrimaryHover:       "#f8fb11",
			PrimaryDark:        "#112a5e",
			PrimaryLightBg:     "#0b1a3d",
			PrimaryLightBgDark: "#0b1a3d",
			PrimaryText:        "#f8fb11",
			PrimaryTextDark:    "#f8fb11",
			PrimaryBorder:      "#112a5e",
			OnPrimary:          "#000000",
			Page:               "#050505",
			PageDark:           "#050505",
			Surface:            "#020b24",
			SurfaceDark:        "#020b24",
		},
	},
	{
		ID:        "lcars",
		Label:     "LCARS",
		ForceDark: true,
		Tokens: SchemeTokens{
			Primary:            "#ff9900",
			PrimaryHover:       "#ffcc33",
			PrimaryDark:        "#281e00",
			PrimaryLightBg:     "#9999ff",
			PrimaryLightBgDark: "#1e1e3c",
			PrimaryText:        "#ffcc33",
			PrimaryTextDark:    "#ff9900",
			PrimaryBorder:      "#ff9900",
			OnPrimary:          "#000000",
			Page:               "#000000",
			PageDark:           "#000000",
			Surface:            "#000000",
			SurfaceDark:        "#000000",
		},
	},
	{
		ID:        "tactical",
		Label:     "Tactical",
		ForceDark: true,
		Tokens: SchemeTokens{
			Primary:            "#64ffda",
			PrimaryHover:       "#50c8af",
			PrimaryDark:        "#0a192f",
			PrimaryLightBg:     "#0a192f",
			PrimaryLightBgDark: "#0a192f",
			PrimaryText:        "#64ffda",
			PrimaryTextDark:    "#64ffda",
			PrimaryBorder:      "#64ffda",
			OnPrimary:          "#020617",
			Page:               "#020617",
			PageDark:           "#020617",
			Surface:            "#0a192f",
			SurfaceDark:        "#0a192f",
		},
	},
	{
		ID:        "craft",
		Label:     "Craft",
		ForceDark: true,
		Tokens: SchemeTokens{
			Primary:            "#38ff38",
			PrimaryHover:       "#8080ff",
			PrimaryDark:        "#222222",
			PrimaryLightBg:     "#4a4a4a",
			PrimaryLightBgDark: "#4a4a4a",
			PrimaryText:        "#38ff38",
			PrimaryTextDark:    "#38ff38",
			PrimaryBorder:      "#000000",
			OnPrimary:          "#e0e0e0",
			Page:               "#1e1e1e",
			PageDark:           "#1e1e1e",
			Surface:            "#313131",
			SurfaceDark:        "#313131",
		},
	},
	{
		ID:        "terminal",
		Label:     "Terminal",
		ForceDark: true,
		Tokens: SchemeTokens{
			Primary:            "#39ff14",
			PrimaryHover:       "#2dc810",
			PrimaryDark:        "#0a1a05",
			PrimaryLightBg:     "#0a1a05",
			PrimaryLightBgDark: "#0a1a05",
			PrimaryText:        "#39ff14",
			PrimaryTextDark:    "#39ff14",
			PrimaryBorder:      "#39ff14",
			OnPrimary:          "#050505",
			Page:               "#050505",
			PageDark:           "#050505",
			Surface:            "#080808",
			SurfaceDark:        "#080808",
		},
	},
}
