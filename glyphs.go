package weathericon

// Glyph bitmaps and colors, as shipped on the device.

var iconSunny = Icon{
	Name: "sunny",
	Glyph: Glyph{
		{0, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0, 0},
		{0, 0, 0, 1, 0, 1, 1, 0, 1, 0, 0, 0},
		{0, 0, 0, 0, 1, 0, 0, 1, 0, 0, 0, 0},
		{0, 0, 1, 1, 0, 0, 0, 0, 1, 1, 0, 0},
		{0, 0, 1, 1, 0, 0, 0, 0, 1, 1, 0, 0},
		{0, 0, 0, 0, 1, 0, 0, 1, 0, 0, 0, 0},
		{0, 0, 0, 1, 0, 1, 1, 0, 1, 0, 0, 0},
		{0, 0, 1, 0, 0, 0, 0, 0, 0, 1, 0, 0},
	},
	// Warm yellow-orange
	Colors: ColorPair{
		Primary:   RGB{255, 180, 0},
		Secondary: RGB{255, 220, 100},
	},
}

var iconRain = Icon{
	Name: "rain",
	Glyph: Glyph{
		{0, 0, 0, 0, 0, 0, 1, 1, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 1, 0, 1, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0},
		{0, 0, 0, 1, 0, 0, 0, 0, 0, 1, 0, 0},
		{0, 0, 1, 1, 0, 0, 0, 1, 0, 1, 0, 0},
		{0, 0, 1, 1, 1, 1, 1, 0, 1, 1, 0, 0},
		{0, 0, 0, 1, 0, 0, 1, 0, 0, 1, 0, 0},
		{0, 0, 1, 0, 0, 1, 0, 0, 1, 0, 0, 0},
	},
	// White cloud, blue rain
	Colors: ColorPair{
		Primary:   RGB{255, 255, 255},
		Secondary: RGB{0, 120, 255},
	},
}

var iconLightning = Icon{
	Name: "lightning",
	Glyph: Glyph{
		{0, 0, 0, 0, 0, 0, 0, 1, 1, 0, 0, 0},
		{0, 0, 0, 0, 0, 1, 1, 1, 0, 0, 0, 0},
		{0, 0, 0, 1, 1, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 1, 1, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 1, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 1, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	// Bright yellow
	Colors: ColorPair{
		Primary:   RGB{255, 255, 0},
		Secondary: RGB{255, 200, 0},
	},
}

var iconFog = Icon{
	Name: "fog",
	Glyph: Glyph{
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0},
	},
	// Subtle gray
	Colors: ColorPair{
		Primary:   RGB{180, 180, 180},
		Secondary: RGB{220, 220, 220},
	},
}

var iconCloudy = Icon{
	Name: "cloudy",
	Glyph: Glyph{
		{0, 0, 0, 0, 0, 0, 1, 1, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 1, 0, 1, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0},
		{0, 0, 0, 1, 0, 0, 0, 0, 0, 1, 0, 0},
		{0, 0, 1, 1, 0, 0, 0, 1, 0, 1, 0, 0},
		{0, 0, 1, 1, 1, 1, 1, 0, 1, 1, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	// White
	Colors: ColorPair{
		Primary:   RGB{255, 255, 255},
		Secondary: RGB{255, 255, 255},
	},
}

// defaultTable is the compiled-in condition table. Synonyms share an icon.
var defaultTable = mustTable(
	Entry{"Sunny", iconSunny},
	Entry{"Clear", iconSunny},
	Entry{"Rain", iconRain},
	Entry{"Showers", iconRain},
	Entry{"Thunderstorm", iconLightning},
	Entry{"Storm", iconLightning},
	Entry{"Fog", iconFog},
	Entry{"Mist", iconFog},
	Entry{"Cloudy", iconCloudy},
	Entry{"Overcast", iconCloudy},
)
