// Package assets bundles the widget's icon set and the provider code table.
package assets

import (
	"embed"
	"io/fs"

	"weatherwidget.app/internal/core/weather"
)

// IconPathPrefix is where the icons are served from
const IconPathPrefix = "/static/icons/"

// Bundled icon file names
const (
	Search       = "search.svg"
	CloudSunny   = "cloud-sunny.svg"
	Cloud        = "cloud.svg"
	HeavyRain    = "heavy-rain.svg"
	Rain         = "rain.svg"
	Snow         = "snow.svg"
	SunLight     = "sun-light.svg"
	Thunderstorm = "thunderstorm.svg"
	Humidity     = "menu.svg"
	Wind         = "wind.svg"
	MapPin       = "map-pin.svg"
)

//go:embed icons/*.svg
var embedded embed.FS

// conditionIcons maps OpenWeatherMap icon codes to file names. Day and night
// variants share an asset; 04x maps to rain, 50x (mist) is not listed.
var conditionIcons = map[string]string{
	"01d": SunLight,
	"01n": SunLight,
	"02d": CloudSunny,
	"02n": CloudSunny,
	"03d": Cloud,
	"03n": Cloud,
	"04d": Rain,
	"04n": Rain,
	"09d": HeavyRain,
	"09n": HeavyRain,
	"10d": HeavyRain,
	"10n": HeavyRain,
	"11d": Thunderstorm,
	"11n": Thunderstorm,
	"13d": Snow,
	"13n": Snow,
}

// FS returns the icon files rooted at the icons directory
func FS() fs.FS {
	sub, err := fs.Sub(embedded, "icons")
	if err != nil {
		// the directory is embedded at build time
		panic(err)
	}
	return sub
}

// Ref returns the served path of a bundled file
func Ref(name string) string {
	return IconPathPrefix + name
}

// NewIconMap builds the immutable provider-code table with served paths
func NewIconMap() weather.IconMap {
	table := make(map[string]string, len(conditionIcons))
	for code, name := range conditionIcons {
		table[code] = Ref(name)
	}
	return weather.NewIconMap(table, Ref(SunLight))
}

// Codes returns a copy of the provider-code table keyed to file names
func Codes() map[string]string {
	codes := make(map[string]string, len(conditionIcons))
	for code, name := range conditionIcons {
		codes[code] = name
	}
	return codes
}

// Names lists every bundled file
func Names() []string {
	return []string{
		Search, CloudSunny, Cloud, HeavyRain, Rain, Snow,
		SunLight, Thunderstorm, Humidity, Wind, MapPin,
	}
}
