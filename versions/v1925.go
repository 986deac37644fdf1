package versions

import (
	"strconv"
	"strings"

	"github.com/xmdhs/datafixer/datafix"
	"github.com/xmdhs/datafixer/registry"
	"github.com/xmdhs/datafixer/types"
)

var v1925 = datafix.V(1925)

// textBackgroundOpacity derives the background opacity from the old chat
// opacity setting. Unparsable settings give 0.5.
func textBackgroundOpacity(chatOpacity string) float64 {
	d, err := strconv.ParseFloat(strings.TrimSpace(chatOpacity), 64)
	if err != nil {
		return 0.5
	}
	return (0.9*d + 0.1) / 2
}

// formatOptionDouble writes a double the way the options file stores it,
// always with a fractional part.
func formatOptionDouble(d float64) string {
	s := strconv.FormatFloat(d, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEIN") {
		s += ".0"
	}
	return s
}

func registerV1925(r *registry.Registry) {
	r.Options.AddStructureConverter(v1925, stringKey("chatOpacity", func(data types.Map, opacity string) {
		data.SetString("textBackgroundOpacity", formatOptionDouble(textBackgroundOpacity(opacity)))
	}))
}
