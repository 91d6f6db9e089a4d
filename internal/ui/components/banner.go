package components

import "strings"

var bannerRows = []string{
	" ██╗     ██╗███╗   ██╗ ██████╗ ██╗   ██╗██╗███████╗████████╗",
	" ██║     ██║████╗  ██║██╔════╝ ██║   ██║██║██╔════╝╚══██╔══╝",
	" ██║     ██║██╔██╗ ██║██║  ███╗██║   ██║██║███████╗   ██║",
	" ██║     ██║██║╚██╗██║██║   ██║██║   ██║██║╚════██║   ██║",
	" ███████╗██║██║ ╚████║╚██████╔╝╚██████╔╝██║███████║   ██║",
	" ╚══════╝╚═╝╚═╝  ╚═══╝ ╚═════╝  ╚═════╝ ╚═╝╚══════╝   ╚═╝",
}

// BannerMinWidth is the narrowest width that fits the block-letter banner.
const BannerMinWidth = 62

// Banner returns the unstyled app name, in block letters or as one
// spaced-out line when compact.
func Banner(compact bool) string {
	if compact {
		return "L · I · N · G · U · I · S · T"
	}
	return strings.Join(bannerRows, "\n")
}
