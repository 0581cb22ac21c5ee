package toolchain

import "strings"

// Placeholder names recognized in SDK path templates.
const (
	PlaceholderDrive      = "drive"
	PlaceholderSDKVersion = "sdk-version"
	PlaceholderPlatform   = "platform"
)

// Expand replaces every {name} in template with params[name].
// Placeholders without a value are left untouched.
func Expand(template string, params map[string]string) string {
	if len(params) == 0 {
		return template
	}

	pairs := make([]string, 0, len(params)*2)
	for name, value := range params {
		pairs = append(pairs, "{"+name+"}", value)
	}

	return strings.NewReplacer(pairs...).Replace(template)
}
