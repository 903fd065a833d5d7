package richtext

import (
	"regexp"
	"strings"
)

var colorDeclRE = regexp.MustCompile(`color:\s*([^;]+)`)

// Legacy toolbar builds toggled utility classes instead of patching the
// inline style; documents written by them carry the class marker where the
// declaration would be.
var classColors = []struct {
	marker string
	hex    string
}{
	{"text-red-500", "#ef4444"},
	{"text-blue-500", "#3b82f6"},
}

// ResolveColor extracts a foreground color from a run's style string.
// A structured color: declaration wins; the class-name table is the fallback.
func ResolveColor(style string) (string, bool) {
	if m := colorDeclRE.FindStringSubmatch(style); m != nil {
		if c := strings.TrimSpace(m[1]); c != "" {
			return c, true
		}
	}
	for _, cc := range classColors {
		if strings.Contains(style, cc.marker) {
			return cc.hex, true
		}
	}
	return "", false
}
