package imagefile

import (
	"bytes"

	"github.com/bep/imagemeta"
)

// Attribution holds the copyright fields carried over from the source file so
// marketplace exports keep the photographer's attribution.
type Attribution struct {
	Copyright string
	Artist    string
}

var attributionTags = map[imagemeta.Source]map[string]bool{
	imagemeta.EXIF: {
		"Copyright": true,
		"Artist":    true,
	},
	imagemeta.IPTC: {
		"CopyrightNotice": true,
		"Byline":          true,
	},
}

// extractAttribution parses EXIF/IPTC attribution from raw image bytes.
// Graceful degradation: parse failures yield an empty Attribution.
func extractAttribution(data []byte) Attribution {
	var attr Attribution
	if len(data) == 0 {
		return attr
	}

	_ = imagemeta.Decode(imagemeta.Options{
		R:       bytes.NewReader(data),
		Sources: imagemeta.EXIF | imagemeta.IPTC,
		ShouldHandleTag: func(ti imagemeta.TagInfo) bool {
			if tags, ok := attributionTags[ti.Source]; ok {
				return tags[ti.Tag]
			}
			return false
		},
		HandleTag: func(ti imagemeta.TagInfo) error {
			value := tagValueString(ti.Value)
			if value == "" {
				return nil
			}
			switch ti.Tag {
			case "Copyright", "CopyrightNotice":
				if attr.Copyright == "" {
					attr.Copyright = value
				}
			case "Artist", "Byline":
				if attr.Artist == "" {
					attr.Artist = value
				}
			}
			return nil
		},
	})

	return attr
}

// tagValueString extracts a string from a tag value. XMP-derived values may
// arrive as string slices.
func tagValueString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case []string:
		if len(val) > 0 {
			return val[0]
		}
	case []any:
		if len(val) > 0 {
			if s, ok := val[0].(string); ok {
				return s
			}
		}
	}
	return ""
}
