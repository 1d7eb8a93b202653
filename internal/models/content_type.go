package models

import (
	"fmt"
	"strings"
)

// ContentType is the kind of content a container displays. The set is
// closed; use ParseContentType for user input.
type ContentType string

const (
	ContentHeading       ContentType = "heading"
	ContentText          ContentType = "text"
	ContentImage         ContentType = "image"
	ContentURL           ContentType = "url"
	ContentKPI           ContentType = "kpi"
	ContentBarChart      ContentType = "bar_chart"
	ContentTimelineChart ContentType = "timeline_chart"
)

var contentTypes = []ContentType{
	ContentHeading,
	ContentText,
	ContentImage,
	ContentURL,
	ContentKPI,
	ContentBarChart,
	ContentTimelineChart,
}

var contentLabels = map[ContentType]string{
	ContentHeading:       "Heading",
	ContentText:          "Text",
	ContentImage:         "Image",
	ContentURL:           "URL",
	ContentKPI:           "KPI",
	ContentBarChart:      "Bar chart",
	ContentTimelineChart: "Timeline chart",
}

// ContentTypes lists every content type in display order
func ContentTypes() []ContentType {
	out := make([]ContentType, len(contentTypes))
	copy(out, contentTypes)
	return out
}

// ParseContentType maps user input such as "Bar-Chart" to a content type
func ParseContentType(s string) (ContentType, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	ct := ContentType(normalized)
	if !ct.Valid() {
		names := make([]string, len(contentTypes))
		for i, c := range contentTypes {
			names[i] = string(c)
		}
		return "", fmt.Errorf("invalid content type '%s' (must be: %s)", s, strings.Join(names, ", "))
	}
	return ct, nil
}

// Valid reports whether c is one of the known content types
func (c ContentType) Valid() bool {
	_, ok := contentLabels[c]
	return ok
}

// Label is the human readable name
func (c ContentType) Label() string {
	if label, ok := contentLabels[c]; ok {
		return label
	}
	return string(c)
}

func (c ContentType) String() string {
	return string(c)
}

// MarshalText implements encoding.TextMarshaler
func (c ContentType) MarshalText() ([]byte, error) {
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler and rejects unknown types
func (c *ContentType) UnmarshalText(text []byte) error {
	ct, err := ParseContentType(string(text))
	if err != nil {
		return err
	}
	*c = ct
	return nil
}
