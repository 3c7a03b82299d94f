package editor

// Property identifies one editable top-level embed property. It replaces the
// stringly-typed menu values on the wire with a typed variant so dispatch
// sites can switch exhaustively.
type Property int

const (
	PropColor Property = iota
	PropTitle
	PropURL
	PropAuthor
	PropDescription
	PropThumbnail
	PropFields
	PropImage
	PropTimestamp
	PropFooter
)

// initialPropertyCount is the number of top-level properties a fresh draft
// carries.
const initialPropertyCount = 10

// allProperties lists every property in menu order.
var allProperties = []Property{
	PropColor,
	PropTitle,
	PropURL,
	PropAuthor,
	PropDescription,
	PropThumbnail,
	PropFields,
	PropImage,
	PropTimestamp,
	PropFooter,
}

// String returns the wire value used by the select menu.
func (p Property) String() string {
	switch p {
	case PropColor:
		return "color"
	case PropTitle:
		return "title"
	case PropURL:
		return "url"
	case PropAuthor:
		return "author"
	case PropDescription:
		return "description"
	case PropThumbnail:
		return "thumbnail"
	case PropFields:
		return "fields"
	case PropImage:
		return "image"
	case PropTimestamp:
		return "timestamp"
	case PropFooter:
		return "footer"
	}
	return "unknown"
}

// ParseProperty maps a select-menu value back to its Property.
func ParseProperty(value string) (Property, bool) {
	for _, p := range allProperties {
		if p.String() == value {
			return p, true
		}
	}
	return 0, false
}
