package model

// Format is the container the user picked in the format selector.
// The saved file keeps the fixed extension regardless of the choice.
type Format string

const (
	FormatMP4  Format = "mp4"
	FormatMP3  Format = "mp3"
	FormatWebM Format = "webm"
)

// FileExtension is appended to the video title when the payload is saved
const FileExtension = ".mp4"

// DefaultFormat is selected when the form is created
const DefaultFormat = FormatMP4

// Formats returns the selectable formats in display order
func Formats() []Format {
	return []Format{FormatMP4, FormatMP3, FormatWebM}
}

// Label returns the human readable name used in selectors
func (f Format) Label() string {
	switch f {
	case FormatMP4:
		return "MP4"
	case FormatMP3:
		return "MP3 (Audio only)"
	case FormatWebM:
		return "WebM"
	default:
		return string(f)
	}
}

// ParseFormatLabel maps a selector label back to its Format
func ParseFormatLabel(label string) (Format, bool) {
	for _, f := range Formats() {
		if f.Label() == label || string(f) == label {
			return f, true
		}
	}
	return "", false
}
