package mime

import "strings"

type MIME = string

const (
	// Unknown is made up on purpose: clients that don't recognize it will
	// usually offer to save the file instead of rendering it.
	Unknown MIME = "x-application/x-unknown"

	Plain MIME = "text/plain"
	HTML  MIME = "text/html"
	CSS   MIME = "text/css"
	JS    MIME = "text/javascript"
	Java  MIME = "text/x-java"
	JPEG  MIME = "image/jpeg"
	PNG   MIME = "image/png"
	GIF   MIME = "image/gif"
	ICO   MIME = "image/x-icon"
	Class MIME = "application/java-vm"
	JAR   MIME = "application/java-archive"
	ZIP   MIME = "application/zip"
	XML   MIME = "application/xml"
	XHTML MIME = "application/xhtml+xml"
)

var Extension = map[string]MIME{
	"txt":   Plain,
	"html":  HTML,
	"htm":   HTML,
	"css":   CSS,
	"js":    JS,
	"java":  Java,
	"jpeg":  JPEG,
	"jpg":   JPEG,
	"png":   PNG,
	"gif":   GIF,
	"ico":   ICO,
	"class": Class,
	"jar":   JAR,
	"zip":   ZIP,
	"xml":   XML,
	"xhtml": XHTML,
}

// OfFile resolves the content type of a file by the extension after the last
// dot in its name, case-insensitively. The function is total: names without
// an extension, and extensions outside the table, resolve to Unknown.
func OfFile(fileName string) MIME {
	dot := strings.LastIndexByte(fileName, '.')
	if dot == -1 {
		return Unknown
	}

	if m, found := Extension[strings.ToLower(fileName[dot+1:])]; found {
		return m
	}

	return Unknown
}
