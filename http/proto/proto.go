package proto

type Proto uint8

const (
	Unknown Proto = iota
	HTTP10
	HTTP11
)

// FromToken returns a protocol corresponding to the passed version token.
// Recognized tokens are exactly "HTTP/1.0" and "HTTP/1.1"; the two are
// treated as equivalent everywhere else in the server.
func FromToken(token string) Proto {
	switch token {
	case "HTTP/1.0":
		return HTTP10
	case "HTTP/1.1":
		return HTTP11
	default:
		return Unknown
	}
}

func (p Proto) String() string {
	lut := [...]string{HTTP10: "HTTP/1.0", HTTP11: "HTTP/1.1"}
	if int(p) >= len(lut) {
		return ""
	}

	return lut[p]
}
