package method

type Method uint8

const (
	Unknown Method = iota
	GET
)

// Parse returns a method corresponding to the passed token. The supported
// set is a singleton: everything except GET parses to Unknown.
func Parse(token string) Method {
	if token == "GET" {
		return GET
	}

	return Unknown
}

func (m Method) String() string {
	if m == GET {
		return "GET"
	}

	return "<unknown method>"
}
