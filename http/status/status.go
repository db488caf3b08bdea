package status

type (
	Code   uint16
	Status string
)

// The closed set of outcomes the server can produce. Every response on the
// wire carries exactly one of these.
const (
	OK                  Code = 200
	BadRequest          Code = 400
	Forbidden           Code = 403
	NotFound            Code = 404
	InternalServerError Code = 500
	NotImplemented      Code = 501
)

// Text returns a text for the status code. It returns the empty string if
// the code is unknown.
func Text(code Code) Status {
	switch code {
	case OK:
		return "OK"
	case BadRequest:
		return "Bad Request"
	case Forbidden:
		return "Forbidden"
	case NotFound:
		return "Not Found"
	case InternalServerError:
		return "Internal Server Error"
	case NotImplemented:
		return "Not Implemented"
	default:
		return ""
	}
}

// Line returns the complete status line for the code, without the trailing
// line break.
func Line(code Code) string {
	switch code {
	case OK:
		return "HTTP/1.1 200 OK"
	case BadRequest:
		return "HTTP/1.1 400 Bad Request"
	case Forbidden:
		return "HTTP/1.1 403 Forbidden"
	case NotFound:
		return "HTTP/1.1 404 Not Found"
	case InternalServerError:
		return "HTTP/1.1 500 Internal Server Error"
	case NotImplemented:
		return "HTTP/1.1 501 Not Implemented"
	default:
		return Line(InternalServerError)
	}
}

// FromCode maps a numeric code back onto the catalog. Unknown codes degrade
// to InternalServerError, so the error path itself can never fail.
func FromCode(code int) Code {
	switch c := Code(code); c {
	case OK, BadRequest, Forbidden, NotFound, InternalServerError, NotImplemented:
		return c
	default:
		return InternalServerError
	}
}
