package scanner

// Class is the category a probe outcome falls into.
type Class int

const (
	Unreachable Class = iota // no response could be obtained
	Success                  // 2xx
	Redirect                 // 3xx
	ClientError              // 4xx
	Other                    // everything else, including 1xx and 5xx
)

var classNames = [...]string{
	Unreachable: "unreachable",
	Success:     "success",
	Redirect:    "redirect",
	ClientError: "clientError",
	Other:       "other",
}

func (c Class) String() string {
	if c < 0 || int(c) >= len(classNames) {
		return "unknown"
	}
	return classNames[c]
}

// UnknownLocation stands in for a redirect without a Location header.
const UnknownLocation = "unknown"

// Outcome is the classified result of probing one URL.
type Outcome struct {
	Word       string
	URL        string // the URL requested last (http:// after a TLS downgrade)
	Class      Class
	StatusCode int    // zero when Unreachable
	Location   string // set only for Redirect
	Downgraded bool   // the https request failed TLS and http was used
	Err        error  // set only for Unreachable
}

// Classify maps a status code to its Class.
func Classify(status int) Class {
	switch {
	case status >= 200 && status < 300:
		return Success
	case status >= 300 && status < 400:
		return Redirect
	case status >= 400 && status < 500:
		return ClientError
	default:
		return Other
	}
}
