package model

// OpenResult итог попытки открыть ссылку
type OpenResult int

const (
	OpenOK OpenResult = iota
	OpenNotFound
	OpenInactive
	OpenExpired
	OpenLimitExceeded
)

func (r OpenResult) String() string {
	switch r {
	case OpenOK:
		return "OK"
	case OpenNotFound:
		return "NOT_FOUND"
	case OpenInactive:
		return "INACTIVE"
	case OpenExpired:
		return "EXPIRED"
	case OpenLimitExceeded:
		return "LIMIT_EXCEEDED"
	default:
		return "UNKNOWN"
	}
}
