package response

const (
	// DateFormat is the wire format for dates.
	DateFormat = "2006-01-02"
	// DateTimeFormat is the wire format for datetimes.
	DateTimeFormat = "2006-01-02 15:04:05"
)

const (
	codeOK            = 0
	codeInternalError = 500
)

const (
	messageOK            = "Success"
	messageInternalError = "Internal server error"
)
