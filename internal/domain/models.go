package domain

// User is immutable once created; the username is the unique key used
// everywhere else in the system.
type User struct {
	FirstName    string
	LastName     string
	Username     string
	PasswordHash string
}

// LogRecord is one replayable row of a per-user append-only store: the
// counterparty of the operation and the amount recorded at the time.
type LogRecord struct {
	Counterparty string
	Amount       float64
}
