package dispatch

// Session is the per-connection state: the identity bound by login, if
// any. It lives exactly as long as its socket and is only ever touched by
// the request-handling goroutine, never concurrently.
type Session struct {
	remoteAddr string
	username   string
	loggedIn   bool
}

func NewSession(remoteAddr string) *Session {
	return &Session{remoteAddr: remoteAddr}
}

func (s *Session) RemoteAddr() string {
	return s.remoteAddr
}

// Username returns the bound identity and whether one is bound at all.
func (s *Session) Username() (string, bool) {
	return s.username, s.loggedIn
}

func (s *Session) Login(username string) {
	s.username = username
	s.loggedIn = true
}

func (s *Session) Logout() {
	s.username = ""
	s.loggedIn = false
}
