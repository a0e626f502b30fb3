package app

type sessionKey string

const (
	SessionKeyAdmin = sessionKey("admin")
)

func (s sessionKey) String() string {
	return string(s)
}
