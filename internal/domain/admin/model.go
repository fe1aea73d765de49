package admin

// LastLoginNone is the sentinel stored before an administrator's first login.
const LastLoginNone = "not recorded"

// Administrator is an operator account. PasswordDigest holds the hex SHA-256
// of the password; the snapshot format stores it under "password".
type Administrator struct {
	Username       string `json:"username"`
	PasswordDigest string `json:"password"`
	LastLogin      string `json:"lastLogin"`
}
