package model

// User holds the account data exposed to the API. The password hash stays
// inside the db layer.
type User struct {
	Id    int64  `db:"id" json:"id"`
	Name  string `db:"name" json:"name"`
	Email string `db:"email" json:"email"`
}

// Session is the logged-in user state the client persists between runs.
type Session struct {
	Id    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// FirstName is the short greeting form shown by the client.
func (s *Session) FirstName() string {
	for i := 0; i < len(s.Name); i++ {
		if s.Name[i] == ' ' {
			return s.Name[:i]
		}
	}
	return s.Name
}
