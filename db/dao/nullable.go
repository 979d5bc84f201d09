package dao

import "database/sql"

type NullInt64 struct {
	sql.NullInt64
}

// AsInt returns 0 for NULL. A NULL author column is the anonymous user.
func (ni *NullInt64) AsInt() int64 {
	if !ni.NullInt64.Valid {
		return 0
	}
	return ni.NullInt64.Int64
}
