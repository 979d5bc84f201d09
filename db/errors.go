package db

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

const dupEntryErrNo = 1062

// IsDupKeyErr reports whether err is a MySQL duplicate-key violation, e.g.
// signing up with an email that is already registered.
func IsDupKeyErr(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == dupEntryErrNo
}
