package sqlerr

import (
	"errors"
	"strconv"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

// MySQL server error numbers, see mysqld_error.h.
const (
	mysqlDupEntry         = 1062
	mysqlBadNull          = 1048
	mysqlNoReferencedRow  = 1216
	mysqlRowIsReferenced  = 1217
	mysqlRowIsReferenced2 = 1451
	mysqlNoReferencedRow2 = 1452
	mysqlCheckViolated    = 3819
)

// MapCode maps a PostgreSQL SQLSTATE to a Code.
func MapCode(sqlState string) Code {
	switch sqlState {
	case "23505":
		return UniqueViolation
	case "23514":
		return CheckViolation
	case "23503":
		return ForeignKeyViolation
	case "23502":
		return NotNullViolation
	default:
		return Other
	}
}

func mapMySQLCode(number uint16) Code {
	switch number {
	case mysqlDupEntry:
		return UniqueViolation
	case mysqlCheckViolated:
		return CheckViolation
	case mysqlNoReferencedRow, mysqlNoReferencedRow2, mysqlRowIsReferenced, mysqlRowIsReferenced2:
		return ForeignKeyViolation
	case mysqlBadNull:
		return NotNullViolation
	default:
		return Other
	}
}

func mapSQLiteCode(code sqlite3.ErrNoExtended) Code {
	switch code {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return UniqueViolation
	case sqlite3.ErrConstraintCheck:
		return CheckViolation
	case sqlite3.ErrConstraintForeignKey:
		return ForeignKeyViolation
	case sqlite3.ErrConstraintNotNull:
		return NotNullViolation
	default:
		return Other
	}
}

// Convert walks the error chain looking for a known driver error and returns
// its classified form, or nil when err did not come from a supported driver.
func Convert(err error) *Error {
	if err == nil {
		return nil
	}

	var classified *Error
	if errors.As(err, &classified) {
		return classified
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return &Error{
			Code:           MapCode(pgErr.Code),
			DatabaseCode:   pgErr.Code,
			Message:        pgErr.Message,
			TableName:      pgErr.TableName,
			ConstraintName: pgErr.ConstraintName,
			driverErr:      pgErr,
		}
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return &Error{
			Code:           MapCode(string(pqErr.Code)),
			DatabaseCode:   string(pqErr.Code),
			Message:        pqErr.Message,
			TableName:      pqErr.Table,
			ConstraintName: pqErr.Constraint,
			driverErr:      pqErr,
		}
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return &Error{
			Code:         mapMySQLCode(myErr.Number),
			DatabaseCode: strconv.Itoa(int(myErr.Number)),
			Message:      myErr.Message,
			driverErr:    myErr,
		}
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) && liteErr.Code == sqlite3.ErrConstraint {
		return &Error{
			Code:         mapSQLiteCode(liteErr.ExtendedCode),
			DatabaseCode: strconv.Itoa(int(liteErr.ExtendedCode)),
			Message:      liteErr.Error(),
			driverErr:    liteErr,
		}
	}

	return nil
}

// ErrCode reports the Code for err, Other when it is not a recognised
// constraint error.
func ErrCode(err error) Code {
	if sqlErr := Convert(err); sqlErr != nil {
		return sqlErr.Code
	}
	return Other
}

func IsUniqueViolation(err error) bool {
	return ErrCode(err) == UniqueViolation
}

func IsCheckViolation(err error) bool {
	return ErrCode(err) == CheckViolation
}
