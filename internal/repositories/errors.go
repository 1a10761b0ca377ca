package repositories

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound is returned when a single-row lookup or scoped mutation matched nothing.
	ErrNotFound = errors.New("record not found")
	// ErrConstraintViolation is returned when the database rejects a write.
	ErrConstraintViolation = errors.New("constraint violation")
	// ErrTransient is returned when the store could not be reached. Callers may retry.
	ErrTransient = errors.New("transient storage failure")
)

// PostgreSQL SQLSTATE codes for integrity violations.
const (
	codeNotNullViolation    = "23502"
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
	codeCheckViolation      = "23514"
	codeSerialization       = "40001"
	codeDeadlock            = "40P01"
	classConnection         = "08"
	classDataException      = "22"
)

// ConstraintKind classifies a rejected write.
type ConstraintKind string

const (
	ConstraintUnique     ConstraintKind = "unique"
	ConstraintForeignKey ConstraintKind = "foreign_key"
	ConstraintCheck      ConstraintKind = "check"
	ConstraintNotNull    ConstraintKind = "not_null"
	// ConstraintData covers values the column type rejects, e.g. too long for a VARCHAR.
	ConstraintData ConstraintKind = "data"
)

// ConstraintError carries the name of the violated constraint.
type ConstraintError struct {
	Kind       ConstraintKind
	Constraint string
	Detail     string
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%s constraint %q violated: %s", e.Kind, e.Constraint, e.Detail)
}

func (e *ConstraintError) Unwrap() error {
	return ErrConstraintViolation
}

// IsConstraint reports whether err is a violation of the named constraint.
func IsConstraint(err error, name string) bool {
	var cerr *ConstraintError
	return errors.As(err, &cerr) && cerr.Constraint == name
}

// translateError maps driver errors onto the repository error taxonomy.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return &ConstraintError{Kind: ConstraintUnique, Constraint: pgErr.ConstraintName, Detail: pgErr.Detail}
		case codeForeignKeyViolation:
			return &ConstraintError{Kind: ConstraintForeignKey, Constraint: pgErr.ConstraintName, Detail: pgErr.Detail}
		case codeCheckViolation:
			return &ConstraintError{Kind: ConstraintCheck, Constraint: pgErr.ConstraintName, Detail: pgErr.Message}
		case codeNotNullViolation:
			return &ConstraintError{Kind: ConstraintNotNull, Constraint: pgErr.ColumnName, Detail: pgErr.Message}
		case codeSerialization, codeDeadlock:
			return fmt.Errorf("%w: %v", ErrTransient, err)
		}
		switch {
		case strings.HasPrefix(pgErr.Code, classConnection):
			return fmt.Errorf("%w: %v", ErrTransient, err)
		case strings.HasPrefix(pgErr.Code, classDataException):
			return &ConstraintError{Kind: ConstraintData, Constraint: pgErr.ColumnName, Detail: pgErr.Message}
		}
		return err
	}

	var netErr net.Error
	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.As(err, &netErr) {
		return fmt.Errorf("%w: %v", ErrTransient, err)
	}

	return err
}
