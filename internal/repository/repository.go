package repository

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
)

// OrderClause is a sort key already resolved against a column
// whitelist by the usecase layer; Column is never raw caller input.
type OrderClause struct {
	Column string
	Desc   bool
}

func orderBySQL(clauses []OrderClause) string {
	s := ""
	for i, c := range clauses {
		if i > 0 {
			s += ", "
		}
		s += c.Column
		if c.Desc {
			s += " DESC"
		}
	}
	return s
}

// likeEscape neutralizes LIKE metacharacters so a search term only
// ever matches as a literal substring.
func likeEscape(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows)
}
