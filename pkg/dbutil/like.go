package dbutil

import "strings"

// ContainsClause matches a lower-cased column against ContainsPattern output
func ContainsClause(column string) string {
	return "LOWER(" + column + `) LIKE ? ESCAPE '\'`
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern builds a case-insensitive substring LIKE pattern with wildcards escaped
func ContainsPattern(search string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(search)) + "%"
}
