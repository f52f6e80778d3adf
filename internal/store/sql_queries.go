// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"net/http"

	sq "github.com/Masterminds/squirrel"
)

const cookiesTable = "cookies"

var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildDeleteCookiesQuery(origin string) (string, []any, error) {
	return sqlite.
		Delete(cookiesTable).
		Where(sq.Eq{"origin": origin}).
		ToSql()
}

// buildInsertCookiesQuery builds one multi-row INSERT. Cookies without a
// name are skipped and only the first cookie of each name is kept; ok is
// false when nothing is left to insert.
func buildInsertCookiesQuery(origin string, cookies []*http.Cookie) (query string, args []any, ok bool, err error) {
	insert := sqlite.
		Insert(cookiesTable).
		Columns("origin", "name", "value")

	seen := make(map[string]struct{}, len(cookies))
	for _, c := range cookies {
		if c == nil || c.Name == "" {
			continue
		}
		if _, dup := seen[c.Name]; dup {
			continue
		}
		seen[c.Name] = struct{}{}
		insert = insert.Values(origin, c.Name, c.Value)
		ok = true
	}
	if !ok {
		return "", nil, false, nil
	}

	query, args, err = insert.ToSql()
	return query, args, err == nil, err
}

func buildSelectCookiesQuery(origin string) (string, []any, error) {
	return sqlite.
		Select("name", "value").
		From(cookiesTable).
		Where(sq.Eq{"origin": origin}).
		OrderBy("name").
		ToSql()
}
