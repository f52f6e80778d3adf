// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-chat-assistant/internal/logger"
)

type cookieRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewCookieRepository returns a [CookieRepository] backed by db.
func NewCookieRepository(db *DB, logger *logger.Logger) CookieRepository {
	return &cookieRepository{db: db, logger: logger}
}

func (c *cookieRepository) Save(ctx context.Context, origin string, cookies []*http.Cookie) (err error) {
	log := c.logger.GetChildLogger()

	deleteQuery, deleteArgs, err := buildDeleteCookiesQuery(origin)
	if err != nil {
		return fmt.Errorf("build delete cookies query: %w", err)
	}
	insertQuery, insertArgs, hasRows, err := buildInsertCookiesQuery(origin, cookies)
	if err != nil {
		return fmt.Errorf("build insert cookies query: %w", err)
	}

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "cookieRepository.Save").Msg("failed to begin transaction")
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		log.Err(err).Str("func", "cookieRepository.Save").Str("origin", origin).Msg("failed to delete old cookies")
		return fmt.Errorf("delete cookies: %w", err)
	}

	if hasRows {
		if _, err = tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			log.Err(err).Str("func", "cookieRepository.Save").Str("origin", origin).Msg("failed to insert cookies")
			return fmt.Errorf("insert cookies: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit cookies: %w", err)
	}

	return nil
}

func (c *cookieRepository) Load(ctx context.Context, origin string) ([]*http.Cookie, error) {
	query, args, err := buildSelectCookiesQuery(origin)
	if err != nil {
		return nil, fmt.Errorf("build select cookies query: %w", err)
	}

	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		c.logger.Err(err).Str("func", "cookieRepository.Load").Str("origin", origin).Msg("failed to query cookies")
		return nil, fmt.Errorf("query cookies: %w", err)
	}
	defer rows.Close()

	cookies := make([]*http.Cookie, 0)
	for rows.Next() {
		var ck http.Cookie
		if err = rows.Scan(&ck.Name, &ck.Value); err != nil {
			return nil, fmt.Errorf("scan cookie: %w", err)
		}
		ck.Path = "/"
		cookies = append(cookies, &ck)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cookies: %w", err)
	}

	return cookies, nil
}

func (c *cookieRepository) Clear(ctx context.Context, origin string) error {
	query, args, err := buildDeleteCookiesQuery(origin)
	if err != nil {
		return fmt.Errorf("build delete cookies query: %w", err)
	}

	if _, err = c.db.ExecContext(ctx, query, args...); err != nil {
		c.logger.Err(err).Str("func", "cookieRepository.Clear").Str("origin", origin).Msg("failed to clear cookies")
		return fmt.Errorf("clear cookies: %w", err)
	}

	return nil
}
