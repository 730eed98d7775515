// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
)

// Skills is a list of skill names persisted as a PostgreSQL TEXT[] column.
type Skills []string

// Value encodes the list in the PostgreSQL array text format. A nil or empty
// list is stored as an empty array, never as NULL.
func (s Skills) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "{}", nil
	}

	buf, err := pgtype.NewMap().Encode(pgtype.TextArrayOID, pgtype.TextFormatCode, []string(s), nil)
	if err != nil {
		return nil, fmt.Errorf("error encoding skills: %w", err)
	}

	return string(buf), nil
}

// Scan decodes a TEXT[] column value.
func (s *Skills) Scan(src any) error {
	if src == nil {
		*s = Skills{}
		return nil
	}

	var values []string
	if err := pgtype.NewMap().SQLScanner(&values).Scan(src); err != nil {
		return fmt.Errorf("error decoding skills: %w", err)
	}

	if values == nil {
		values = []string{}
	}
	*s = values
	return nil
}

// String renders the list the way the export report shows it.
func (s Skills) String() string {
	return strings.Join(s, ", ")
}
