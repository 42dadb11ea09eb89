package schema

import (
	"strings"

	"github.com/google/uuid"

	"github.com/ecotoken/platform-api/internal/apperr"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// RoleFilter accepts a single role or a set of roles; the values are matched
// by OR at the query boundary. It binds from a repeated query parameter as
// well as from a comma-separated one.
type RoleFilter []string

func (f *RoleFilter) UnmarshalParam(src string) error {
	for _, part := range strings.Split(src, ",") {
		if part = strings.TrimSpace(part); part != "" {
			*f = append(*f, part)
		}
	}
	return nil
}

// UnmarshalParams binds every occurrence of a repeated query parameter;
// without it Echo hands over only the first value.
func (f *RoleFilter) UnmarshalParams(params []string) error {
	for _, p := range params {
		if err := f.UnmarshalParam(p); err != nil {
			return err
		}
	}
	return nil
}

// Pagination is the common slice of every list input: a limit clamped to
// 1..100 (default 10) and an optional cursor.
type Pagination struct {
	Limit  int    `query:"limit"`
	Cursor string `query:"cursor"`
}

func (p *Pagination) Normalize() (limit int, cursor *uuid.UUID, err error) {
	limit = p.Limit
	if limit == 0 {
		limit = defaultLimit
	}
	if limit < 1 || limit > maxLimit {
		return 0, nil, apperr.Validation(map[string]string{
			"limit": "Limit must be between 1 and 100.",
		})
	}
	if p.Cursor != "" {
		id, perr := uuid.Parse(p.Cursor)
		if perr != nil {
			return 0, nil, apperr.Validation(map[string]string{
				"cursor": "Invalid cursor.",
			})
		}
		cursor = &id
	}
	return limit, cursor, nil
}

type ListUsers struct {
	Pagination
	Role RoleFilter `query:"role"`
}

type ListProjects struct {
	Pagination
	Location bool `query:"location"`
}
