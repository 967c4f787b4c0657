// file: internals/helpers/query_params.go
package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"scholartrack_backend/internals/features/tracking/store"
	"scholartrack_backend/internals/features/tracking/workflow"
)

const (
	MinDaysAhead = 1
	MaxDaysAhead = 365
)

// ParseListQuery membaca ?status=&sort_by=&sort_order= (alias lama: ?order=, ?sort=).
// Default: created_at desc. Status divalidasi terhadap track → *workflow.ValidationError.
func ParseListQuery(c *fiber.Ctx, track workflow.Track) (store.ListQuery, error) {
	q := store.ListQuery{
		SortBy: store.ParseSortField(c.Query("sort_by")),
		Desc:   true,
	}

	order := strings.ToLower(strings.TrimSpace(firstNonEmpty(c.Query("sort_order"), c.Query("order"), c.Query("sort"))))
	switch order {
	case "asc":
		q.Desc = false
	case "desc", "":
		q.Desc = true
	default:
		return q, workflow.Invalid("sort_order", "sort_order must be asc or desc")
	}

	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		st, err := track.Parse(raw)
		if err != nil {
			return q, err
		}
		q.Status = &st
	}
	return q, nil
}

// ParseDaysAhead: ?days_ahead= kosong → 0 (pakai default server), selain itu harus 1..365.
func ParseDaysAhead(c *fiber.Ctx) (int, error) {
	raw := strings.TrimSpace(c.Query("days_ahead"))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < MinDaysAhead || n > MaxDaysAhead {
		return 0, workflow.Invalid("days_ahead", "days_ahead must be an integer between 1 and 365")
	}
	return n, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
