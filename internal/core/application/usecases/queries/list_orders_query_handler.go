package queries

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"deliverysys/internal/pkg/errs"
)

// sortableOrderFields maps accepted sort keys to their column expressions.
// Anything outside this map is rejected rather than interpolated into SQL.
var sortableOrderFields = map[string]string{
	"id":         "id",
	"code":       "code",
	"cod":        "cod",
	"status":     "status",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

const defaultOrderSort = "-created_at,-id"

// ListOrdersQueryHandler retrieves orders from the database, scoped to what
// the requesting principal is allowed to see.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listing queries.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the listing. The visibility scope is applied before any
// caller-supplied filter, so a filter can never widen what a courier sees.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	principal := query.Principal()
	filter := query.Filter()

	conditions := make([]string, 0, 4)
	args := make([]any, 0, 4)

	if !principal.IsAdmin() {
		conditions = append(conditions, "assigned_to = ?")
		args = append(args, principal.ID().String())
	}

	if filter.Status != nil {
		conditions = append(conditions, "status = ?")
		args = append(args, filter.Status.String())
	}

	if filter.AssignedTo != nil {
		conditions = append(conditions, "assigned_to = ?")
		args = append(args, filter.AssignedTo.String())
	}

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		conditions = append(conditions,
			"(code ILIKE ? OR customer_name ILIKE ? OR phone ILIKE ? OR address ILIKE ? OR assigned_to_username ILIKE ?)")
		args = append(args, pattern, pattern, pattern, pattern, pattern)
	}

	orderBy, err := buildOrderBy(filter.Sort)
	if err != nil {
		return nil, err
	}

	sql := `SELECT ` + orderColumns + ` FROM orders`
	if len(conditions) > 0 {
		sql += " WHERE " + strings.Join(conditions, " AND ")
	}
	sql += " ORDER BY " + orderBy

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]OrderView, 0)

	for rows.Next() {
		var r orderRow
		if err = r.scan(rows); err != nil {
			return nil, err
		}

		restored, domainErr := r.toDomain()
		if domainErr != nil {
			return nil, domainErr
		}

		views = append(views, orderViewFrom(restored))
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}

func buildOrderBy(sort string) (string, error) {
	if sort == "" {
		sort = defaultOrderSort
	}

	terms := strings.Split(sort, ",")
	clauses := make([]string, 0, len(terms))

	for _, term := range terms {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}

		direction := "ASC"
		if strings.HasPrefix(term, "-") {
			direction = "DESC"
			term = term[1:]
		}

		column, ok := sortableOrderFields[term]
		if !ok {
			return "", errs.NewValueIsInvalidError(fmt.Sprintf("sort field %q", term))
		}

		clauses = append(clauses, column+" "+direction)
	}

	if len(clauses) == 0 {
		return "", errs.NewValueIsInvalidError("sort")
	}

	return strings.Join(clauses, ", "), nil
}
