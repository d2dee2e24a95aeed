package repository

import (
	"course_review_backend/internal/model"
	"course_review_backend/internal/util"

	"gorm.io/gorm/clause"
)

// reviewSortColumns is the closed set of sortable review keys.
var reviewSortColumns = map[string]clause.Column{
	"createdAt": {Table: "reviews", Name: "created_at"},
	"score":     {Table: "reviews", Name: "score"},
}

// DefaultReviewSort is newest first.
var DefaultReviewSort = []model.ReviewSort{{Key: "createdAt", Desc: true}}

// ResolveReviewOrder maps requested keys to columns. Unknown keys fail with
// ErrValidationFailed. The review id is appended so equal keys page stably.
func ResolveReviewOrder(sorts []model.ReviewSort) ([]clause.OrderByColumn, error) {
	if len(sorts) == 0 {
		sorts = DefaultReviewSort
	}
	orders := make([]clause.OrderByColumn, 0, len(sorts)+1)
	seen := make(map[string]bool, len(sorts))
	for _, s := range sorts {
		col, ok := reviewSortColumns[s.Key]
		if !ok {
			return nil, util.ErrValidationFailed.WithField("orderBy")
		}
		if seen[s.Key] {
			continue
		}
		seen[s.Key] = true
		orders = append(orders, clause.OrderByColumn{Column: col, Desc: s.Desc})
	}
	orders = append(orders, clause.OrderByColumn{Column: clause.Column{Table: "reviews", Name: "id"}})
	return orders, nil
}
