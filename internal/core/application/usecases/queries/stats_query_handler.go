package queries

import (
	"context"

	"gorm.io/gorm"

	"campus/internal/core/domain/model/user"
	"campus/internal/pkg/errs"
)

// StatsQueryHandler reads the admin dashboard counters.
type StatsQueryHandler struct {
	db *gorm.DB
}

// NewStatsQueryHandler creates a handler for dashboard reads.
func NewStatsQueryHandler(db *gorm.DB) StatsQueryHandler {
	return StatsQueryHandler{db: db}
}

// Handle executes the stats query. Non-admin actors fail with a
// ForbiddenError before any read happens.
func (h StatsQueryHandler) Handle(ctx context.Context, query StatsQuery) (StatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return StatsQueryResponse{}, err
	}

	if query.Actor().Role() != user.RoleAdmin {
		return StatsQueryResponse{}, errs.NewForbiddenError(
			query.Actor().ID().String(), "admin dashboard")
	}

	response := StatsQueryResponse{
		FulfillmentsByState: make(map[string]int),
	}

	var totalUsers int64
	if err := h.db.WithContext(ctx).Raw(`SELECT COUNT(*) FROM users`).Scan(&totalUsers).Error; err != nil {
		return StatsQueryResponse{}, err
	}
	response.TotalUsers = int(totalUsers)

	var unread int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM notifications WHERE NOT is_read
	`).Scan(&unread).Error
	if err != nil {
		return StatsQueryResponse{}, err
	}
	response.UnreadNotifications = int(unread)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM fulfillments
		GROUP BY status
	`).Rows()
	if err != nil {
		return StatsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int64
		if err = rows.Scan(&status, &count); err != nil {
			return StatsQueryResponse{}, err
		}
		response.FulfillmentsByState[status] = int(count)
		response.TotalFulfillments += int(count)
	}

	if err = rows.Err(); err != nil {
		return StatsQueryResponse{}, err
	}

	return response, nil
}
