package response

import (
	"hunarhub/internal/data/entity"
)

type StatsResponse struct {
	Users                int64 `json:"users"`
	Entrepreneurs        int64 `json:"entrepreneurs"`
	Orders               int64 `json:"orders"`
	Requests             int64 `json:"requests"`
	PendingVerifications int64 `json:"pending_verifications"`
}

func StatsToResponse(s *entity.PlatformStats) StatsResponse {
	return StatsResponse{
		Users:                s.Users,
		Entrepreneurs:        s.Entrepreneurs,
		Orders:               s.Orders,
		Requests:             s.ServiceRequests,
		PendingVerifications: s.PendingVerifications,
	}
}
