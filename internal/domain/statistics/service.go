package statistics

import "context"

type StatisticsService interface {
	GetEmployeeStatistics(ctx context.Context, req GetStatisticsRequest) (Summary, error)
}
