package attendance

import "context"

type AttendanceService interface {
	MarkDay(ctx context.Context, req MarkDayRequest) (AttendanceResponse, error)
	BulkMark(ctx context.Context, req BulkMarkRequest) ([]AttendanceResponse, error)
	GetByID(ctx context.Context, id string) (AttendanceResponse, error)
	List(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)
	Delete(ctx context.Context, id string) error
}
