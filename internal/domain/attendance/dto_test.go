package attendance

import (
	"testing"

	"github.com/rawatib-hr/rawatib-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestMarkDayRequest_Normalize_LegacyAlias(t *testing.T) {
	t.Parallel()

	req := MarkDayRequest{
		EmployeeID: "emp-1",
		Date:       "2024-03-10",
		DayStatus:  "absent_without_notice",
	}

	req.Normalize()

	assert.Equal(t, string(DayStatusAbsent), req.DayStatus)
	require.NotNil(t, req.AbsenceReason)
	assert.Equal(t, string(AbsenceWithoutNotice), *req.AbsenceReason)
	assert.NoError(t, req.Validate())
}

func TestMarkDayRequest_Normalize_CanonicalUntouched(t *testing.T) {
	t.Parallel()

	req := MarkDayRequest{
		EmployeeID:    "emp-1",
		Date:          "2024-03-10",
		DayStatus:     string(DayStatusAbsent),
		AbsenceReason: strPtr(string(AbsenceWithNotice)),
	}

	req.Normalize()

	assert.Equal(t, string(DayStatusAbsent), req.DayStatus)
	assert.Equal(t, string(AbsenceWithNotice), *req.AbsenceReason)
}

func TestMarkDayRequest_Validate(t *testing.T) {
	t.Parallel()

	overtime := decimal.NewFromInt(2)
	negOvertime := decimal.NewFromInt(-1)

	cases := []struct {
		name      string
		req       MarkDayRequest
		wantErr   bool
		wantField string
	}{
		{
			name: "present day with time adjustments",
			req: MarkDayRequest{
				EmployeeID:       "emp-1",
				Date:             "2024-03-10",
				DayStatus:        "present",
				OvertimeHours:    &overtime,
				TimeDelayMinutes: intPtr(15),
			},
		},
		{
			name: "absent without reason is accepted",
			req: MarkDayRequest{
				EmployeeID: "emp-1",
				Date:       "2024-03-10",
				DayStatus:  "absent",
			},
		},
		{
			name: "reason on a present day is rejected",
			req: MarkDayRequest{
				EmployeeID:    "emp-1",
				Date:          "2024-03-10",
				DayStatus:     "present",
				AbsenceReason: strPtr("with_notice"),
			},
			wantErr:   true,
			wantField: "absence_reason",
		},
		{
			name: "overtime on a leave day is rejected",
			req: MarkDayRequest{
				EmployeeID:    "emp-1",
				Date:          "2024-03-10",
				DayStatus:     "leave",
				OvertimeHours: &overtime,
			},
			wantErr:   true,
			wantField: "overtime_hours",
		},
		{
			name: "negative overtime is rejected",
			req: MarkDayRequest{
				EmployeeID:    "emp-1",
				Date:          "2024-03-10",
				DayStatus:     "present",
				OvertimeHours: &negOvertime,
			},
			wantErr:   true,
			wantField: "overtime_hours",
		},
		{
			name: "negative delay is rejected",
			req: MarkDayRequest{
				EmployeeID:       "emp-1",
				Date:             "2024-03-10",
				DayStatus:        "present",
				TimeDelayMinutes: intPtr(-5),
			},
			wantErr:   true,
			wantField: "time_delay_minutes",
		},
		{
			name: "bad date is rejected",
			req: MarkDayRequest{
				EmployeeID: "emp-1",
				Date:       "10-03-2024",
				DayStatus:  "present",
			},
			wantErr:   true,
			wantField: "date",
		},
		{
			name: "unknown status is rejected",
			req: MarkDayRequest{
				EmployeeID: "emp-1",
				Date:       "2024-03-10",
				DayStatus:  "vacation",
			},
			wantErr:   true,
			wantField: "day_status",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.req.Validate()
			if !tc.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var errs validator.ValidationErrors
			require.ErrorAs(t, err, &errs)
			assert.Contains(t, errs.ToMap(), tc.wantField)
		})
	}
}
