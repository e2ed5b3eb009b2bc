package payroll

import "context"

// AdjustmentEngine turns attendance timing facts into salary adjustment ledger rows.
// Every method runs as one unit of work: either all of its writes land or none do.
type AdjustmentEngine interface {
	// OnApprove creates the attendance record for an approved check-in and applies the late tier
	OnApprove(ctx context.Context, req ApproveCheckInRequest) (Outcome, error)

	// OnRecalculateEdit reverses the previous late decision for the record and decides again
	OnRecalculateEdit(ctx context.Context, req EditCheckInRequest) (Outcome, error)

	// OnMarkAbsent replaces engine rows of the record with a flat absence deduction
	OnMarkAbsent(ctx context.Context, req MarkAbsentRequest) (Outcome, error)

	// OnUnmarkAbsent removes the absence deduction of the record
	OnUnmarkAbsent(ctx context.Context, req UnmarkAbsentRequest) (Outcome, error)

	// OnCheckoutEdited invalidates the overtime bonus of the record
	OnCheckoutEdited(ctx context.Context, req EditCheckOutRequest) (Outcome, error)

	// ApproveOvertime computes and books the overtime bonus of the record
	ApproveOvertime(ctx context.Context, req ApproveOvertimeRequest) (Outcome, error)
}
