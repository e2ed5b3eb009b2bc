package payroll

// Tier is the late-arrival band a check-in fell into.
type Tier string

const (
	TierNone            Tier = "none"
	TierGrace           Tier = "grace"
	TierUnderFifteen    Tier = "under_15"
	TierFifteenToThirty Tier = "15_to_30"
	TierOverThirty      Tier = "over_30"
)

// Action names the trigger that produced an Outcome.
type Action string

const (
	ActionApprove         Action = "approve"
	ActionEditCheckIn     Action = "edit_check_in"
	ActionMarkAbsent      Action = "mark_absent"
	ActionUnmarkAbsent    Action = "unmark_absent"
	ActionEditCheckOut    Action = "edit_check_out"
	ActionApproveOvertime Action = "approve_overtime"
)
