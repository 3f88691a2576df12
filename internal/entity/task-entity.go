package entity

import "time"

// PropertyTaskEntity is the post-contract checklist, one per property that
// reached Post_Contract. Identity fields are denormalized snapshots taken
// from the property at materialization time; a later handler rename does not
// flow back into HandlerName/HandlerColor.
type PropertyTaskEntity struct {
	ID             string    `json:"id"`
	PropertyID     string    `json:"property_id"`
	PropertyNumber int       `json:"property_number"`
	PropertyName   string    `json:"property_name"`
	CompanyName    string    `json:"company_name"`
	HandlerName    string    `json:"handler_name"`
	HandlerColor   string    `json:"handler_color"`
	ContractDate   time.Time `json:"contract_date"`
	SettlementDate time.Time `json:"settlement_date"`
	Price          int64     `json:"price"`
	// EstimatedSales is a "sell/buy" pair, e.g. "87/87".
	EstimatedSales string  `json:"estimated_sales"`
	SellerName     *string `json:"seller_name,omitempty"`
	BuyerName      *string `json:"buyer_name,omitempty"`

	Reform               TaskDetail[TaskStatus]                 `json:"reform"`
	LoanProcedure        TaskDetail[LoanProcedureStatus]        `json:"loan_procedure"`
	Survey               TaskDetail[TaskStatus]                 `json:"survey"`
	Demolition           TaskDetail[TaskStatus]                 `json:"demolition"`
	MortgageCancellation TaskDetail[MortgageCancellationStatus] `json:"mortgage_cancellation"`
	Registration         TaskDetail[RegistrationStatus]         `json:"registration"`
	PostProcessing       TaskDetail[PostProcessingStatus]       `json:"post_processing"`

	IsCompleted bool      `json:"is_completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TaskDetail is one checklist item. The status type parameter pins each
// checklist field to its own status set, so a loan procedure can never hold
// Not_Required and post-processing can never hold Unassigned.
type TaskDetail[S ~string] struct {
	Status            S          `json:"status"`
	PlannedDate       *time.Time `json:"planned_date,omitempty"`
	CompletionDate    *time.Time `json:"completion_date,omitempty"`
	CompanyName       *string    `json:"company_name,omitempty"`
	ContactPerson     *string    `json:"contact_person,omitempty"`
	Bank              *string    `json:"bank,omitempty"`
	JudicialScrivener *string    `json:"judicial_scrivener,omitempty"`
	Notes             *string    `json:"notes,omitempty"`
}

// TaskStatus is the common checklist status set (reform, survey, demolition).
type TaskStatus string

const (
	TaskNotRequired TaskStatus = "Not_Required"
	TaskUnassigned  TaskStatus = "Unassigned"
	TaskInProgress  TaskStatus = "In_Progress"
	TaskComplete    TaskStatus = "Complete"
)

type LoanProcedureStatus string

const (
	LoanUnassigned     LoanProcedureStatus = "Unassigned"
	LoanFormalApplied  LoanProcedureStatus = "Formal_Application_Submitted"
	LoanContractSigned LoanProcedureStatus = "Loan_Contract_Signed"
)

type RegistrationStatus string

const (
	RegistrationUnassigned    RegistrationStatus = "Unassigned"
	RegistrationInProgress    RegistrationStatus = "In_Progress"
	RegistrationArrangedVenue RegistrationStatus = "Arranged_Including_Venue"
)

type MortgageCancellationStatus string

const (
	MortgageNotRequired MortgageCancellationStatus = "Not_Required"
	MortgageUnassigned  MortgageCancellationStatus = "Unassigned"
	MortgageInProgress  MortgageCancellationStatus = "In_Progress"
	MortgageComplete    MortgageCancellationStatus = "Complete"
)

// PostProcessingStatus tracks the administrative wrap-up. It never counts
// toward task progress.
type PostProcessingStatus string

const (
	PostProcessingInProgress PostProcessingStatus = "In_Progress"
	PostProcessingComplete   PostProcessingStatus = "Complete"
)

// Done reports whether the status is terminal for its field.
func (s TaskStatus) Done() bool {
	return s == TaskComplete || s == TaskNotRequired
}

func (s LoanProcedureStatus) Done() bool {
	return s == LoanContractSigned
}

func (s RegistrationStatus) Done() bool {
	return s == RegistrationArrangedVenue
}

func (s MortgageCancellationStatus) Done() bool {
	return s == MortgageComplete || s == MortgageNotRequired
}

func (s PostProcessingStatus) Done() bool {
	return s == PostProcessingComplete
}

func ValidTaskStatus(s string) bool {
	switch TaskStatus(s) {
	case TaskNotRequired, TaskUnassigned, TaskInProgress, TaskComplete:
		return true
	}
	return false
}

func ValidLoanProcedureStatus(s string) bool {
	switch LoanProcedureStatus(s) {
	case LoanUnassigned, LoanFormalApplied, LoanContractSigned:
		return true
	}
	return false
}

func ValidRegistrationStatus(s string) bool {
	switch RegistrationStatus(s) {
	case RegistrationUnassigned, RegistrationInProgress, RegistrationArrangedVenue:
		return true
	}
	return false
}

func ValidMortgageCancellationStatus(s string) bool {
	switch MortgageCancellationStatus(s) {
	case MortgageNotRequired, MortgageUnassigned, MortgageInProgress, MortgageComplete:
		return true
	}
	return false
}

func ValidPostProcessingStatus(s string) bool {
	switch PostProcessingStatus(s) {
	case PostProcessingInProgress, PostProcessingComplete:
		return true
	}
	return false
}

// TaskProgress is the derived completion summary of a checklist.
type TaskProgress struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
	Progress  int `json:"progress"`
}
