package request

type CreateAssignmentRequest struct {
	CompanyID int64 `json:"company_id" binding:"required"`
}

type DeclineAssignmentRequest struct {
	Memo string `json:"memo"`
}
