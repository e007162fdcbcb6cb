package domain

// FunctionDetail is one industry function record projected to the fixed
// field set consumed downstream. The JSON field names mirror the upstream
// feed.
type FunctionDetail struct {
	ID                    int64   `json:"id"`
	IndustryFunctionMapID int64   `json:"industry_function_map_id"`
	FunctionName          string  `json:"function_name"`
	IndustryName          string  `json:"industry_name"`
	SubType               *string `json:"subType"`
	Name                  string  `json:"name"`
	Description           *string `json:"description"`
	UseCaseID             *int64  `json:"useCaseId"`
}
