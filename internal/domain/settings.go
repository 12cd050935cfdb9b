package domain

// Settings holds the kind-specific configuration of a Step. Only the fields
// relevant to a step's Kind are populated; the rest stay at their zero value.
// This mirrors how the teacher's node configuration travels as a single
// loosely-typed bag rather than one struct per node type.
type Settings struct {
	// Piece action/trigger fields.
	PieceName    string       `json:"piece_name,omitempty"`
	PieceVersion string       `json:"piece_version,omitempty"`
	Input        any          `json:"input,omitempty"`
	InputUIInfo  *InputUIInfo `json:"input_ui_info,omitempty"`

	// Code action fields.
	SourceCode string         `json:"source_code,omitempty"`
	CodeInput  map[string]any `json:"code_input,omitempty"`

	// Router fields, index-aligned with Step.Children.
	Branches []RouterBranch `json:"branches,omitempty"`
}

// InputUIInfo carries sample-data metadata shown by the flow builder UI.
// Normalization always resets it to its zero value.
type InputUIInfo struct {
	CurrentSelectedData any    `json:"current_selected_data,omitempty"`
	SampleDataFileID    string `json:"sample_data_file_id,omitempty"`
	LastTestDate        string `json:"last_test_date,omitempty"`
}

// BranchType identifies how a router branch decides whether it is taken.
type BranchType string

const (
	BranchTypeCondition BranchType = "CONDITION"
	BranchTypeFallback  BranchType = "FALLBACK"
)

// RouterBranch is one entry of a router's branch metadata list.
type RouterBranch struct {
	Conditions [][]Condition `json:"conditions"`
	BranchType BranchType    `json:"branch_type"`
	BranchName string        `json:"branch_name"`
}

// Condition is a single comparison inside a router branch's condition group.
// Groups are OR'd, comparisons within a group are AND'd — the same shape the
// flow builder UI renders as rows of "AND" chips separated by "OR" dividers.
type Condition struct {
	FirstValue  any    `json:"first_value,omitempty"`
	Operator    string `json:"operator,omitempty"`
	SecondValue any    `json:"second_value,omitempty"`
}

// InputAuth reads the credential reference from a piece step's input, if
// Input is a JSON object carrying an "auth" field. Any other shape of Input
// (string, array, absent) has no credential reference.
func (s *Settings) InputAuth() string {
	obj, ok := s.Input.(map[string]any)
	if !ok {
		return ""
	}

	auth, _ := obj["auth"].(string)

	return auth
}

// SetInputAuth writes (or clears) the credential reference on a piece step.
// A nil Input is promoted to an empty object; any other non-object Input is
// left untouched since there is no field to write into.
func (s *Settings) SetInputAuth(auth string) {
	if s.Input == nil {
		s.Input = map[string]any{}
	}

	obj, ok := s.Input.(map[string]any)
	if !ok {
		return
	}

	obj["auth"] = auth
}
