package models

// Save outcome statuses returned to the editor.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// SaveOutcome is the JSON body of every /save response. It is transient;
// nothing here is persisted.
type SaveOutcome struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// SaveRequest carries the full editor content. An absent field means an
// empty note, not an error.
type SaveRequest struct {
	Content string `json:"content" form:"content" validate:"max=1048576"`
}
