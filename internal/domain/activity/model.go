package activity

// Action identifies what happened to an entity
type Action string

const (
	ActionProjectCreated   Action = "project_created"
	ActionProjectUpdated   Action = "project_updated"
	ActionProjectDeleted   Action = "project_deleted"
	ActionProjectActivated Action = "project_activated"
	ActionPaperUploaded    Action = "paper_uploaded"
	ActionPaperUpdated     Action = "paper_updated"
	ActionPaperDeleted     Action = "paper_deleted"
	ActionCompoundCreated  Action = "compound_created"
	ActionCompoundUpdated  Action = "compound_updated"
	ActionCompoundDeleted  Action = "compound_deleted"
)

// Entry represents an event in the audit trail. Entries live in the
// catalog database so they survive project switches.
type Entry struct {
	ID        int64  `json:"id"`
	ProjectID *int64 `json:"project_id,omitempty"`
	Entity    string `json:"entity"`
	EntityID  *int64 `json:"entity_id,omitempty"`
	Action    Action `json:"action"`
	Summary   string `json:"summary"`
	CreatedAt string `json:"created_at"`
}
