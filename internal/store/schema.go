package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// Table names.
const (
	usersTableName       = "users"
	progressTableName    = "progress"
	sessionEventsTable   = "session_events"
	llmRequestEventTable = "llm_request_events"
)

var (
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "first_name", Type: field.TypeString},
		{Name: "last_name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "phone", Type: field.TypeString, Default: ""},
		{Name: "pharmacy_name", Type: field.TypeString},
		{Name: "representative_name", Type: field.TypeString, Default: ""},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "privacy_accepted_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       usersTableName,
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{Name: "user_created_at", Columns: []*schema.Column{UsersColumns[9]}},
		},
	}

	// ProgressColumns holds the columns for the "progress" table.
	ProgressColumns = []*schema.Column{
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "points", Type: field.TypeInt, Default: 0},
		{Name: "level", Type: field.TypeInt, Default: 1},
		{Name: "badges", Type: field.TypeJSON},
		{Name: "completed_activities", Type: field.TypeJSON},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProgressTable holds the schema information for the "progress" table.
	ProgressTable = &schema.Table{
		Name:       progressTableName,
		Columns:    ProgressColumns,
		PrimaryKey: []*schema.Column{ProgressColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "progress_users_progress",
				Columns:    []*schema.Column{ProgressColumns[0]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{Name: "progress_points", Columns: []*schema.Column{ProgressColumns[1]}},
		},
	}

	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "module", Type: field.TypeString},
		{Name: "level", Type: field.TypeInt},
		{Name: "score", Type: field.TypeInt, Default: 0},
		{Name: "points_added", Type: field.TypeInt, Default: 0},
		{Name: "correct", Type: field.TypeInt, Default: 0},
		{Name: "answered", Type: field.TypeInt, Default: 0},
		{Name: "total", Type: field.TypeInt, Default: 0},
		{Name: "timed_out", Type: field.TypeBool, Default: false},
		{Name: "duration_ms", Type: field.TypeInt64, Default: 0},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       sessionEventsTable,
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "sessionevent_timestamp", Columns: []*schema.Column{SessionEventsColumns[2]}},
			{Name: "sessionevent_user_id", Columns: []*schema.Column{SessionEventsColumns[4]}},
			{Name: "sessionevent_module", Columns: []*schema.Column{SessionEventsColumns[5]}},
		},
	}

	// LLMRequestEventsColumns holds the columns for the "llm_request_events" table.
	LLMRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LLMRequestEventsTable holds the schema information for the "llm_request_events" table.
	LLMRequestEventsTable = &schema.Table{
		Name:       llmRequestEventTable,
		Columns:    LLMRequestEventsColumns,
		PrimaryKey: []*schema.Column{LLMRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "llmrequestevent_timestamp", Columns: []*schema.Column{LLMRequestEventsColumns[2]}},
			{Name: "llmrequestevent_purpose", Columns: []*schema.Column{LLMRequestEventsColumns[5]}},
			{Name: "llmrequestevent_success", Columns: []*schema.Column{LLMRequestEventsColumns[9]}},
		},
	}

	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		UsersTable,
		ProgressTable,
		SessionEventsTable,
		LLMRequestEventsTable,
	}
)

func init() {
	ProgressTable.ForeignKeys[0].RefTable = UsersTable
}
