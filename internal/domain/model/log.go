package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Audit action types recorded in LogEntry.ActionType.
const (
	ActionCreateRecipe      = "create_recipe"
	ActionUpdateRecipe      = "update_recipe"
	ActionDeleteRecipe      = "delete_recipe"
	ActionShoppingList      = "shopping_list"
	ActionSendShoppingList  = "send_shopping_list"
	ActionMigrateIngredient = "migrate_ingredients"
)

// LogEntry represents a persisted log entry. Request logs and audit entries share it;
// context-specific data goes into Fields.
type LogEntry struct {
	ID         primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	Timestamp  time.Time              `bson:"timestamp" json:"timestamp"`
	Level      string                 `bson:"level" json:"level"`
	Message    string                 `bson:"message" json:"message"`
	RequestID  string                 `bson:"request_id,omitempty" json:"request_id,omitempty"`
	Method     string                 `bson:"method,omitempty" json:"method,omitempty"`
	Path       string                 `bson:"path,omitempty" json:"path,omitempty"`
	StatusCode int                    `bson:"status_code,omitempty" json:"status_code,omitempty"`
	Duration   int64                  `bson:"duration_ms,omitempty" json:"duration_ms,omitempty"`
	IP         string                 `bson:"ip,omitempty" json:"ip,omitempty"`
	UserAgent  string                 `bson:"user_agent,omitempty" json:"user_agent,omitempty"`
	Error      string                 `bson:"error,omitempty" json:"error,omitempty"`
	ActionType string                 `bson:"action_type,omitempty" json:"action_type,omitempty"`
	RecipeIDs  []int64                `bson:"recipe_ids,omitempty" json:"recipe_ids,omitempty"`
	Fields     map[string]interface{} `bson:"fields,omitempty" json:"fields,omitempty"`
}

// WithField adds a field to the entry, initialising Fields if needed.
func (e *LogEntry) WithField(key string, value interface{}) *LogEntry {
	if e.Fields == nil {
		e.Fields = make(map[string]interface{})
	}
	e.Fields[key] = value
	return e
}

// LogQueryOptions filters persisted log entries.
type LogQueryOptions struct {
	RequestID  string
	Level      string
	ActionType string
	RecipeID   int64
	StartTime  *time.Time
	EndTime    *time.Time
	Limit      int
	Skip       int
}
