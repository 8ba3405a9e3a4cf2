// ent/schema/task.go
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Task holds the schema definition for the Task entity.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),

		field.String("title").
			NotEmpty().
			Comment("Task title"),

		field.Text("description").
			Optional().
			Comment("Detailed description of the task"),

		field.Enum("status").
			Values("TODO", "DOING", "DONE").
			Default("TODO").
			Comment("Current status of the task"),

		field.Enum("priority").
			Values("LOW", "MEDIUM", "HIGH").
			Default("MEDIUM").
			Comment("Priority level of the task"),

		field.Time("due_date").
			Comment("Status changes are rejected once this has passed"),

		field.UUID("user_id", uuid.UUID{}).
			Immutable().
			Comment("Owner of the task"),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the task was created"),
	}
}

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("owner", User.Type).
			Ref("tasks").
			Field("user_id").
			Unique().
			Required().
			Immutable(),

		// Join table task_categories, rows removed with either side
		edge.To("categories", Category.Type),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),

		index.Fields("user_id"),

		// Overdue counts and due date range filters
		index.Fields("due_date", "status"),

		index.Fields("created_at"),
	}
}
