// ent/schema/user.go
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// User holds the schema definition for the User entity.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),

		field.String("name").
			NotEmpty().
			MaxLen(100).
			Comment("Display name"),

		field.String("email").
			NotEmpty().
			Unique().
			Comment("User email address"),

		field.String("password_hash").
			NotEmpty().
			Sensitive().
			Comment("Hashed password"),

		field.Enum("role").
			Values("USER", "ADMIN").
			Default("USER").
			Immutable().
			Comment("User role for authorization"),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the user was created"),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("tasks", Task.Type).
			Comment("Tasks owned by this user"),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		// Role-based counts on the admin dashboard
		index.Fields("role"),

		index.Fields("created_at"),
	}
}
