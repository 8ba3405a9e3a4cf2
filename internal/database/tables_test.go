package database

import (
	"context"
	"slices"
	"testing"

	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tableShape is the part of a table definition that reaches the database
type tableShape struct {
	Columns     []columnShape
	PrimaryKey  []string
	Indexes     map[string]indexShape
	ForeignKeys map[string]foreignKeyShape
}

type columnShape struct {
	Name     string
	Type     field.Type
	Size     int64
	Nullable bool
	Unique   bool
	Enums    []string
	Default  any
}

type indexShape struct {
	Unique  bool
	Columns []string
}

type foreignKeyShape struct {
	Columns    []string
	RefTable   string
	RefColumns []string
	OnDelete   schema.ReferenceOption
}

func names(columns []*schema.Column) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = c.Name
	}
	return out
}

func shapeOf(t *schema.Table) tableShape {
	pk := names(t.PrimaryKey)
	shape := tableShape{
		PrimaryKey:  pk,
		Indexes:     make(map[string]indexShape),
		ForeignKeys: make(map[string]foreignKeyShape),
	}
	for _, c := range t.Columns {
		var enums []string
		if len(c.Enums) > 0 {
			enums = c.Enums
		}
		shape.Columns = append(shape.Columns, columnShape{
			Name:     c.Name,
			Type:     c.Type,
			Size:     c.Size,
			Nullable: c.Nullable,
			// Primary keys are unique regardless of the flag
			Unique:  c.Unique && !slices.Contains(pk, c.Name),
			Enums:   enums,
			Default: c.Default,
		})
	}
	for _, idx := range t.Indexes {
		shape.Indexes[idx.Name] = indexShape{Unique: idx.Unique, Columns: names(idx.Columns)}
	}
	for _, fk := range t.ForeignKeys {
		shape.ForeignKeys[fk.Symbol] = foreignKeyShape{
			Columns:    names(fk.Columns),
			RefTable:   fk.RefTable.Name,
			RefColumns: names(fk.RefColumns),
			OnDelete:   fk.OnDelete,
		}
	}
	return shape
}

func TestTablesMatchEntSchema(t *testing.T) {
	graph, err := entc.LoadGraph("../../ent/schema", &gen.Config{})
	require.NoError(t, err)
	want, err := graph.Tables()
	require.NoError(t, err)

	have := make(map[string]*schema.Table, len(Tables))
	for _, table := range Tables {
		have[table.Name] = table
	}
	require.Len(t, have, len(want))

	for _, w := range want {
		t.Run(w.Name, func(t *testing.T) {
			h, ok := have[w.Name]
			require.True(t, ok, "table %s is not migrated", w.Name)
			assert.Equal(t, shapeOf(w), shapeOf(h))
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	dsn, err := Config{Driver: "postgres", Host: "db", Port: 5432, User: "u", Password: "p", DBName: "tracker", SSLMode: "disable"}.DSN()
	require.NoError(t, err)
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=tracker sslmode=disable", dsn)

	dsn, err = Config{Driver: "sqlite3", SQLitePath: "tracker.db"}.DSN()
	require.NoError(t, err)
	assert.Equal(t, "file:tracker.db?_fk=1&_busy_timeout=5000&_txlock=immediate", dsn)

	_, err = Config{Driver: "mysql"}.DSN()
	assert.Error(t, err)
}

func TestMigrate_SQLite(t *testing.T) {
	db, err := Open(Config{
		Driver:     "sqlite3",
		SQLitePath: "file:" + uuid.NewString() + "?mode=memory&cache=shared&_fk=1",
	})
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	require.NoError(t, Migrate(ctx, db, false))
	// Running twice is a no-op
	require.NoError(t, Migrate(ctx, db, false))

	for _, table := range Tables {
		var count int
		err := db.GetContext(ctx, &count, "SELECT COUNT(*) FROM "+table.Name)
		require.NoError(t, err, table.Name)
		assert.Zero(t, count)
	}
}
