package querybuilder

import (
	"testing"
	"time"
)

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "name").
		From("contestants").
		Where(Eq("id", "c1")).
		OrderBy("created_at DESC", "seq DESC").
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, name FROM contestants WHERE id = $1 ORDER BY created_at DESC, seq DESC"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "c1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_RequiresTable(t *testing.T) {
	if _, _, err := Select("id").ToSQL(); err == nil {
		t.Fatalf("expected error for missing table")
	}
	if _, _, err := Select().From("contestants").ToSQL(); err == nil {
		t.Fatalf("expected error for missing columns")
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("contestants").
		Columns("id", "name").
		Values("c1", "Alice").
		Returning("id", "created_at").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO contestants (id, name) VALUES ($1, $2) RETURNING id, created_at"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "c1" || args[1] != "Alice" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_ValueCountMismatch(t *testing.T) {
	_, _, err := InsertInto("contestants").Columns("id", "name").Values("c1").ToSQL()
	if err == nil {
		t.Fatalf("expected error for value count mismatch")
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("contestants").
		Set("name", "Bob").
		SetExpr("wins", "wins + ?", 1).
		SetExpr("updated_at", "NOW()").
		Where(Eq("id", "c1")).
		Returning("*").
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE contestants SET name = $1, wins = wins + $2, updated_at = NOW() WHERE id = $3 RETURNING *"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[0] != "Bob" || args[1] != 1 || args[2] != "c1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestDeleteBuilder(t *testing.T) {
	query, args, err := DeleteFrom("contestants").Where(Eq("id", "c1")).ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}

	wantQuery := "DELETE FROM contestants WHERE id = $1"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "c1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestDeleteBuilder_RequiresCondition(t *testing.T) {
	if _, _, err := DeleteFrom("contestants").ToSQL(); err == nil {
		t.Fatalf("expected error for unconditioned delete")
	}
}

func TestInsertModel(t *testing.T) {
	type row struct {
		ID        string    `db:"id"`
		Name      string    `db:"name"`
		Ignored   string    `db:"-"`
		CreatedAt time.Time `db:"created_at"`
		internal  string
	}

	created := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	query, args, err := InsertModel("contestants", row{ID: "c1", Name: "Alice", CreatedAt: created, internal: "x"}, "*")
	if err != nil {
		t.Fatalf("build insert model query: %v", err)
	}

	wantQuery := "INSERT INTO contestants (id, name, created_at) VALUES ($1, $2, $3) RETURNING *"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[2] != created {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestColumns(t *testing.T) {
	type row struct {
		ID   string `db:"id"`
		Wins int64  `db:"wins,omitempty"`
	}

	cols, err := Columns(&row{})
	if err != nil {
		t.Fatalf("columns: %v", err)
	}
	if len(cols) != 2 || cols[0] != "id" || cols[1] != "wins" {
		t.Fatalf("unexpected columns: %+v", cols)
	}

	if _, err := Columns((*row)(nil)); err == nil {
		t.Fatalf("expected error for nil model")
	}
	if _, err := Columns(42); err == nil {
		t.Fatalf("expected error for non-struct model")
	}
}
