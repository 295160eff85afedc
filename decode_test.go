package dynasql

import (
	"context"
	"testing"

	"github.com/dynasql/dynasql/driver/sqlmock"
)

type decodeUser struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

func TestDecodeMapsColumnsByTag(t *testing.T) {
	d, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer d.Close()

	mock.ExpectQuery(`select id, name from users`).
		WillReturnRows(mock.NewRows([]string{"id", "name"}).
			AddRow(int64(1), "alice").
			AddRow(int64(2), "bob"))

	e, err := NewExecutor(d, nil, 8)
	if err != nil {
		t.Fatalf("NewExecutor: %v", err)
	}

	rows, err := e.Query(context.Background(), "select id, name from users\n", nil)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}

	users, err := Decode[decodeUser](rows)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("got %d users, want 2", len(users))
	}
	if users[0].ID != 1 || users[0].Name != "alice" {
		t.Fatalf("got %+v, want {1 alice}", users[0])
	}
	if users[1].ID != 2 || users[1].Name != "bob" {
		t.Fatalf("got %+v, want {2 bob}", users[1])
	}
}

func TestDecodeRejectsNonStructTarget(t *testing.T) {
	d, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer d.Close()

	mock.ExpectQuery(`select id from users`).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow(int64(1)))

	e, err := NewExecutor(d, nil, 8)
	if err != nil {
		t.Fatalf("NewExecutor: %v", err)
	}

	rows, err := e.Query(context.Background(), "select id from users\n", nil)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}

	if _, err := Decode[int](rows); err == nil {
		t.Fatalf("expected a DecodeError for a non-struct target")
	}
}
