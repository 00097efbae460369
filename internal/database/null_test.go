package database

import (
	"database/sql"
	"reflect"
	"testing"
)

func TestParseIntList(t *testing.T) {
	cases := []struct {
		in   sql.NullString
		want []int
	}{
		{sql.NullString{}, []int{}},
		{sql.NullString{String: "", Valid: true}, []int{}},
		{sql.NullString{String: "3", Valid: true}, []int{3}},
		{sql.NullString{String: "1, 2,10", Valid: true}, []int{1, 2, 10}},
	}
	for _, tc := range cases {
		got, err := ParseIntList(tc.in)
		if err != nil {
			t.Fatalf("ParseIntList(%v): %v", tc.in, err)
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("ParseIntList(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}

	if _, err := ParseIntList(sql.NullString{String: "1,x", Valid: true}); err == nil {
		t.Fatalf("expected error for non-numeric element")
	}
}

func TestNullHelpers(t *testing.T) {
	if NullInt(nil) != nil || NullString(nil) != nil {
		t.Fatalf("nil pointers must map to NULL")
	}
	v := 4
	if NullInt(&v) != 4 {
		t.Fatalf("unexpected NullInt value")
	}
	if p := IntPtr(sql.NullInt64{Int64: 9, Valid: true}); p == nil || *p != 9 {
		t.Fatalf("unexpected IntPtr result %v", p)
	}
	if IntPtr(sql.NullInt64{}) != nil {
		t.Fatalf("invalid NullInt64 must yield nil")
	}
}
