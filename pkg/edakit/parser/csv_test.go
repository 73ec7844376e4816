package parser

import (
	"reflect"
	"strings"
	"testing"
)

func TestReadCSV(t *testing.T) {
	input := "CATEGORY_1,CATEGORY_2,score\nA,x,1.5\n,y\nB,z,NaN\n"

	table, err := ReadCSV(strings.NewReader(input), "survey", ',', RecordOptions{
		Header:        true,
		MissingValues: DefaultMissingValues,
	})
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}

	if table.Name != "survey" {
		t.Errorf("Expected name survey, got %q", table.Name)
	}
	if !reflect.DeepEqual(table.Columns, []string{"CATEGORY_1", "CATEGORY_2", "score"}) {
		t.Errorf("Unexpected columns %v", table.Columns)
	}

	got := table.Column("CATEGORY_1")
	expected := []interface{}{"A", nil, "B"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("CATEGORY_1 = %v, expected %v", got, expected)
	}

	scores := table.Column("score")
	if scores[0] != 1.5 || scores[1] != nil || scores[2] != nil {
		t.Errorf("Unexpected score column %v", scores)
	}
}

func TestReadCSVDelimiter(t *testing.T) {
	table, err := ReadCSV(strings.NewReader("a\tb\n1\t2\n"), "t", '\t', RecordOptions{Header: true})
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}
	if table.Rows[0].Value(1) != int64(2) {
		t.Errorf("Expected int64(2), got %v", table.Rows[0].Value(1))
	}
}
