package parser

import (
	"reflect"
	"testing"

	"github.com/ukaji3/edakit-go/pkg/edakit/models"
)

func TestDetectArea(t *testing.T) {
	tests := []struct {
		name     string
		rows     [][]string
		expected *models.Area
	}{
		{"empty", nil, nil},
		{"blank cells only", [][]string{{"", ""}, {""}}, nil},
		{"offset table", [][]string{{}, {"", "a", "b"}, {"", "1"}}, &models.Area{R1: 2, C1: 2, R2: 3, C2: 3}},
		{"single cell", [][]string{{"x"}}, &models.Area{R1: 1, C1: 1, R2: 1, C2: 1}},
	}

	for _, tt := range tests {
		result := DetectArea(tt.rows)
		if !reflect.DeepEqual(result, tt.expected) {
			t.Errorf("%s: DetectArea() = %+v, expected %+v", tt.name, result, tt.expected)
		}
	}
}

func TestIsTableLike(t *testing.T) {
	dense := [][]string{{"a", "b"}, {"1", "2"}}
	if !IsTableLike(dense, models.Area{R1: 1, C1: 1, R2: 2, C2: 2}, DefaultTableParams()) {
		t.Errorf("Expected dense block to be table-like")
	}

	tooFew := [][]string{{"a", "b"}}
	if IsTableLike(tooFew, models.Area{R1: 1, C1: 1, R2: 1, C2: 2}, DefaultTableParams()) {
		t.Errorf("Expected two cells to be below the minimum")
	}

	sparse := make([][]string, 100)
	sparse[0] = []string{"a", "b", "c"}
	sparse[99] = make([]string, 20)
	sparse[99][19] = "z"
	if IsTableLike(sparse, models.Area{R1: 1, C1: 1, R2: 100, C2: 20}, DefaultTableParams()) {
		t.Errorf("Expected sparse block not to be table-like")
	}
}

func TestSliceArea(t *testing.T) {
	rows := [][]string{
		{"x", "a", "b"},
		{"y", "1"},
	}

	result := SliceArea(rows, models.Area{R1: 1, C1: 2, R2: 3, C2: 3})
	expected := [][]string{
		{"a", "b"},
		{"1", ""},
		{"", ""},
	}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("SliceArea() = %q, expected %q", result, expected)
	}
}
