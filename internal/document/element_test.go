package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeading_ClampsLevel(t *testing.T) {
	tests := []struct {
		name     string
		level    int
		expected int
	}{
		{"below range", 0, 1},
		{"negative", -3, 1},
		{"in range", 3, 3},
		{"above range", 9, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Heading(tt.level, "Section")
			assert.Equal(t, tt.expected, h.Level)
			assert.NoError(t, h.Validate())
		})
	}
}

func TestCenteredHeading_IsBoldAndCentered(t *testing.T) {
	h := CenteredHeading(1, "Title")
	assert.True(t, h.Bold)
	assert.Equal(t, AlignCenter, h.Align)
	assert.Equal(t, ElementHeading, h.Type)
}

func TestTableValidate_RejectsRaggedRows(t *testing.T) {
	table := Table(
		[]string{"A", "B"},
		[][]string{
			{"1", "2"},
			{"only one cell"},
		},
	)
	err := table.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "row 1")
}

func TestTableValidate_AcceptsMatchingRows(t *testing.T) {
	table := Table([]string{"A", "B"}, [][]string{{"1", "2"}, {"3", "4"}})
	assert.NoError(t, table.Validate())
}

func TestElementValidate_UnknownType(t *testing.T) {
	el := Element{Type: ElementType("bogus")}
	assert.Error(t, el.Validate())
}
