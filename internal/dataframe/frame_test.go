package dataframe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "sellincli/internal/errors"
)

func TestNew_AlignsWidths(t *testing.T) {
	tests := []struct {
		name      string
		colNames  []string
		rows      [][]interface{}
		wantNames []string
		wantWidth int
	}{
		{
			name:      "header wider than rows pads cells",
			colNames:  []string{"Cliente", "Canal", "Receita"},
			rows:      [][]interface{}{{"ACME"}},
			wantNames: []string{"Cliente", "Canal", "Receita"},
			wantWidth: 3,
		},
		{
			name:      "rows wider than header get positional names",
			colNames:  []string{"Cliente"},
			rows:      [][]interface{}{{"ACME", "Varejo", 10.0}},
			wantNames: []string{"Cliente", "1", "2"},
			wantWidth: 3,
		},
		{
			name:      "no header at all",
			colNames:  nil,
			rows:      [][]interface{}{{"ACME", "Varejo"}},
			wantNames: []string{"0", "1"},
			wantWidth: 2,
		},
		{
			name:      "empty frame",
			colNames:  nil,
			rows:      nil,
			wantNames: []string{},
			wantWidth: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := New(tt.colNames, tt.rows)

			assert.Equal(t, tt.wantNames, f.Columns())
			assert.Equal(t, tt.wantWidth, f.Width())
			for i := 0; i < f.Len(); i++ {
				assert.Len(t, f.Row(i), tt.wantWidth)
			}
		})
	}
}

func TestNew_PadsShortRowsWithMissing(t *testing.T) {
	f := New(
		[]string{"Cliente", "Canal"},
		[][]interface{}{{"ACME"}},
	)

	row := f.Row(0)
	require.Len(t, row, 2)
	assert.Equal(t, "ACME", row[0])
	assert.Nil(t, row[1])
}

func TestFrame_Column(t *testing.T) {
	f := New(
		[]string{"Cliente", "Canal", "Cliente"},
		[][]interface{}{
			{"ACME", "Varejo", "dup-a"},
			{"GLOBO", "Atacado", "dup-b"},
		},
	)

	t.Run("returns first occurrence of duplicate name", func(t *testing.T) {
		col, err := f.Column("Cliente")
		require.NoError(t, err)
		assert.Equal(t, []interface{}{"ACME", "GLOBO"}, col)
	})

	t.Run("unknown column", func(t *testing.T) {
		_, err := f.Column("Segmento")
		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrTypeColumnNotFound))
		assert.Contains(t, err.Error(), "Segmento")
	})
}

func TestFrame_Value(t *testing.T) {
	f := New(
		[]string{"Cliente", "Receita"},
		[][]interface{}{
			{"ACME", 1200.5},
			{"GLOBO", nil},
		},
	)

	v, err := f.Value(0, "Receita")
	require.NoError(t, err)
	assert.Equal(t, 1200.5, v)

	v, err = f.Value(1, "Receita")
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = f.Value(5, "Receita")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeInvalidArgument))

	_, err = f.Value(0, "Segmento")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeColumnNotFound))
}

func TestFrame_CopiesAreIndependent(t *testing.T) {
	f := New(
		[]string{"Cliente"},
		[][]interface{}{{"ACME"}},
	)

	names := f.Columns()
	names[0] = "mutated"
	row := f.Row(0)
	row[0] = "mutated"

	assert.Equal(t, []string{"Cliente"}, f.Columns())
	assert.Equal(t, []interface{}{"ACME"}, f.Row(0))
}

func TestCellString(t *testing.T) {
	tests := []struct {
		name string
		cell interface{}
		want string
	}{
		{name: "missing cell", cell: nil, want: ""},
		{name: "string passes through", cell: "  Varejo  ", want: "  Varejo  "},
		{name: "float renders compactly", cell: 1200.5, want: "1200.5"},
		{name: "int", cell: 42, want: "42"},
		{name: "bool", cell: true, want: "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CellString(tt.cell))
		})
	}
}
