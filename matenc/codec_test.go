// SPDX-License-Identifier: MIT

package matenc_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numat/matenc"
	"github.com/katalvlaran/numat/matrix"
)

func buildLabeled(t *testing.T) *matrix.Matrix {
	t.Helper()
	m, err := matrix.NewDenseFromData([][]float64{
		{1.5, 2},
		{3, -4.25},
	})
	require.NoError(t, err)
	m.SetRowLabelBindings(map[string]int{"alpha": 0, "beta": 1})
	m.SetColumnLabelBindings(map[string]int{"x": 0, "y": 1})

	return m
}

func TestRoundTrip(t *testing.T) {
	m := buildLabeled(t)

	data, err := matenc.Marshal(m)
	require.NoError(t, err)

	back, err := matenc.Unmarshal(data)
	require.NoError(t, err)

	require.Equal(t, m.Rows(), back.Rows())
	require.Equal(t, m.Cols(), back.Cols())
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			require.Equal(t, m.AtQuick(i, j), back.AtQuick(i, j))
		}
	}
	require.Equal(t, m.RowLabelBindings(), back.RowLabelBindings())
	require.Equal(t, m.ColumnLabelBindings(), back.ColumnLabelBindings())

	v, err := back.GetByLabel("beta", "y")
	require.NoError(t, err)
	require.Equal(t, -4.25, v)
}

func TestRoundTrip_NoLabels(t *testing.T) {
	m, err := matrix.NewDenseFromData([][]float64{{7}})
	require.NoError(t, err)

	data, err := matenc.Marshal(m)
	require.NoError(t, err)
	require.NotContains(t, string(data), "rowLabels")

	back, err := matenc.Unmarshal(data)
	require.NoError(t, err)
	require.Equal(t, 7.0, back.AtQuick(0, 0))
	require.Empty(t, back.RowLabelBindings())
}

func TestEncodeDecode_Stream(t *testing.T) {
	m := buildLabeled(t)

	var buf bytes.Buffer
	require.NoError(t, matenc.Encode(&buf, m))

	back, err := matenc.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, m.AtQuick(1, 0), back.AtQuick(1, 0))
}

func TestMarshal_NilMatrix(t *testing.T) {
	_, err := matenc.Marshal(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestUnmarshal_InvalidDocuments(t *testing.T) {
	cases := map[string]string{
		"zero shape": `
rows: 0
cols: 2
values: []
`,
		"row count mismatch": `
rows: 2
cols: 2
values:
  - [1, 2]
`,
		"ragged row": `
rows: 2
cols: 2
values:
  - [1, 2]
  - [3]
`,
		"label out of bound": `
rows: 1
cols: 1
values:
  - [1]
rowLabels: { ghost: 5 }
`,
		"negative label": `
rows: 1
cols: 1
values:
  - [1]
colLabels: { ghost: -1 }
`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := matenc.Unmarshal([]byte(doc))
			require.ErrorIs(t, err, matenc.ErrInvalidDocument)
		})
	}
}

func TestUnmarshal_SyntaxError(t *testing.T) {
	_, err := matenc.Unmarshal([]byte("rows: [broken"))
	require.Error(t, err)
}

func TestDecode_IndependentOfSource(t *testing.T) {
	// The decoded matrix owns its cells and bindings.
	m := buildLabeled(t)
	data, err := matenc.Marshal(m)
	require.NoError(t, err)

	back, err := matenc.Unmarshal(data)
	require.NoError(t, err)
	back.RowLabelBindings()["gamma"] = 1
	_, bound := m.RowLabelBindings()["gamma"]
	require.False(t, bound)
}
