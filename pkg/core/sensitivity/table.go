package sensitivity

// Table is a two-variable sensitivity grid. Results[i][j] is the model
// output at RowValues[i] x ColValues[j]. Base-case indices are -1 when no
// base case is marked.
type Table struct {
	RowVariable string
	ColVariable string
	RowValues   []float64
	ColValues   []float64
	Results     [][]float64
	BaseRowIdx  int
	BaseColIdx  int
}

// NewTable evaluates calcFunc over the full row x column grid.
func NewTable(calcFunc func(rowVal, colVal float64) float64,
	rowVariable, colVariable string, rowValues, colValues []float64) Table {

	results := make([][]float64, len(rowValues))
	for i, rowVal := range rowValues {
		row := make([]float64, len(colValues))
		for j, colVal := range colValues {
			row[j] = calcFunc(rowVal, colVal)
		}
		results[i] = row
	}

	return Table{
		RowVariable: rowVariable,
		ColVariable: colVariable,
		RowValues:   rowValues,
		ColValues:   colValues,
		Results:     results,
		BaseRowIdx:  -1,
		BaseColIdx:  -1,
	}
}

// MarkBaseCase records the base-case cell by value, for highlighting in
// reports. Values not present in the axes leave the index unset.
func (t *Table) MarkBaseCase(rowVal, colVal float64) {
	for i, v := range t.RowValues {
		if v == rowVal {
			t.BaseRowIdx = i
			break
		}
	}
	for j, v := range t.ColValues {
		if v == colVal {
			t.BaseColIdx = j
			break
		}
	}
}

// BaseValue returns the base-case cell, if one is marked.
func (t Table) BaseValue() (float64, bool) {
	if t.BaseRowIdx < 0 || t.BaseColIdx < 0 {
		return 0, false
	}
	return t.Results[t.BaseRowIdx][t.BaseColIdx], true
}

// MinValue across the grid.
func (t Table) MinValue() float64 {
	min := t.Results[0][0]
	for _, row := range t.Results {
		for _, v := range row {
			if v < min {
				min = v
			}
		}
	}
	return min
}

// MaxValue across the grid.
func (t Table) MaxValue() float64 {
	max := t.Results[0][0]
	for _, row := range t.Results {
		for _, v := range row {
			if v > max {
				max = v
			}
		}
	}
	return max
}

// Range is (min, max) across the grid.
func (t Table) Range() (float64, float64) {
	return t.MinValue(), t.MaxValue()
}
