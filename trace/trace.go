// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package trace derives the execution trace shape from an AIR program and
// its optional hints.
package trace

import "github.com/EqualFiLabs/zkd/air"

// DefaultRows is used when the AIR carries no rows_hint.
const DefaultRows = 1 << 16

// Shape is the derived main-trace geometry.
type Shape struct {
	Rows         uint32 `json:"rows"`
	Cols         uint32 `json:"cols"`
	ConstCols    uint32 `json:"const_cols"`
	PeriodicCols uint32 `json:"periodic_cols"`
}

// FromIR derives a conservative shape from a resolved AIR.
func FromIR(ir *air.IR) Shape {
	rows := uint32(DefaultRows)
	if ir.RowsHint != nil {
		rows = *ir.RowsHint
	}
	return Shape{
		Rows:         rows,
		Cols:         ir.Columns.TraceCols,
		ConstCols:    ir.Columns.ConstCols,
		PeriodicCols: ir.Columns.PeriodicCols,
	}
}
