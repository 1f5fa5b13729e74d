// Package progrow renders the progress of work as aligned rows of text.
//
// Each row is a name, a bar drawn with eighth-block characters, and optionally
// a "current / maximum" fraction and a percentage:
//
//	apple harvest   ███                           1 /   9 •  11%
//	banana harvest  ██▌                           9 /  99 •   9%
//	caramel harvest ███████████████████████████ 100 / 100 • 100%
//
// A single row is rendered with Row.Render:
//
//	row := progrow.NewRow("apple harvest", 23, 100)
//	line, err := row.Render(nil, progrow.NewStyle(progrow.WithWidth(40)))
//
// Several rows are collected in Rows, which computes a Layout so that the
// columns of every row line up:
//
//	rows := progrow.NewRows()
//	rows.Append("apple harvest", 1, 9)
//	rows.Append("banana harvest", 9, 99)
//	out, err := rows.Render(progrow.NewStyle(progrow.WithFraction(true)))
//
// Rendering never moves the cursor or redraws; callers print the returned
// text however they like.
package progrow
