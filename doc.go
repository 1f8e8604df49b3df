// Package padchain computes how a human types door codes through a chain of
// robot-operated keypads.
//
// A numeric door keypad is operated by a robot whose arm is driven from a
// directional keypad, which is operated by another robot, and so on, until a
// human presses the outermost directional keypad. padchain finds the shortest
// sequence of human presses for each code and scores it.
//
// Layout:
//
//	core/       thread-safe directed graph with labeled edges
//	gridgraph/  turns a table of symbols into a core.Graph
//	dfs/        depth-first traversal and simple-path enumeration
//	keypad/     keys, directions, the two layouts, routing and cost model
//	chain/      layer expansion, memoised counting, parallel Solve
//	cmd/padchain reads codes from a file or stdin and prints the total
//
// Quick start:
//
//	codes, _ := keypad.ParseCodes(strings.NewReader("029A\n379A\n"))
//	total, err := chain.Solve(ctx, codes, 2)
//
// See chain.Chain for the literal and counting views of a single code.
package padchain
