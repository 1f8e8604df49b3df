package chain_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/padchain/chain"
	"github.com/katalvlaran/padchain/keypad"
)

func ExampleChain_Sequence() {
	code, _ := keypad.ParseCode("029A")
	c, err := chain.NewChain(2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	seq, _ := c.Sequence(code)
	n, _ := c.Length(code)
	score, _ := c.Score(code)
	fmt.Println(len(seq), n, score)
	// Output:
	// 68 68 1972
}

func ExampleSolve() {
	var codes []keypad.Code
	for _, s := range []string{"029A", "980A", "179A", "456A", "379A"} {
		code, _ := keypad.ParseCode(s)
		codes = append(codes, code)
	}

	total, err := chain.Solve(context.Background(), codes, 2, chain.WithWorkers(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(total)
	// Output:
	// 126384
}
