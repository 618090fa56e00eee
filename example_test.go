package stepwise_test

import (
	"context"
	"fmt"

	"github.com/aretw0/stepwise"
	"github.com/aretw0/stepwise/pkg/dsl"
	"github.com/aretw0/stepwise/pkg/node"
	"github.com/aretw0/stepwise/pkg/strategy"
)

func Example() {
	b := dsl.New()
	b.Add("start").Go("ask")
	b.Add("ask").Ask("What is your name?").Go("route")
	b.Add("route").Decide(strategy.NewFixed("greet"), "greet", "skip")
	b.Add("greet").Do(func(ctx context.Context, input any) (any, error) {
		return "hello", nil
	})
	b.Add("skip")

	eng, err := stepwise.New(b.MustBuild())
	if err != nil {
		panic(err)
	}

	ctx := context.Background()
	seq := eng.Start()

	out, _ := seq.Run(ctx)
	fmt.Println(out.Status, out.NodeID, out.Payload.(node.Prompt).Text)

	out, _ = seq.Resume(ctx, "Ada")
	fmt.Println(out.Status, seq.History())

	// Output:
	// suspended_input ask What is your name?
	// completed [start ask route greet]
}

func ExampleWithConfirmation() {
	b := dsl.New()
	b.Add("start").Decide(strategy.NewIndex(0), "left", "right")
	b.Add("left")
	b.Add("right")

	eng, _ := stepwise.New(b.MustBuild(), stepwise.WithConfirmation(stepwise.ConfirmAll))

	ctx := context.Background()
	seq := eng.Start()

	out, _ := seq.Run(ctx)
	fmt.Println(out.Status, out.Proposal, out.Candidates)

	_, err := seq.Resume(ctx, "up")
	fmt.Println(err)

	out, _ = seq.Resume(ctx, "right")
	fmt.Println(out.Status, seq.History())

	// Output:
	// suspended_decision left [left right]
	// choice is not a candidate: "up" (candidates: [left right])
	// completed [start right]
}
