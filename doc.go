/*
Package stepwise is a node-graph sequence executor: a small workflow engine that
walks a directed graph of executable steps.

Each node performs one unit of work and answers with a status. COMPLETE moves
on to the node's successor, INPUT_REQUIRED suspends the sequence until the
caller supplies input, and DECISION_REQUIRED names the successor a decision
strategy picked. Suspension is an explicit return: the caller resumes when it
is ready, with no callbacks and no goroutines inside the engine.

# Concept

A Graph is built once (with pkg/dsl, pkg/graph or the YAML loader), validated,
and shared read-only by any number of sequences. A Sequence owns only its
position and status, so many sequences may walk one graph concurrently.
Decision strategies are injected (pkg/strategy), which keeps runs reproducible
whenever the strategy is.

# Usage

	b := dsl.New()
	b.Add("start").Do(greet).Go("ask")
	b.Add("ask").Ask("What is your name?").Go("route")
	b.Add("route").Decide(strategy.NewRoundRobin(), "short", "long")
	b.Add("short")
	b.Add("long")

	eng, err := stepwise.New(b.MustBuild())
	if err != nil {
		log.Fatal(err)
	}

	seq := eng.Start()
	out, err := seq.Run(ctx)
	for err == nil && out.Status.Suspended() {
		out, err = seq.Resume(ctx, readAnswer(out))
	}

Decisions are followed automatically. WithConfirmation makes the sequence
suspend on a decision so the caller can accept or override the proposal.
*/
package stepwise
