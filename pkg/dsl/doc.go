/*
Package dsl provides a fluent builder for constructing Stepwise graphs in Go.

It allows developers to define flows with a type-safe builder instead of
external YAML files. This is particularly useful for dynamic graph generation,
unit testing, and leveraging IDE autocompletion.

Example usage:

	b := dsl.New()

	b.Add("start").
		Do(greet).
		Go("ask_name")

	b.Add("ask_name").
		Ask("What is your name?").
		Go("route")

	b.Add("route").
		Decide(strategy.NewRoundRobin(), "short", "long")

	b.Add("short").Terminal()
	b.Add("long").Terminal()

	g, err := b.Build()
*/
package dsl
