// Package sample is a small, self-contained fixture for code-analysis tooling.
//
// It declares one entity type, one stateful accumulator and a few pure
// helpers. The declarations are deliberately plain so that parsers and
// chunkers can be checked against a known symbol inventory:
//
//	User        struct  (ID, Name, Email)
//	  DisplayName, IsValid
//	Calculator  struct  (running integer result)
//	  Add, Subtract, Result
//	CalculateSum, FindMax, ValidateEmail
//
// # Usage
//
//	u := sample.NewUser(1, "Alice", "alice@example.com")
//	fmt.Println(u.DisplayName(), u.IsValid())
//
//	c := sample.NewCalculator()
//	c.Add(5).Subtract(2).Add(1)
//	fmt.Println(c.Result()) // 4
//
//	if max, ok := sample.FindMax([]int{3, 9, 2}); ok {
//	    fmt.Println(max) // 9
//	}
//
// Every function is total: empty input and malformed text produce a
// well-defined result instead of an error. None of the types are safe for
// concurrent mutation; each instance has a single owner.
package sample
