package main

import (
	"fmt"

	"github.com/dshills/gocontext-fixtures/pkg/sample"
)

func main() {
	user := sample.NewUser(1, "Alice", "alice@example.com")
	fmt.Printf("User: %s\n", user.DisplayName())
	fmt.Printf("Valid: %t\n", user.IsValid())
}
