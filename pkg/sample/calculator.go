package sample

// Calculator is a running integer accumulator; the zero value starts at 0
type Calculator struct {
	result int
}

// NewCalculator creates a calculator with a result of 0
func NewCalculator() *Calculator {
	return &Calculator{}
}

// Add adds value to the result and returns the same calculator for chaining
func (c *Calculator) Add(value int) *Calculator {
	c.result += value
	return c
}

// Subtract subtracts value from the result and returns the same calculator for chaining
func (c *Calculator) Subtract(value int) *Calculator {
	c.result -= value
	return c
}

// Result returns the current result
func (c *Calculator) Result() int {
	return c.result
}
