package sample

// CalculateSum returns the sum of numbers, or 0 when numbers is empty
func CalculateSum(numbers []int) int {
	sum := 0
	for _, n := range numbers {
		sum += n
	}
	return sum
}

// FindMax returns the largest value in numbers, or false when numbers is empty
func FindMax(numbers []int) (int, bool) {
	if len(numbers) == 0 {
		return 0, false
	}

	largest := numbers[0]
	for _, n := range numbers[1:] {
		if n > largest {
			largest = n
		}
	}
	return largest, true
}
