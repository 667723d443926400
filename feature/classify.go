package feature

// Unclassified marks a digit left in its base form.
const Unclassified = -1

// ClassifyInteger returns the position classes for an integer digit run of
// length n, left to right. Runs shorter than four digits stay unclassified;
// longer runs get class 0 at the rightmost digit and the 6-step cycle
// 1,2,3,4,5,6,1,… moving left.
//
// This is the direct-arithmetic equivalent of what the compiled rule program
// computes through local context alone.
func ClassifyInteger(n int) []int {
	out := make([]int, n)
	if n < 4 {
		for i := range out {
			out[i] = Unclassified
		}
		return out
	}
	for i := range out {
		fromRight := n - 1 - i
		if fromRight == 0 {
			out[i] = 0
		} else {
			out[i] = (fromRight-1)%(NumClasses-1) + 1
		}
	}
	return out
}

// ClassifyFraction returns the position classes for n digits following the
// decimal point, left to right. With decimal grouping disabled every digit
// stays unclassified; enabled, the classes follow the point-anchored forward
// cycle 2,1,6,5,4,3 regardless of n.
func ClassifyFraction(n int, decimals bool) []int {
	out := make([]int, n)
	if !decimals {
		for i := range out {
			out[i] = Unclassified
		}
		return out
	}
	cycle := []int{2, 1, 6, 5, 4, 3}
	for i := range out {
		out[i] = cycle[i%len(cycle)]
	}
	return out
}

// ShiftDirection returns the horizontal shift sign for a position class:
// -1 (left) for residue 0, 0 for residue 1, +1 (right) for residue 2.
// The 3-periodic alternation is what pulls each triplet's outer digits
// toward its middle one.
func ShiftDirection(class int) int {
	if class == Unclassified {
		return 0
	}
	switch class % 3 {
	case 0:
		return -1
	case 2:
		return 1
	default:
		return 0
	}
}
