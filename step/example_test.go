package step_test

import (
	"fmt"

	"github.com/katalvlaran/bishopart/step"
)

// ExampleDecode shows how one byte unpacks into four moves,
// lowest bit pair first.
func ExampleDecode() {
	// 0x1B = 0b00_01_10_11
	fmt.Println(step.Decode([]byte{0x1B}, 0))
	fmt.Println(step.Decode([]byte{0x1B}, 2))
	// Output:
	// [SE SW NE NW]
	// [SE SW]
}
