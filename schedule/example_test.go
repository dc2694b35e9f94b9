// SPDX-License-Identifier: MIT

package schedule_test

import (
	"fmt"

	"github.com/katalvlaran/lvqaoa/schedule"
)

func ExampleBuild() {
	s, err := schedule.Build(4, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("gamma:", s.Gamma())
	fmt.Println("beta: ", s.Beta())
	// Output:
	// gamma: [0.25 0.75 1.25 1.75]
	// beta:  [1.5 1 0.5 0.125]
}
