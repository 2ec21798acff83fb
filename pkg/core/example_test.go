package core_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/mimicry/mimicry/pkg/core"
)

// ExampleTransform substitutes every eligible character using a one-class
// table, which makes the result deterministic.
func ExampleTransform() {
	tbl, err := core.BuildTable([]string{"AΑ"})
	if err != nil {
		panic(err)
	}
	out, err := core.Transform("AAAA", core.Config{Table: tbl, SubstitutionProbability: 1})
	if err != nil {
		panic(err)
	}
	fmt.Println(out == "ΑΑΑΑ")
	// Output: true
}

// ExampleNew streams stdin-like input through a seeded transformer.
func ExampleNew() {
	tr, err := core.New(core.Config{
		SubstitutionProbability: core.DefaultSubstitutionProbability,
		Seed:                    42,
		Seeded:                  true,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	var sb strings.Builder
	st, err := tr.Process(strings.NewReader("Hello, world"), &sb)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	fmt.Println(st.RunesRead, st.RunesOut)
	// Output: 12 12
}
