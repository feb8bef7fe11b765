package argtypes_test

import (
	"fmt"

	"github.com/reeflective/argtypes"
)

func ExampleParse() {
	coll, err := argtypes.Parse("--verbose --name Alice --count 3 --ports [80, 443]", []string{"verbose"})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(coll.Booleans["verbose"])
	fmt.Println(coll.Strings["name"])
	fmt.Println(coll.Integers["count"])
	fmt.Println(coll.ListIntegers["ports"])

	// Output:
	// true
	// Alice
	// 3
	// [80 443]
}

func ExampleClassify() {
	for _, values := range [][]string{
		{"true"},
		{"3", "4.5"},
		{"[a,", "b]"},
		{"hello", "world"},
	} {
		kind, _ := argtypes.Classify(values)
		fmt.Println(kind)
	}

	// Output:
	// boolean
	// list-float
	// braced-list-string
	// string
}
