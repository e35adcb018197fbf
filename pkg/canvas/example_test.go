package canvas_test

import (
	"fmt"

	"github.com/fcurrie/matrix-display-golang/pkg/canvas"
)

func Example() {
	c := canvas.New()
	if err := c.AppendText("Hi", canvas.White); err != nil {
		fmt.Printf("Failed to append text: %v\n", err)
		return
	}
	if err := c.AppendText("!", canvas.Red); err != nil {
		fmt.Printf("Failed to append text: %v\n", err)
		return
	}
	fmt.Println(c)
	// Output:
	// [█ █   █]
	// [█ █ █ █]
	// [███   █]
	// [█ █ █  ]
	// [█ █ █ █]
}

func ExampleCanvas_AppendText_unknown() {
	c := canvas.New()
	if err := c.AppendText("abc¶d", canvas.White); err != nil {
		fmt.Printf("Failed to append text: %v\n", err)
		return
	}
	fmt.Println(c)
	// Output:
	// [██  █       █████   █]
	// [  █ █       █████   █]
	// [ ██ ███ ███ █████ ███]
	// [█ █ █ █ █   █████ █ █]
	// [ ██ ███ ███ █████ ███]
}

func ExampleCanvas_AppendCanvas() {
	c1 := canvas.New()
	if err := c1.AppendText("c1", canvas.White); err != nil {
		return
	}
	c2 := canvas.New()
	if err := c2.AppendText("c2", canvas.Cyan); err != nil {
		return
	}

	c := canvas.New()
	if err := c.AppendCanvas(c1); err != nil {
		return
	}
	if err := c.AppendCanvas(c2); err != nil {
		return
	}
	fmt.Println(c)
	// Output:
	// [    █     ███]
	// [    █       █]
	// [███ █ ███ ███]
	// [█   █ █   █  ]
	// [███ █ ███ ███]
}
