package usererror_test

import (
	"errors"
	"fmt"
	"os"

	"git.home.luguber.info/inful/usererror/usererror"
)

func Example() {
	e := usererror.New("Failed to build project").
		Reason("Database could not be parsed").
		Reason(`File "main.db" not found`).
		Help("Try: touch main.db")

	r := usererror.NewRenderer(usererror.WithProbe(usererror.NeverColor))
	fmt.Print(r.Render(e))
	// Output:
	// Error: Failed to build project
	//  - Database could not be parsed
	//  - File "main.db" not found
	// Try: touch main.db
}

func ExampleError_Push() {
	_, err := os.Open("/nonexistent/main.db")

	e := usererror.From(err)
	e.ClearHelp()
	e.Push("Could not load the project database")
	e.Push("Failed to build project")

	r := usererror.NewRenderer(usererror.WithProbe(usererror.NeverColor))
	fmt.Print(r.Render(e))
	// Output:
	// Error: Failed to build project
	//  - Could not load the project database
	//  - open /nonexistent/main.db: no such file or directory
	//  - no such file or directory
}

func ExampleReasons() {
	err := fmt.Errorf("deploy: %w", fmt.Errorf("upload: %w", errors.New("connection reset")))
	fmt.Println(usererror.Summary(err))
	for _, r := range usererror.Reasons(err) {
		fmt.Println(r)
	}
	// Output:
	// Error: deploy: upload: connection reset
	// upload: connection reset
	// connection reset
}
