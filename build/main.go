package main

import (
	"os"
	"os/exec"

	"github.com/goyek/goyek/v2"
)

var vet = goyek.Define(goyek.Task{
	Name:  "vet",
	Usage: "Run go vet on all packages",
	Action: func(a *goyek.A) {
		run(a, "go", "vet", "./...")
	},
})

var test = goyek.Define(goyek.Task{
	Name:  "test",
	Usage: "Run the test suite",
	Action: func(a *goyek.A) {
		run(a, "go", "test", "-race", "./...")
	},
})

var all = goyek.Define(goyek.Task{
	Name:  "all",
	Usage: "vet + test",
	Deps:  goyek.Deps{vet, test},
})

func run(a *goyek.A, name string, args ...string) {
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		a.Error(err)
	}
}

func main() {
	goyek.Main(os.Args[1:])
}
