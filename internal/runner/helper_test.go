package runner

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/AndreyAkinshin/suiterun/internal/suite"
)

// helperEnv switches the test binary into a scripted child process.
const helperEnv = "SUITERUN_TEST_HELPER"

func TestMain(m *testing.M) {
	if os.Getenv(helperEnv) == "1" {
		os.Exit(helperMain(os.Args[1:]))
	}
	os.Exit(m.Run())
}

// helperMain interprets its arguments as a tiny script:
//
//	stdout=TEXT    write TEXT to stdout
//	stderr=TEXT    write TEXT to stderr
//	repeat=N:C     write character C N times to stdout
//	sleep=DUR      sleep for DUR
//	cwd            print the working directory
//	env=KEY        print the value of KEY
//	exit=N         exit with code N
func helperMain(args []string) int {
	for _, arg := range args {
		key, value, _ := strings.Cut(arg, "=")
		switch key {
		case "stdout":
			fmt.Fprint(os.Stdout, value)
		case "stderr":
			fmt.Fprint(os.Stderr, value)
		case "repeat":
			n, c, _ := strings.Cut(value, ":")
			count, _ := strconv.Atoi(n)
			fmt.Fprint(os.Stdout, strings.Repeat(c, count))
		case "sleep":
			d, _ := time.ParseDuration(value)
			time.Sleep(d)
		case "cwd":
			wd, _ := os.Getwd()
			fmt.Fprint(os.Stdout, wd)
		case "env":
			fmt.Fprint(os.Stdout, os.Getenv(value))
		case "exit":
			code, _ := strconv.Atoi(value)
			return code
		}
	}
	return 0
}

// helperSuite returns a descriptor that re-executes the test binary as a
// scripted child.
func helperSuite(name string, script ...string) suite.Descriptor {
	return suite.Descriptor{
		Name:    name,
		Command: os.Args[0],
		Args:    script,
		Env:     map[string]string{helperEnv: "1"},
	}
}
