//go:build e2e

package e2e_test

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

var ldxBinary string

// fakeList is the list2 output of the fake console when LDCONSOLE_LIST2 is unset.
const fakeList = "0,main,1180,1181,1,4242,4300,960,540,240\n" +
	"1,farm-1,0,0,0,-1,-1,960,540,240\n" +
	"2,farm-2,0,0,0,-1,-1,960,540,240\n"

func TestMain(m *testing.M) {
	// Main re-executes this binary as ldconsole, so the build only happens in the test run.
	testscript.Main(buildingM{m}, map[string]func(){
		"ldconsole": fakeConsole,
	})
}

// buildingM builds the ldx binary around the test run.
type buildingM struct {
	m *testing.M
}

func (b buildingM) Run() int {
	tmpDir, err := os.MkdirTemp("", "ldx-e2e-*")
	if err != nil {
		panic(err)
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	ldxBinary = filepath.Join(tmpDir, "ldx")

	//nolint:gosec // Building binary with static arguments, not user input
	cmd := exec.Command("go", "build", "-o", ldxBinary, "./cmd/ldx")
	cmd.Dir = ".."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		panic("failed to build ldx binary: " + err.Error())
	}

	return b.m.Run()
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:   "testdata",
		Setup: setupE2E,
	})
}

func setupE2E(env *testscript.Env) error {
	env.Setenv("NO_COLOR", "1")
	env.Setenv("CI", "true")

	binDir := filepath.Dir(ldxBinary)
	currentPath := env.Getenv("PATH")
	env.Setenv("PATH", binDir+string(os.PathListSeparator)+currentPath)

	homeDir := filepath.Join(env.WorkDir, ".home")
	if err := os.MkdirAll(homeDir, 0o750); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)
	env.Setenv("LDX_HOME", homeDir)

	root := filepath.Join(env.WorkDir, "ld")
	if err := os.MkdirAll(filepath.Join(root, "vms", "config"), 0o750); err != nil {
		return err
	}
	// The real console is replaced through LD_CONSOLE_PATH; the placeholder marks the root.
	if err := os.WriteFile(filepath.Join(root, "ldconsole.exe"), nil, 0o600); err != nil {
		return err
	}
	env.Setenv("LDCONSOLE_LOG", filepath.Join(env.WorkDir, "console.log"))
	env.Setenv("LD_CONSOLE_PATH", "ldconsole")

	return nil
}

// fakeConsole mimics ldconsole. Every invocation is appended to $LDCONSOLE_LOG, list2 prints
// $LDCONSOLE_LIST2 (or three instances) and targets listed in $LDCONSOLE_FAIL exit with 1.
func fakeConsole() {
	args := os.Args[1:]
	if log := os.Getenv("LDCONSOLE_LOG"); log != "" {
		f, err := os.OpenFile(log, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if err == nil {
			_, _ = fmt.Fprintln(f, strings.Join(args, " "))
			_ = f.Close()
		}
	}
	if len(args) == 0 {
		_, _ = fmt.Println("dnplayer Command Line Management Interface")
		os.Exit(0)
	}

	if index := flagValue(args, "--index"); index != "" {
		if slices.Contains(strings.Split(os.Getenv("LDCONSOLE_FAIL"), ","), index) {
			_, _ = fmt.Fprintln(os.Stderr, "player not found")
			os.Exit(1)
		}
	}

	switch args[0] {
	case "list2":
		list, ok := os.LookupEnv("LDCONSOLE_LIST2")
		if !ok {
			list = fakeList
		}
		_, _ = fmt.Print(list)
	case "list":
		_, _ = fmt.Print("main\nfarm-1\nfarm-2\n")
	case "isrunning":
		_, _ = fmt.Print("running")
	case "getprop":
		_, _ = fmt.Print("SM-G9750\r\n")
	}
	os.Exit(0)
}

func flagValue(args []string, name string) string {
	i := slices.Index(args, name)
	if i < 0 || i+1 >= len(args) {
		return ""
	}
	return args[i+1]
}
