//go:build windows

package ldconsole

import (
	"os/exec"
	"syscall"
)

// createNoWindow keeps ldconsole from flashing a console window.
const createNoWindow = 0x08000000

func configure(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		HideWindow:    true,
		CreationFlags: createNoWindow,
	}
}
