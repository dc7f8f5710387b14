package capture

import (
	"os"
	"os/exec"
	"strings"

	stitch "github.com/google/android-wear-stitch-script"
)

// Device sends capture and input commands to a connected watch.
// The capture loop only depends on this interface, so tests can drive it
// with a fake that paints synthetic screens.
type Device interface {
	// Screencap takes a screenshot on the device, storing it at the
	// device-side path remote.
	Screencap(remote string) error
	// Swipe sends the small scroll gesture used between captures.
	Swipe() error
	// Pull copies a device-side file to the local path.
	Pull(remote, local string) error
}

// ADB drives a device through the adb command-line tool.
type ADB struct {
	// Args are extra adb arguments placed before the subcommand, for
	// example "-e" to target an emulator or "-s SERIAL" to pick a device.
	Args string
}

var _ Device = (*ADB)(nil)

func (a *ADB) run(args ...string) error {
	full := append(strings.Fields(a.Args), args...)
	stitch.Logger().Debug("executing adb command", "args", strings.Join(full, " "))
	cmd := exec.Command("adb", full...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Screencap implements Device.
func (a *ADB) Screencap(remote string) error {
	return a.run("shell", "screencap", "-p", remote)
}

// Swipe implements Device.
func (a *ADB) Swipe() error {
	return a.run("shell", "input", "swipe", "50", "200", "50", "100")
}

// Pull implements Device.
func (a *ADB) Pull(remote, local string) error {
	return a.run("pull", remote, local)
}
