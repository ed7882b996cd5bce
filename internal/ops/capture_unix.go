//go:build !windows

package ops

import (
	"fmt"
	"runtime"
	"strconv"
)

// deviceArgs returns the ffmpeg input arguments for the camera at the
// given index on this platform.
func deviceArgs(index int) []string {
	if runtime.GOOS == "darwin" {
		return []string{"-f", "avfoundation", "-framerate", "30", "-i", strconv.Itoa(index)}
	}
	return []string{"-f", "v4l2", "-i", fmt.Sprintf("/dev/video%d", index)}
}
