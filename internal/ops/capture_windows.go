//go:build windows

package ops

import "strconv"

// deviceArgs returns the ffmpeg input arguments for the camera at the
// given index on this platform.
func deviceArgs(index int) []string {
	return []string{"-f", "vfwcap", "-i", strconv.Itoa(index)}
}
