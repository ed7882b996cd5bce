package ops

import (
	"context"
	"crypto/rand"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/localstash/docstash/internal/config"
	"github.com/localstash/docstash/internal/errors"
)

// captureBinary is the external tool used to grab a camera frame.
const captureBinary = "ffmpeg"

// Runner executes an external command and returns its stdout.
// Injectable so tests can run without a camera or ffmpeg installed.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// execRunner runs the real command.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// CaptureInput contains parameters for the Capture operation.
type CaptureInput struct {
	CameraIndex int // 0 = default camera
}

// CaptureOutput contains the result of the Capture operation.
type CaptureOutput struct {
	Data     []byte `json:"-"`
	MIMEType string `json:"mime_type"`
	Path     string `json:"path"`
}

// Capture grabs a single still frame from the system camera, persists it
// under the photos directory, and returns the JPEG bytes. Device failures
// are hard errors — there is no degraded result for a camera that will
// not open. Pass a nil runner to use the real ffmpeg binary.
func Capture(ctx context.Context, cfg *config.Config, runner Runner, input CaptureInput) (*CaptureOutput, error) {
	if input.CameraIndex < 0 {
		return nil, errors.NewInvalidRequest("camera_index must not be negative")
	}

	if runner == nil {
		if _, err := exec.LookPath(captureBinary); err != nil {
			return nil, errors.NewDeviceFailure(fmt.Sprintf("%s not found in PATH; install it to enable camera capture", captureBinary))
		}
		runner = execRunner{}
	}

	args := append(deviceArgs(input.CameraIndex),
		"-hide_banner", "-loglevel", "error",
		"-frames:v", "1",
		"-f", "image2", "-codec:v", "mjpeg",
		"pipe:1",
	)

	frame, err := runner.Run(ctx, captureBinary, args...)
	if err != nil {
		return nil, errors.NewDeviceFailure(fmt.Sprintf("could not capture image from camera %d: %v", input.CameraIndex, err))
	}
	if len(frame) == 0 {
		return nil, errors.NewDeviceFailure(fmt.Sprintf("camera %d produced no frame", input.CameraIndex))
	}

	photosDir := cfg.PhotosPath()
	if err := os.MkdirAll(photosDir, 0755); err != nil {
		return nil, classifyIOError(photosDir, err)
	}
	path := filepath.Join(photosDir, photoFilename(time.Now()))
	if err := os.WriteFile(path, frame, 0644); err != nil {
		return nil, classifyIOError(path, err)
	}

	return &CaptureOutput{
		Data:     frame,
		MIMEType: "image/jpeg",
		Path:     path,
	}, nil
}

// photoFilename builds a timestamped name with a ULID suffix so captures
// within the same second never collide.
func photoFilename(now time.Time) string {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id := ulid.MustNew(ulid.Timestamp(now), entropy)
	return fmt.Sprintf("photo_%s_%s.jpg", now.Format("20060102_150405"), id.String())
}
