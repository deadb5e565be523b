// Package remote turns HDMI-CEC remote traffic into slideshow events and
// exposes CEC power control for the attached TV.
package remote

import (
	"bufio"
	"os/exec"
	"regexp"
	"strings"

	"k8s.io/klog/v2"

	"github.com/electronjoe/GeoFrame/internal/slideshow"
)

// CEC user-control key codes mapped onto slideshow events. Unknown codes are
// ignored: a stray remote button must not exit the frame.
var cecUserControlMap = map[string]slideshow.Event{
	"03": slideshow.EventPrevious, // "Left"
	"04": slideshow.EventNext,     // "Right"
	"0D": slideshow.EventExit,     // "Back/Exit"
}

// We capture user-control-pressed lines like: ">> 04:44:03" (where 03 is the key code)
var reUserControlPressed = regexp.MustCompile(`>>\s+([0-9A-Fa-f]{2}):44:([0-9A-Fa-f]{2})`)

// StartListener spawns cec-client in a goroutine, parses its output, and
// sends recognized commands into events.
func StartListener(events chan<- slideshow.Event) {
	go func() {
		defer klog.Info("CEC listener goroutine exiting.")

		// Start cec-client in traffic mode:
		cmd := exec.Command("cec-client", "-t", "p", "-d", "8")

		stdout, err := cmd.StdoutPipe()
		if err != nil {
			klog.Errorf("Error getting stdout pipe: %v", err)
			return
		}
		defer stdout.Close()

		if err := cmd.Start(); err != nil {
			klog.Errorf("Failed to start cec-client: %v", err)
			return
		}

		scanner := bufio.NewScanner(stdout)
		for scanner.Scan() {
			line := scanner.Text()
			if match := reUserControlPressed.FindStringSubmatch(line); len(match) == 3 {
				keyCode := strings.ToUpper(match[2]) // e.g., "03"
				ev, ok := cecUserControlMap[keyCode]
				if !ok {
					klog.V(2).Infof("ignoring CEC key code %s", keyCode)
					continue
				}
				events <- ev
			}
		}

		if err := scanner.Err(); err != nil {
			klog.Errorf("Scanner error: %v", err)
		}

		if err := cmd.Wait(); err != nil {
			klog.Errorf("cec-client ended with error: %v", err)
		}
	}()
}
