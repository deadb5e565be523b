package main

import (
	"flag"
	"fmt"
	"time"

	"k8s.io/klog/v2"

	"github.com/electronjoe/GeoFrame/internal/remote"
	"github.com/electronjoe/GeoFrame/internal/slideshow"
)

var eventNames = map[slideshow.Event]string{
	slideshow.EventNext:     "NEXT",
	slideshow.EventPrevious: "PREVIOUS",
	slideshow.EventExit:     "EXIT",
}

func main() {
	klog.InitFlags(nil)
	hdmiInput := flag.Int("hdmi", 0, "HDMI input number to activate before listening (<=0 skips the switch).")
	skipPower := flag.Bool("skip-power", false, "Skip sending the TV power on command before listening.")
	powerOnDelay := flag.Duration("power-delay", 10*time.Second, "Delay after powering on the TV before switching inputs.")
	flag.Parse()

	if !*skipPower {
		fmt.Println("Sending TV power on command via CEC.")
		if err := remote.PowerOnTV(); err != nil {
			klog.Errorf("PowerOnTV failed: %v", err)
		} else if *powerOnDelay > 0 {
			fmt.Printf("Waiting %s for the TV to wake up...\n", *powerOnDelay)
			time.Sleep(*powerOnDelay)
		}
	}

	if *hdmiInput > 0 {
		fmt.Printf("Switching TV to HDMI input %d via CEC.\n", *hdmiInput)
		if err := remote.SwitchToHDMI(*hdmiInput); err != nil {
			klog.Errorf("SwitchToHDMI failed: %v", err)
		}
	}

	fmt.Println("Listening for CEC remote commands. Press buttons on the remote; Ctrl-C to quit.")
	events := make(chan slideshow.Event, 10)
	remote.StartListener(events)

	for ev := range events {
		name, ok := eventNames[ev]
		if !ok {
			name = "UNKNOWN"
		}
		fmt.Println("COMMAND:", name)
	}
}
