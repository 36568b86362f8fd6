// Package feature models the build-time feature switches that decide which
// properties a bridge image serves.
package feature

import (
	"fmt"
	"strings"
)

// Flag is a single build-time switch.
type Flag uint8

const (
	FTD Flag = iota
	MTD
	Radio
	POSIX
	BorderRouter
	Joiner
	Commissioner
	NetDataService
	RetryHistogram
	LinkRaw
	JamDetection
	ChannelMonitor
	RadioCoex
	MACFilter
	SteeringDataOOB
	CSLReceiver
	Thread12
	DUA
	BackboneRouter
	ChannelManager
	TimeSync
	ChildSupervision
	SLAAC
	MultiRadio
	SRPClient
	Legacy
	TREL
	MCUPowerControl
	ReferenceDevice
	UDPForward
	MLRProxy
	DynamicLogLevel

	numFlags
)

var flagNames = [numFlags]string{
	FTD:              "ftd",
	MTD:              "mtd",
	Radio:            "radio",
	POSIX:            "posix",
	BorderRouter:     "border_router",
	Joiner:           "joiner",
	Commissioner:     "commissioner",
	NetDataService:   "netdata_service",
	RetryHistogram:   "retry_histogram",
	LinkRaw:          "link_raw",
	JamDetection:     "jam_detection",
	ChannelMonitor:   "channel_monitor",
	RadioCoex:        "radio_coex",
	MACFilter:        "mac_filter",
	SteeringDataOOB:  "steering_data_oob",
	CSLReceiver:      "csl_receiver",
	Thread12:         "thread_1_2",
	DUA:              "dua",
	BackboneRouter:   "backbone_router",
	ChannelManager:   "channel_manager",
	TimeSync:         "time_sync",
	ChildSupervision: "child_supervision",
	SLAAC:            "slaac",
	MultiRadio:       "multi_radio",
	SRPClient:        "srp_client",
	Legacy:           "legacy",
	TREL:             "trel",
	MCUPowerControl:  "mcu_power_control",
	ReferenceDevice:  "reference_device",
	UDPForward:       "udp_forward",
	MLRProxy:         "mlr_proxy",
	DynamicLogLevel:  "dynamic_log_level",
}

// Flags lists every switch in declaration order.
func Flags() []Flag {
	out := make([]Flag, numFlags)
	for i := range out {
		out[i] = Flag(i)
	}
	return out
}

func (f Flag) String() string {
	if f < numFlags {
		return flagNames[f]
	}
	return fmt.Sprintf("flag(%d)", uint8(f))
}

// ParseFlag resolves a switch by its configuration name.
func ParseFlag(s string) (Flag, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range flagNames {
		if n == s {
			return Flag(i), nil
		}
	}
	return 0, fmt.Errorf("feature: unknown flag %q", s)
}

// Eval makes a single Flag usable as a Cond.
func (f Flag) Eval(s Set) bool { return s.Has(f) }
