package ncp

import (
	"github.com/joeydtaylor/ncpbridge/pkg/feature"
	"github.com/joeydtaylor/ncpbridge/pkg/spinel"
)

var flagCaps = []struct {
	cond feature.Cond
	cap  spinel.Capability
}{
	{feature.FTD, spinel.CapConfigFTD},
	{feature.MTD, spinel.CapConfigMTD},
	{feature.Radio, spinel.CapConfigRadio},
	{feature.FTD, spinel.CapRoleRouter},
	{feature.MTD, spinel.CapRoleSleepy},
	{thread, spinel.CapNetThread11},
	{feature.All(thread, feature.Thread12), spinel.CapNetThread12},
	{feature.Radio, spinel.CapRCPAPIVersion},
	{jamDetection, spinel.CapJamDetect},
	{feature.MCUPowerControl, spinel.CapMCUPowerState},
	{macFilter, spinel.CapMACAllowlist},
	{rawLink, spinel.CapMACRaw},
	{feature.All(feature.FTD, feature.SteeringDataOOB), spinel.CapOOBSteeringData},
	{channelMonitor, spinel.CapChannelMonitor},
	{channelManager, spinel.CapChannelManager},
	{timeSync, spinel.CapTimeSync},
	{childSupervision, spinel.CapChildSupervision},
	{feature.POSIX, spinel.CapPOSIX},
	{feature.All(thread, feature.SLAAC), spinel.CapSLAAC},
	{feature.RadioCoex, spinel.CapRadioCoex},
	{feature.All(thread, feature.RetryHistogram), spinel.CapMACRetryHistogram},
	{feature.All(thread, feature.MultiRadio), spinel.CapMultiRadio},
	{srpClient, spinel.CapSRPClient},
	{feature.All(feature.FTD, feature.DUA), spinel.CapDUA},
	{feature.ReferenceDevice, spinel.CapReferenceDevice},
	{commissioner, spinel.CapThreadCommissioner},
	{feature.All(thread, feature.UDPForward), spinel.CapThreadUDPForward},
	{joiner, spinel.CapThreadJoiner},
	{borderRouter, spinel.CapThreadBorderRouter},
	{netDataService, spinel.CapThreadService},
	{cslReceiver, spinel.CapThreadCSLReceiver},
	{backboneRouter, spinel.CapThreadBackboneRouter},
}

// Capabilities lists the PROP_CAPS entries advertised for set.
func Capabilities(set feature.Set) []spinel.Capability {
	out := []spinel.Capability{spinel.CapCounters, spinel.CapUnsolUpdateFilter}
	for _, fc := range flagCaps {
		if feature.Holds(fc.cond, set) {
			out = append(out, fc.cap)
		}
	}
	return out
}
