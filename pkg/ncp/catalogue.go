package ncp

import (
	"github.com/joeydtaylor/ncpbridge/pkg/dispatch"
	"github.com/joeydtaylor/ncpbridge/pkg/feature"
	"github.com/joeydtaylor/ncpbridge/pkg/spinel"
)

//go:generate go run ../../cmd/ncpcheck validate --all

var (
	always  = feature.Always
	thread  = feature.Any(feature.FTD, feature.MTD)
	rawLink = feature.Any(feature.Radio, feature.LinkRaw)

	backboneRouter   = feature.All(feature.FTD, feature.BackboneRouter)
	borderRouter     = feature.All(thread, feature.BorderRouter)
	channelManager   = feature.All(feature.FTD, feature.ChannelManager)
	channelMonitor   = feature.All(thread, feature.ChannelMonitor)
	childSupervision = feature.All(feature.FTD, feature.ChildSupervision)
	commissioner     = feature.All(feature.FTD, feature.Commissioner)
	cslReceiver      = feature.All(thread, feature.CSLReceiver)
	jamDetection     = feature.All(thread, feature.JamDetection)
	joiner           = feature.All(thread, feature.Joiner)
	macFilter        = feature.All(thread, feature.MACFilter)
	netDataService   = feature.All(thread, feature.NetDataService)
	srpClient        = feature.All(thread, feature.SRPClient)
	timeSync         = feature.All(feature.FTD, feature.TimeSync)
)

// Catalogue declares every property the bridge knows, in ascending key
// order, with the verbs each supports and the build condition guarding each
// verb. The per-verb dispatch tables are derived from it.
var Catalogue = []dispatch.Decl[spinel.PropKey]{
	{Key: spinel.PropLastStatus, Get: always},
	{Key: spinel.PropProtocolVersion, Get: always},
	{Key: spinel.PropNCPVersion, Get: always},
	{Key: spinel.PropInterfaceType, Get: always},
	{Key: spinel.PropVendorID, Get: always},
	{Key: spinel.PropCaps, Get: always},
	{Key: spinel.PropInterfaceCount, Get: always},
	{Key: spinel.PropPowerState, Get: always, Set: always},
	{Key: spinel.PropHWAddr, Get: always},
	{Key: spinel.PropLock, Get: always},
	{Key: spinel.PropHostPowerState, Get: always},
	{Key: spinel.PropMCUPowerState, Get: always, Set: feature.MCUPowerControl},
	{Key: spinel.PropPhyEnabled, Get: always, Set: rawLink},
	{Key: spinel.PropPhyChan, Get: always, Set: always},
	{Key: spinel.PropPhyChanSupported, Get: always, Set: thread},
	{Key: spinel.PropPhyFreq, Get: always},
	{Key: spinel.PropPhyCCAThreshold, Get: always, Set: always},
	{Key: spinel.PropPhyTxPower, Get: always, Set: always},
	{Key: spinel.PropPhyRSSI, Get: always},
	{Key: spinel.PropPhyRxSensitivity, Get: always},
	{Key: spinel.PropPhyPcapEnabled, Get: thread, Set: thread},
	{Key: spinel.PropPhyChanPreferred, Get: always},
	{Key: spinel.PropPhyFEMLNAGain, Get: always, Set: always},
	{Key: spinel.PropPhyChanMaxPower, Set: always},
	{Key: spinel.PropPhyRegionCode, Get: always, Set: always},
	{Key: spinel.PropMACScanState, Get: always, Set: always},
	{Key: spinel.PropMACScanMask, Get: always, Set: always},
	{Key: spinel.PropMACScanPeriod, Get: always, Set: always},
	{Key: spinel.PropMAC154LAddr, Get: always, Set: always},
	{Key: spinel.PropMAC154SAddr, Get: always, Set: rawLink},
	{Key: spinel.PropMAC154PANID, Get: always, Set: always},
	{Key: spinel.PropMACRawStreamEnabled, Get: always, Set: always},
	{Key: spinel.PropMACPromiscuousMode, Get: always, Set: always},
	{Key: spinel.PropMACDataPollPeriod, Get: thread, Set: thread},
	{Key: spinel.PropNetSaved, Get: thread},
	{Key: spinel.PropNetIfUp, Get: thread, Set: thread},
	{Key: spinel.PropNetStackUp, Get: thread, Set: thread},
	{Key: spinel.PropNetRole, Get: thread, Set: thread},
	{Key: spinel.PropNetNetworkName, Get: thread, Set: thread},
	{Key: spinel.PropNetXPANID, Get: thread, Set: thread},
	{Key: spinel.PropNetMasterKey, Get: thread, Set: thread},
	{Key: spinel.PropNetKeySequenceCounter, Get: thread, Set: thread},
	{Key: spinel.PropNetPartitionID, Get: thread, Set: feature.All(feature.FTD, feature.ReferenceDevice)},
	{Key: spinel.PropNetRequireJoinExisting, Get: thread, Set: thread},
	{Key: spinel.PropNetKeySwitchGuardtime, Get: thread, Set: thread},
	{Key: spinel.PropNetPSKC, Get: feature.FTD, Set: feature.FTD},
	{Key: spinel.PropThreadLeaderAddr, Get: thread},
	{Key: spinel.PropThreadParent, Get: thread},
	{Key: spinel.PropThreadChildTable, Get: feature.FTD},
	{Key: spinel.PropThreadLeaderRid, Get: thread},
	{Key: spinel.PropThreadLeaderWeight, Get: feature.FTD},
	{Key: spinel.PropThreadLocalLeaderWeight, Get: feature.FTD, Set: feature.FTD},
	{Key: spinel.PropThreadNetworkData, Get: borderRouter},
	{Key: spinel.PropThreadNetworkDataVersion, Get: thread},
	{Key: spinel.PropThreadStableNetworkData, Get: borderRouter},
	{Key: spinel.PropThreadStableNetworkDataVersion, Get: thread},
	{Key: spinel.PropThreadOnMeshNets, Get: thread, Insert: borderRouter, Remove: borderRouter},
	{Key: spinel.PropThreadOffMeshRoutes, Get: thread, Insert: borderRouter, Remove: borderRouter},
	{Key: spinel.PropThreadAssistingPorts, Get: thread, Set: thread, Insert: thread, Remove: thread},
	{Key: spinel.PropThreadAllowLocalNetDataChange, Get: thread, Set: borderRouter},
	{Key: spinel.PropThreadMode, Get: thread, Set: thread},
	{Key: spinel.PropIPv6LLAddr, Get: thread},
	{Key: spinel.PropIPv6MLAddr, Get: thread},
	{Key: spinel.PropIPv6MLPrefix, Get: thread, Set: thread},
	{Key: spinel.PropIPv6AddressTable, Get: thread, Insert: thread, Remove: thread},
	{Key: spinel.PropIPv6RouteTable, Get: thread},
	{Key: spinel.PropIPv6ICMPPingOffload, Get: thread, Set: thread},
	{Key: spinel.PropIPv6MulticastAddressTable, Get: thread, Insert: thread, Remove: thread},
	{Key: spinel.PropIPv6ICMPPingOffloadMode, Get: thread, Set: thread},
	{Key: spinel.PropStreamNet, Set: thread},
	{Key: spinel.PropStreamNetInsecure, Set: thread},
	{Key: spinel.PropMeshcopJoinerState, Get: joiner},
	{Key: spinel.PropMeshcopJoinerCommissioning, Set: joiner},
	{Key: spinel.PropMeshcopCommissionerState, Get: commissioner, Set: commissioner},
	{Key: spinel.PropMeshcopCommissionerJoiners, Get: commissioner, Insert: commissioner, Remove: commissioner},
	{Key: spinel.PropMeshcopCommissionerProvisioningURL, Get: commissioner, Set: commissioner},
	{Key: spinel.PropMeshcopCommissionerSessionID, Get: commissioner},
	{Key: spinel.PropMeshcopJoinerDiscerner, Get: joiner, Set: joiner},
	{Key: spinel.PropServerAllowLocalDataChange, Get: netDataService, Set: netDataService},
	{Key: spinel.PropServerServices, Get: netDataService, Insert: netDataService, Remove: netDataService},
	{Key: spinel.PropServerLeaderServices, Get: thread},
	{Key: spinel.PropRCPAPIVersion, Get: feature.Radio},
	{Key: spinel.PropCntrReset, Set: thread},
	{Key: spinel.PropCntrTxPktTotal, Get: thread},
	{Key: spinel.PropCntrTxPktAckReq, Get: thread},
	{Key: spinel.PropCntrTxPktAcked, Get: thread},
	{Key: spinel.PropCntrTxPktNoAckReq, Get: thread},
	{Key: spinel.PropCntrTxPktData, Get: thread},
	{Key: spinel.PropCntrTxPktDataPoll, Get: thread},
	{Key: spinel.PropCntrTxPktBeacon, Get: thread},
	{Key: spinel.PropCntrTxPktBeaconReq, Get: thread},
	{Key: spinel.PropCntrTxPktOther, Get: thread},
	{Key: spinel.PropCntrTxPktRetry, Get: thread},
	{Key: spinel.PropCntrTxErrCCA, Get: thread},
	{Key: spinel.PropCntrTxPktUnicast, Get: thread},
	{Key: spinel.PropCntrTxPktBroadcast, Get: thread},
	{Key: spinel.PropCntrTxErrAbort, Get: thread},
	{Key: spinel.PropCntrRxPktTotal, Get: thread},
	{Key: spinel.PropCntrRxPktData, Get: thread},
	{Key: spinel.PropCntrRxPktDataPoll, Get: thread},
	{Key: spinel.PropCntrRxPktBeacon, Get: thread},
	{Key: spinel.PropCntrRxPktBeaconReq, Get: thread},
	{Key: spinel.PropCntrRxPktOther, Get: thread},
	{Key: spinel.PropCntrRxPktFiltWL, Get: thread},
	{Key: spinel.PropCntrRxPktFiltDA, Get: thread},
	{Key: spinel.PropCntrRxErrEmpty, Get: thread},
	{Key: spinel.PropCntrRxErrUnknownNbr, Get: thread},
	{Key: spinel.PropCntrRxErrInvalidSAddr, Get: thread},
	{Key: spinel.PropCntrRxErrSecurity, Get: thread},
	{Key: spinel.PropCntrRxErrBadFCS, Get: thread},
	{Key: spinel.PropCntrRxErrOther, Get: thread},
	{Key: spinel.PropCntrRxPktDup, Get: thread},
	{Key: spinel.PropCntrRxPktUnicast, Get: thread},
	{Key: spinel.PropCntrRxPktBroadcast, Get: thread},
	{Key: spinel.PropCntrTxIPSecTotal, Get: thread},
	{Key: spinel.PropCntrTxIPInsecTotal, Get: thread},
	{Key: spinel.PropCntrTxIPDropped, Get: thread},
	{Key: spinel.PropCntrRxIPSecTotal, Get: thread},
	{Key: spinel.PropCntrRxIPInsecTotal, Get: thread},
	{Key: spinel.PropCntrRxIPDropped, Get: thread},
	{Key: spinel.PropCntrTxSpinelTotal, Get: thread},
	{Key: spinel.PropCntrRxSpinelTotal, Get: thread},
	{Key: spinel.PropCntrRxSpinelErr, Get: thread},
	{Key: spinel.PropCntrIPTxSuccess, Get: thread},
	{Key: spinel.PropCntrIPRxSuccess, Get: thread},
	{Key: spinel.PropCntrIPTxFailure, Get: thread},
	{Key: spinel.PropCntrIPRxFailure, Get: thread},
	{Key: spinel.PropMsgBufferCounters, Get: thread},
	{Key: spinel.PropCntrAllMACCounters, Get: thread, Set: thread},
	{Key: spinel.PropCntrMLECounters, Get: thread, Set: thread},
	{Key: spinel.PropCntrAllIPCounters, Get: thread, Set: thread},
	{Key: spinel.PropCntrMACRetryHistogram, Get: feature.All(thread, feature.RetryHistogram), Set: feature.All(thread, feature.RetryHistogram)},
	{Key: spinel.PropRCPMACKey, Set: rawLink},
	{Key: spinel.PropRCPMACFrameCounter, Set: rawLink},
	{Key: spinel.PropRCPTimestamp, Get: rawLink},
	{Key: spinel.PropUnsolUpdateFilter, Get: thread, Set: thread, Insert: always, Remove: always},
	{Key: spinel.PropUnsolUpdateList, Get: thread},
	{Key: spinel.PropJamDetectEnable, Get: jamDetection, Set: jamDetection},
	{Key: spinel.PropJamDetected, Get: jamDetection},
	{Key: spinel.PropJamDetectRSSIThreshold, Get: jamDetection, Set: jamDetection},
	{Key: spinel.PropJamDetectWindow, Get: jamDetection, Set: jamDetection},
	{Key: spinel.PropJamDetectBusy, Get: jamDetection, Set: jamDetection},
	{Key: spinel.PropJamDetectHistoryBitmap, Get: jamDetection},
	{Key: spinel.PropChannelMonitorSampleInterval, Get: channelMonitor},
	{Key: spinel.PropChannelMonitorRSSIThreshold, Get: channelMonitor},
	{Key: spinel.PropChannelMonitorSampleWindow, Get: channelMonitor},
	{Key: spinel.PropChannelMonitorSampleCount, Get: channelMonitor},
	{Key: spinel.PropChannelMonitorChannelOccupancy, Get: channelMonitor},
	{Key: spinel.PropRadioCaps, Get: rawLink},
	{Key: spinel.PropRadioCoexMetrics, Get: feature.RadioCoex},
	{Key: spinel.PropRadioCoexEnable, Get: feature.RadioCoex, Set: feature.RadioCoex},
	{Key: spinel.PropMACAllowlist, Get: macFilter, Set: macFilter, Insert: macFilter, Remove: macFilter},
	{Key: spinel.PropMACAllowlistEnabled, Get: macFilter, Set: macFilter},
	{Key: spinel.PropMACExtendedAddr, Get: macFilter},
	{Key: spinel.PropMACSrcMatchEnabled, Get: rawLink, Set: rawLink},
	{Key: spinel.PropMACSrcMatchShortAddresses, Set: rawLink, Insert: rawLink, Remove: rawLink},
	{Key: spinel.PropMACSrcMatchExtendedAddresses, Set: rawLink, Insert: rawLink, Remove: rawLink},
	{Key: spinel.PropMACDenylist, Get: macFilter, Set: macFilter, Insert: macFilter, Remove: macFilter},
	{Key: spinel.PropMACDenylistEnabled, Get: macFilter, Set: macFilter},
	{Key: spinel.PropMACFixedRss, Get: macFilter, Set: macFilter, Insert: macFilter, Remove: macFilter},
	{Key: spinel.PropMACCCAFailureRate, Get: thread},
	{Key: spinel.PropMACMaxRetryNumberDirect, Get: thread, Set: thread},
	{Key: spinel.PropMACMaxRetryNumberIndirect, Get: feature.FTD, Set: feature.FTD},
	{Key: spinel.PropThreadChildTimeout, Get: thread, Set: thread},
	{Key: spinel.PropThreadRLOC16, Get: thread},
	{Key: spinel.PropThreadRouterUpgradeThreshold, Get: feature.FTD, Set: feature.FTD},
	{Key: spinel.PropThreadContextReuseDelay, Get: feature.FTD, Set: feature.FTD},
	{Key: spinel.PropThreadNetworkIDTimeout, Get: feature.FTD, Set: feature.FTD},
	{Key: spinel.PropThreadActiveRouterIDs, Remove: feature.FTD},
	{Key: spinel.PropThreadRLOC16DebugPassthru, Get: thread, Set: thread},
	{Key: spinel.PropThreadRouterRoleEnabled, Get: feature.FTD, Set: feature.FTD},
	{Key: spinel.PropThreadRouterDowngradeThreshold, Get: feature.FTD, Set: feature.FTD},
	{Key: spinel.PropThreadRouterSelectionJitter, Get: feature.FTD, Set: feature.FTD},
	{Key: spinel.PropThreadPreferredRouterID, Get: feature.FTD, Set: feature.FTD},
	{Key: spinel.PropThreadNeighborTable, Get: thread},
	{Key: spinel.PropThreadChildCountMax, Get: feature.FTD, Set: feature.FTD},
	{Key: spinel.PropThreadLeaderNetworkData, Get: thread},
	{Key: spinel.PropThreadStableLeaderNetworkData, Get: thread},
	{Key: spinel.PropThreadJoiners, Insert: commissioner},
	{Key: spinel.PropThreadCommissionerEnabled, Get: commissioner},
	{Key: spinel.PropThreadDiscoveryScanJoinerFlag, Get: thread, Set: thread},
	{Key: spinel.PropThreadDiscoveryScanEnableFiltering, Get: thread, Set: thread},
	{Key: spinel.PropThreadDiscoveryScanPANID, Get: thread, Set: thread},
	{Key: spinel.PropThreadSteeringData, Get: feature.All(feature.FTD, feature.SteeringDataOOB), Set: feature.All(feature.FTD, feature.SteeringDataOOB)},
	{Key: spinel.PropThreadRouterTable, Get: feature.FTD},
	{Key: spinel.PropThreadActiveDataset, Get: thread, Set: thread},
	{Key: spinel.PropThreadPendingDataset, Get: thread, Set: thread},
	{Key: spinel.PropThreadMgmtSetActiveDataset, Set: thread},
	{Key: spinel.PropThreadMgmtSetPendingDataset, Set: thread},
	{Key: spinel.PropThreadChildTableAddresses, Get: feature.FTD},
	{Key: spinel.PropThreadNeighborTableErrorRates, Get: thread},
	{Key: spinel.PropThreadAddressCacheTable, Get: feature.FTD},
	{Key: spinel.PropThreadUDPForwardStream, Set: feature.All(thread, feature.UDPForward)},
	{Key: spinel.PropThreadMgmtGetActiveDataset, Set: thread},
	{Key: spinel.PropThreadMgmtGetPendingDataset, Set: thread},
	{Key: spinel.PropThreadNewDataset, Get: feature.FTD},
	{Key: spinel.PropThreadCSLPeriod, Get: cslReceiver, Set: cslReceiver},
	{Key: spinel.PropThreadCSLTimeout, Get: cslReceiver, Set: cslReceiver},
	{Key: spinel.PropThreadCSLChannel, Get: cslReceiver, Set: cslReceiver},
	{Key: spinel.PropThreadDomainName, Get: feature.All(feature.FTD, feature.Thread12), Set: feature.All(feature.FTD, feature.Thread12)},
	{Key: spinel.PropThreadMLRRequest, Set: feature.All(feature.FTD, feature.MLRProxy, feature.Commissioner)},
	{Key: spinel.PropThreadDUAID, Get: feature.All(feature.FTD, feature.DUA), Set: feature.All(feature.FTD, feature.DUA)},
	{Key: spinel.PropThreadBackboneRouterPrimary, Get: feature.All(thread, feature.Thread12)},
	{Key: spinel.PropThreadBackboneRouterLocalState, Get: backboneRouter, Set: backboneRouter},
	{Key: spinel.PropThreadBackboneRouterLocalConfig, Get: backboneRouter, Set: backboneRouter},
	{Key: spinel.PropThreadBackboneRouterLocalRegister, Set: backboneRouter},
	{Key: spinel.PropThreadBackboneRouterLocalRegistrationJitter, Get: backboneRouter, Set: backboneRouter},
	{Key: spinel.PropMeshcopCommissionerAnnounceBegin, Set: commissioner},
	{Key: spinel.PropMeshcopCommissionerEnergyScan, Set: commissioner},
	{Key: spinel.PropMeshcopCommissionerPanIDQuery, Set: commissioner},
	{Key: spinel.PropMeshcopCommissionerMgmtGet, Set: commissioner},
	{Key: spinel.PropMeshcopCommissionerMgmtSet, Set: commissioner},
	{Key: spinel.PropChannelManagerNewChannel, Get: channelManager, Set: channelManager},
	{Key: spinel.PropChannelManagerDelay, Get: channelManager, Set: channelManager},
	{Key: spinel.PropChannelManagerSupportedChannels, Get: channelManager, Set: channelManager},
	{Key: spinel.PropChannelManagerFavoredChannels, Get: channelManager, Set: channelManager},
	{Key: spinel.PropChannelManagerChannelSelect, Get: channelManager, Set: feature.All(feature.FTD, feature.ChannelManager, feature.ChannelMonitor)},
	{Key: spinel.PropChannelManagerAutoSelectEnabled, Get: channelManager, Set: channelManager},
	{Key: spinel.PropChannelManagerAutoSelectInterval, Get: channelManager, Set: channelManager},
	{Key: spinel.PropThreadNetworkTime, Get: timeSync},
	{Key: spinel.PropTimeSyncPeriod, Get: timeSync, Set: timeSync},
	{Key: spinel.PropTimeSyncXtalThreshold, Get: timeSync, Set: timeSync},
	{Key: spinel.PropChildSupervisionInterval, Get: childSupervision, Set: childSupervision},
	{Key: spinel.PropChildSupervisionCheckTimeout, Get: childSupervision, Set: childSupervision},
	{Key: spinel.PropRCPVersion, Get: feature.All(thread, feature.POSIX)},
	{Key: spinel.PropSLAACEnabled, Get: feature.All(thread, feature.SLAAC), Set: feature.All(thread, feature.SLAAC)},
	{Key: spinel.PropSupportedRadioLinks, Get: thread},
	{Key: spinel.PropNeighborTableMultiRadioInfo, Get: feature.All(thread, feature.MultiRadio)},
	{Key: spinel.PropSRPClientStart, Set: srpClient},
	{Key: spinel.PropSRPClientLeaseInterval, Get: srpClient, Set: srpClient},
	{Key: spinel.PropSRPClientKeyLeaseInterval, Get: srpClient, Set: srpClient},
	{Key: spinel.PropSRPClientHostInfo, Get: srpClient},
	{Key: spinel.PropSRPClientHostName, Get: srpClient, Set: srpClient},
	{Key: spinel.PropSRPClientHostAddresses, Get: srpClient, Set: srpClient},
	{Key: spinel.PropSRPClientServices, Get: srpClient, Insert: srpClient, Remove: srpClient},
	{Key: spinel.PropSRPClientHostServicesRemove, Set: srpClient},
	{Key: spinel.PropSRPClientHostServicesClear, Set: srpClient},
	{Key: spinel.PropNestLegacyULAPrefix, Get: feature.All(thread, feature.Legacy), Set: feature.All(thread, feature.Legacy)},
	{Key: spinel.PropNestLegacyLastNodeJoined, Get: feature.All(thread, feature.Legacy)},
	{Key: spinel.PropDebugTestAssert, Get: always},
	{Key: spinel.PropDebugNCPLogLevel, Get: always, Set: feature.DynamicLogLevel},
	{Key: spinel.PropDebugTestWatchdog, Get: always},
	{Key: spinel.PropDebugLogTimestampBase, Get: always, Set: always},
	{Key: spinel.PropDebugTRELTestModeEnable, Get: feature.TREL, Set: feature.TREL},
}
