package spinel

// Capability is an entry of the PROP_CAPS list.
type Capability uint32

const (
	CapLock              Capability = 1
	CapNetSave           Capability = 2
	CapHBO               Capability = 3
	CapPowerSave         Capability = 4
	CapCounters          Capability = 5
	CapJamDetect         Capability = 6
	CapPeekPoke          Capability = 7
	CapWritableRawStream Capability = 8
	CapGPIO              Capability = 9
	CapTRNG              Capability = 10
	CapCmdMulti          Capability = 11
	CapUnsolUpdateFilter Capability = 12
	CapMCUPowerState     Capability = 13
	CapPCAP              Capability = 14

	CapConfigFTD   Capability = 32
	CapConfigMTD   Capability = 33
	CapConfigRadio Capability = 34

	CapRoleRouter Capability = 48
	CapRoleSleepy Capability = 49

	CapNetThread10 Capability = 52
	CapNetThread11 Capability = 53
	CapNetThread12 Capability = 54

	CapRCPAPIVersion Capability = 64

	CapMACAllowlist      Capability = 512
	CapMACRaw            Capability = 513
	CapOOBSteeringData   Capability = 514
	CapChannelMonitor    Capability = 515
	CapErrorRateTracking Capability = 516
	CapChannelManager    Capability = 517
	CapLogMetadata       Capability = 518
	CapTimeSync          Capability = 519
	CapChildSupervision  Capability = 520
	CapPOSIX             Capability = 521
	CapSLAAC             Capability = 522
	CapRadioCoex         Capability = 523
	CapMACRetryHistogram Capability = 524
	CapMultiRadio        Capability = 525
	CapSRPClient         Capability = 526
	CapDUA               Capability = 527
	CapReferenceDevice   Capability = 528

	CapThreadCommissioner   Capability = 1024
	CapThreadTMFProxy       Capability = 1025
	CapThreadUDPForward     Capability = 1026
	CapThreadJoiner         Capability = 1027
	CapThreadBorderRouter   Capability = 1028
	CapThreadService        Capability = 1029
	CapThreadCSLReceiver    Capability = 1030
	CapThreadLinkMetrics    Capability = 1031
	CapThreadBackboneRouter Capability = 1032
)

// Well-known constant property values.
const (
	ProtocolVersionMajor = 4
	ProtocolVersionMinor = 3

	InterfaceTypeThread = 3
)
