/* gocsis - DOCSIS Cable Modem Configuration Codec
 *
 * Copyright (C) 2026 gocsis authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package registry

// builtinEntries is the standard DOCSIS configuration TLV table.
var builtinEntries = map[uint8]Entry{
	0:  {Name: "Pad", Kind: KindBytes},
	1:  {Name: "DownstreamFrequency", Kind: KindUint32},
	2:  {Name: "UpstreamChannelId", Kind: KindUint8},
	3:  {Name: "NetworkAccess", Kind: KindUint8},
	4:  {Name: "ClassOfService", Kind: KindCompound, MayContainSubTLVs: true},
	5:  {Name: "ModemCapabilities", Kind: KindCompound, MayContainSubTLVs: true},
	6:  {Name: "CmMic", Kind: KindBytes},
	7:  {Name: "CmtsMic", Kind: KindBytes},
	8:  {Name: "VendorID", Kind: KindBytes},
	9:  {Name: "SoftwareUpgradeFilename", Kind: KindString},
	10: {Name: "SnmpWriteControl", Kind: KindCompound, MayContainSubTLVs: true},
	11: {Name: "SnmpMibObject", Kind: KindBytes},
	12: {Name: "ModemIpAddress", Kind: KindIPv4},
	13: {Name: "ServicesNotSupported", Kind: KindBytes},
	14: {Name: "CpeMacAddress", Kind: KindMAC},
	17: {Name: "BaselinePrivacy", Kind: KindCompound, MayContainSubTLVs: true},
	18: {Name: "MaxCPE", Kind: KindUint8},
	19: {Name: "TftpTimestamp", Kind: KindUint32},
	20: {Name: "TftpModemAddress", Kind: KindIPv4},
	21: {Name: "SoftwareUpgradeTftpServer", Kind: KindIPv4},
	22: {Name: "UpstreamPacketClassifier", Kind: KindCompound, MayContainSubTLVs: true},
	23: {Name: "DownstreamPacketClassifier", Kind: KindCompound, MayContainSubTLVs: true},
	24: {Name: "UpstreamServiceFlow", Kind: KindCompound, MayContainSubTLVs: true},
	25: {Name: "DownstreamServiceFlow", Kind: KindCompound, MayContainSubTLVs: true},
	26: {Name: "PayloadHeaderSuppression", Kind: KindCompound, MayContainSubTLVs: true},
	27: {Name: "HmacDigest", Kind: KindBytes},
	28: {Name: "MaxClassifiers", Kind: KindUint16},
	29: {Name: "PrivacyEnable", Kind: KindUint8},
	30: {Name: "AuthorizationBlock", Kind: KindBytes},
	31: {Name: "KeySequenceNumber", Kind: KindUint8},
	32: {Name: "ManufacturerCVC", Kind: KindBytes},
	33: {Name: "CoSignerCVC", Kind: KindBytes},
	34: {Name: "SnmpV3Kickstart", Kind: KindCompound, MayContainSubTLVs: true},
	35: {Name: "SubscriberManagementControl", Kind: KindBytes},
	36: {Name: "SubscriberManagementCpeTable", Kind: KindBytes},
	37: {Name: "SubscriberManagementFilter", Kind: KindBytes},
	38: {Name: "SnmpV3NotificationReceiver", Kind: KindCompound, MayContainSubTLVs: true},
	39: {Name: "EnableDocsis20Mode", Kind: KindUint8},
	40: {Name: "EnableTestModes", Kind: KindUint8},
	41: {Name: "DownstreamChannelList", Kind: KindCompound, MayContainSubTLVs: true},
	43: {Name: "VendorSpecific", Kind: KindCompound, MayContainSubTLVs: true},
	45: {Name: "DownstreamUnencryptedTraffic", Kind: KindCompound, MayContainSubTLVs: true},
	60: {Name: "UpstreamDropPacketClassifier", Kind: KindCompound, MayContainSubTLVs: true},
	64: {Name: "PacketCableConfiguration", Kind: KindBytes},
}

// builtinSubNames names child types within their parent compound type, keyed
// by subKey(parent, child). The same child id can carry a different meaning
// under each parent.
var builtinSubNames = map[uint16]string{
	// ClassOfService (4)
	subKey(4, 1): "ClassID",
	subKey(4, 2): "MaxRateDown",
	subKey(4, 3): "MaxRateUp",
	subKey(4, 4): "PriorityUp",
	subKey(4, 5): "GuaranteedUp",
	subKey(4, 6): "MaxBurstUp",
	subKey(4, 7): "PrivacyEnable",

	// ModemCapabilities (5)
	subKey(5, 1):  "ConcatenationSupport",
	subKey(5, 2):  "ModemDocsisVersion",
	subKey(5, 3):  "FragmentationSupport",
	subKey(5, 4):  "PayloadHeaderSuppressionSupport",
	subKey(5, 5):  "IGMPSupport",
	subKey(5, 6):  "PrivacySupport",
	subKey(5, 7):  "DownstreamSAIDSupport",
	subKey(5, 8):  "UpstreamSIDSupport",
	subKey(5, 12): "TransmitEqualizerTapsPerSymbol",

	// BaselinePrivacy (17)
	subKey(17, 1): "AuthorizeWaitTimeout",
	subKey(17, 2): "ReauthorizeWaitTimeout",
	subKey(17, 3): "AuthorizationGraceTime",
	subKey(17, 4): "OperationalWaitTimeout",
	subKey(17, 5): "RekeyWaitTimeout",
	subKey(17, 6): "TEKGraceTime",
	subKey(17, 7): "AuthorizeRejectWaitTimeout",

	// Packet classifiers (22/23)
	subKey(22, 1): "ClassifierReference",
	subKey(22, 2): "ClassifierID",
	subKey(22, 3): "ServiceFlowReference",
	subKey(22, 5): "RulePriority",
	subKey(23, 1): "ClassifierReference",
	subKey(23, 2): "ClassifierID",
	subKey(23, 3): "ServiceFlowReference",
	subKey(23, 5): "RulePriority",

	// Service flows (24/25)
	subKey(24, 1):  "ServiceFlowReference",
	subKey(24, 2):  "ServiceFlowID",
	subKey(24, 4):  "ServiceClassName",
	subKey(24, 6):  "QosParamSetType",
	subKey(24, 7):  "TrafficPriority",
	subKey(24, 8):  "MaxRateSustained",
	subKey(24, 9):  "MaxTrafficBurst",
	subKey(24, 10): "MinReservedRate",
	subKey(25, 1):  "ServiceFlowReference",
	subKey(25, 2):  "ServiceFlowID",
	subKey(25, 4):  "ServiceClassName",
	subKey(25, 6):  "QosParamSetType",
	subKey(25, 7):  "TrafficPriority",
	subKey(25, 8):  "MaxRateSustained",
	subKey(25, 9):  "MaxTrafficBurst",
	subKey(25, 10): "MinReservedRate",

	// VendorSpecific (43)
	subKey(43, 8): "VendorID",
}
