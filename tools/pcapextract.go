/* gocsis - DOCSIS Cable Modem Configuration Codec
 *
 * Copyright (C) 2026 gocsis authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tools

import (
	"encoding/binary"
	"os"
	"sort"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
	"github.com/pkg/errors"

	"github.com/gocsis/gocsis/core"
)

// TFTP DATA opcode; modems fetch their configuration file over TFTP, so a
// provisioning capture carries the image as a run of DATA packets.
const tftpOpcodeData = 3

// ExtractConfigImages reassembles TFTP file transfers from a pcap capture and
// returns the payloads keyed by transfer flow. Transfers with missing blocks
// are dropped with a warning. The caller decides which payloads are actually
// configuration files, typically via tlv.LooksLikeConfig.
func ExtractConfigImages(path string) (map[string][]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open capture")
	}
	defer f.Close()

	reader, err := pcapgo.NewReader(f)
	if err != nil {
		return nil, errors.Wrap(err, "read capture")
	}

	blocks := make(map[string]map[uint16][]byte)
	source := gopacket.NewPacketSource(reader, reader.LinkType())
	for packet := range source.Packets() {
		udpLayer := packet.Layer(layers.LayerTypeUDP)
		netLayer := packet.NetworkLayer()
		if udpLayer == nil || netLayer == nil {
			continue
		}
		udp := udpLayer.(*layers.UDP)

		payload := udp.Payload
		if len(payload) < 4 || binary.BigEndian.Uint16(payload[:2]) != tftpOpcodeData {
			continue
		}
		blockNum := binary.BigEndian.Uint16(payload[2:4])

		flow := netLayer.NetworkFlow().String() + " " + udp.TransportFlow().String()
		if blocks[flow] == nil {
			blocks[flow] = make(map[uint16][]byte)
		}
		data := make([]byte, len(payload)-4)
		copy(data, payload[4:])
		blocks[flow][blockNum] = data
	}

	images := make(map[string][]byte)
	for flow, transfer := range blocks {
		image, ok := assembleTransfer(transfer)
		if !ok {
			core.LogWarn("PcapExtract", "Transfer ", flow, " has missing blocks - skipped")
			continue
		}
		images[flow] = image
	}
	return images, nil
}

// assembleTransfer concatenates TFTP DATA blocks in block order, requiring a
// gap-free run starting at block 1.
func assembleTransfer(transfer map[uint16][]byte) ([]byte, bool) {
	nums := make([]int, 0, len(transfer))
	for num := range transfer {
		nums = append(nums, int(num))
	}
	sort.Ints(nums)

	var image []byte
	for i, num := range nums {
		if num != i+1 {
			return nil, false
		}
		image = append(image, transfer[uint16(num)]...)
	}
	return image, len(image) > 0
}
