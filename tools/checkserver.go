/* gocsis - DOCSIS Cable Modem Configuration Codec
 *
 * Copyright (C) 2026 gocsis authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tools

import (
	"fmt"
	"net/http"
	"sync/atomic"

	"github.com/gorilla/websocket"

	"github.com/gocsis/gocsis/core"
	"github.com/gocsis/gocsis/docsis/mic"
	"github.com/gocsis/gocsis/docsis/tlv"
)

// maxCheckImageSize bounds a single submitted configuration image.
const maxCheckImageSize = 1 << 20

// CheckServer answers WebSocket clients that submit binary configuration
// images with a one-line verdict: decode outcome, record count, warnings and,
// when a shared secret is configured, MIC validation results.
type CheckServer struct {
	addr     string
	secret   []byte
	upgrader websocket.Upgrader
	nChecked uint64
}

// NewCheckServer creates a check server listening on addr. A nil secret
// disables MIC validation.
func NewCheckServer(addr string, secret []byte) *CheckServer {
	return &CheckServer{
		addr: addr,
		secret: secret,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  maxCheckImageSize,
			WriteBufferSize: 1024,
		},
	}
}

func (s *CheckServer) String() string {
	return "CheckServer"
}

// Run serves until the listener fails.
func (s *CheckServer) Run() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/check", s.handleCheck)
	core.LogInfo(s, "Listening on ", s.addr)
	return http.ListenAndServe(s.addr, mux)
}

// NumChecked returns how many images have been checked so far.
func (s *CheckServer) NumChecked() uint64 {
	return atomic.LoadUint64(&s.nChecked)
}

func (s *CheckServer) handleCheck(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		core.LogWarn(s, "Unable to upgrade connection from ", r.RemoteAddr, ": ", err)
		return
	}
	defer conn.Close()
	core.LogDebug(s, "Client connected from ", r.RemoteAddr)

	for {
		mt, image, err := conn.ReadMessage()
		if err != nil {
			core.LogDebug(s, "Client ", r.RemoteAddr, " gone: ", err)
			return
		}
		if mt != websocket.BinaryMessage {
			core.LogWarn(s, "Ignored non-binary message from ", r.RemoteAddr)
			continue
		}
		if len(image) > maxCheckImageSize {
			core.LogWarn(s, "Oversized image from ", r.RemoteAddr, " - DROP")
			continue
		}

		atomic.AddUint64(&s.nChecked, 1)
		if err := conn.WriteMessage(websocket.TextMessage, []byte(s.verdict(image))); err != nil {
			core.LogWarn(s, "Unable to write verdict to ", r.RemoteAddr, ": ", err)
			return
		}
	}
}

// verdict checks one image and renders the one-line result.
func (s *CheckServer) verdict(image []byte) string {
	if err := tlv.LooksLikeConfig(image); err != nil {
		return "reject: " + err.Error()
	}

	seq, warnings, err := tlv.Decode(image)
	if err != nil {
		return "error: " + err.Error()
	}

	out := fmt.Sprintf("ok: %d record(s), %d warning(s)", len(seq), len(warnings))
	if s.secret == nil {
		return out
	}

	if _, err := mic.ValidateCMMIC(seq, s.secret); err != nil {
		return out + "; CM MIC: " + err.Error()
	}
	if _, err := mic.ValidateCMTSMIC(seq, s.secret); err != nil {
		return out + "; CMTS MIC: " + err.Error()
	}
	return out + "; MICs valid"
}
