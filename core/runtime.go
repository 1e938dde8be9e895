/* gocsis - DOCSIS Cable Modem Configuration Codec
 *
 * Copyright (C) 2026 gocsis authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package core

import "time"

// Version of gocsis.
var Version string

// BuildTime contains the timestamp of when this version of gocsis was built.
var BuildTime string

// StartTimestamp is the time the process was started.
var StartTimestamp time.Time
