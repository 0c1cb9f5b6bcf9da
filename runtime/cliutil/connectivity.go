/*
   Copyright 2025 The kvx Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package cliutil holds small helpers shared by the command entry point:
// presenting errors to an operator with whatever extra context can be
// inferred cheaply from the error chain.
package cliutil

import (
	"errors"
	"net"
)

// ConnectivityHint inspects err's chain for a net.Error/*net.OpError/DNS
// failure and, if found, appends a one-line heuristic hint suggesting a
// connection-refused, DNS, or TCP-connect problem. It returns the original
// message unchanged when no such error is found. There is no retry logic
// here or anywhere upstream of it; this only improves the operator-facing
// message.
func ConnectivityHint(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return msg + " (hint: DNS resolution failed, check the configured hostname)"
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return msg + " (hint: TCP connect failed, check that the target host and port are reachable)"
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return msg + " (hint: connection timed out, check network reachability and firewall rules)"
		}
		return msg + " (hint: network error, check connectivity to the configured endpoint)"
	}

	return msg
}
