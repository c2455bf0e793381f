// Package nordvpn wraps the NordVPN command-line client.
//
// All interaction with the VPN happens by invoking the nordvpn binary with
// structured argument vectors, never by shell string assembly. Failures are
// classified into distinct kinds (binary missing, command timeout, non-zero
// exit, not logged in) so callers can surface the right remediation hint.
package nordvpn
