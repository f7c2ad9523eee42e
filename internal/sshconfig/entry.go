package sshconfig

import "strings"

// Keyword identifies a recognized ssh_config(5) directive. The zero value
// is KeywordUnknown; unrecognized directive names are classified as
// KeywordUnknown with the original text preserved on the Entry.
type Keyword int

const (
	KeywordUnknown Keyword = iota

	// Structural directives, consumed by the parser and never stored
	// in a host block's entries.
	KeywordHost
	KeywordInclude
	KeywordMatch

	// Connection parameters surfaced in the host projection.
	KeywordHostname
	KeywordUser
	KeywordPort
	KeywordProxyCommand
	KeywordProxyJump

	// Remaining ssh_config(5) directives, carried as opaque string
	// settings.
	KeywordAddKeysToAgent
	KeywordAddressFamily
	KeywordBatchMode
	KeywordBindAddress
	KeywordBindInterface
	KeywordCASignatureAlgorithms
	KeywordCanonicalDomains
	KeywordCanonicalizeFallbackLocal
	KeywordCanonicalizeHostname
	KeywordCanonicalizeMaxDots
	KeywordCanonicalizePermittedCNAMEs
	KeywordCertificateFile
	KeywordCheckHostIP
	KeywordCiphers
	KeywordClearAllForwardings
	KeywordCompression
	KeywordConnectTimeout
	KeywordConnectionAttempts
	KeywordControlMaster
	KeywordControlPath
	KeywordControlPersist
	KeywordDynamicForward
	KeywordEnableEscapeCommandline
	KeywordEnableSSHKeysign
	KeywordEscapeChar
	KeywordExitOnForwardFailure
	KeywordFingerprintHash
	KeywordForkAfterAuthentication
	KeywordForwardAgent
	KeywordForwardX11
	KeywordForwardX11Timeout
	KeywordForwardX11Trusted
	KeywordGSSAPIAuthentication
	KeywordGSSAPIDelegateCredentials
	KeywordGatewayPorts
	KeywordGlobalKnownHostsFile
	KeywordHashKnownHosts
	KeywordHostKeyAlgorithms
	KeywordHostKeyAlias
	KeywordHostbasedAcceptedAlgorithms
	KeywordHostbasedAuthentication
	KeywordIPQoS
	KeywordIdentitiesOnly
	KeywordIdentityAgent
	KeywordIdentityFile
	KeywordIgnoreUnknown
	KeywordKbdInteractiveAuthentication
	KeywordKbdInteractiveDevices
	KeywordKexAlgorithms
	KeywordKnownHostsCommand
	KeywordLocalCommand
	KeywordLocalForward
	KeywordLogLevel
	KeywordLogVerbose
	KeywordMACs
	KeywordNoHostAuthenticationForLocalhost
	KeywordNumberOfPasswordPrompts
	KeywordPKCS11Provider
	KeywordPasswordAuthentication
	KeywordPermitLocalCommand
	KeywordPermitRemoteOpen
	KeywordPreferredAuthentications
	KeywordProxyUseFdpass
	KeywordPubkeyAcceptedAlgorithms
	KeywordPubkeyAuthentication
	KeywordRekeyLimit
	KeywordRemoteCommand
	KeywordRemoteForward
	KeywordRequestTTY
	KeywordRequiredRSASize
	KeywordRevokedHostKeys
	KeywordSecurityKeyProvider
	KeywordSendEnv
	KeywordServerAliveCountMax
	KeywordServerAliveInterval
	KeywordSessionType
	KeywordSetEnv
	KeywordStdinNull
	KeywordStreamLocalBindMask
	KeywordStreamLocalBindUnlink
	KeywordStrictHostKeyChecking
	KeywordSyslogFacility
	KeywordTCPKeepAlive
	KeywordTag
	KeywordTunnel
	KeywordTunnelDevice
	KeywordUpdateHostKeys
	KeywordUserKnownHostsFile
	KeywordVerifyHostKeyDNS
	KeywordVisualHostKey
	KeywordXAuthLocation
)

// keywordNames holds the canonical spelling of every recognized keyword.
var keywordNames = map[Keyword]string{
	KeywordHost:         "Host",
	KeywordInclude:      "Include",
	KeywordMatch:        "Match",
	KeywordHostname:     "Hostname",
	KeywordUser:         "User",
	KeywordPort:         "Port",
	KeywordProxyCommand: "ProxyCommand",
	KeywordProxyJump:    "ProxyJump",

	KeywordAddKeysToAgent:                   "AddKeysToAgent",
	KeywordAddressFamily:                    "AddressFamily",
	KeywordBatchMode:                        "BatchMode",
	KeywordBindAddress:                      "BindAddress",
	KeywordBindInterface:                    "BindInterface",
	KeywordCASignatureAlgorithms:            "CASignatureAlgorithms",
	KeywordCanonicalDomains:                 "CanonicalDomains",
	KeywordCanonicalizeFallbackLocal:        "CanonicalizeFallbackLocal",
	KeywordCanonicalizeHostname:             "CanonicalizeHostname",
	KeywordCanonicalizeMaxDots:              "CanonicalizeMaxDots",
	KeywordCanonicalizePermittedCNAMEs:      "CanonicalizePermittedCNAMEs",
	KeywordCertificateFile:                  "CertificateFile",
	KeywordCheckHostIP:                      "CheckHostIP",
	KeywordCiphers:                          "Ciphers",
	KeywordClearAllForwardings:              "ClearAllForwardings",
	KeywordCompression:                      "Compression",
	KeywordConnectTimeout:                   "ConnectTimeout",
	KeywordConnectionAttempts:               "ConnectionAttempts",
	KeywordControlMaster:                    "ControlMaster",
	KeywordControlPath:                      "ControlPath",
	KeywordControlPersist:                   "ControlPersist",
	KeywordDynamicForward:                   "DynamicForward",
	KeywordEnableEscapeCommandline:          "EnableEscapeCommandline",
	KeywordEnableSSHKeysign:                 "EnableSSHKeysign",
	KeywordEscapeChar:                       "EscapeChar",
	KeywordExitOnForwardFailure:             "ExitOnForwardFailure",
	KeywordFingerprintHash:                  "FingerprintHash",
	KeywordForkAfterAuthentication:          "ForkAfterAuthentication",
	KeywordForwardAgent:                     "ForwardAgent",
	KeywordForwardX11:                       "ForwardX11",
	KeywordForwardX11Timeout:                "ForwardX11Timeout",
	KeywordForwardX11Trusted:                "ForwardX11Trusted",
	KeywordGSSAPIAuthentication:             "GSSAPIAuthentication",
	KeywordGSSAPIDelegateCredentials:        "GSSAPIDelegateCredentials",
	KeywordGatewayPorts:                     "GatewayPorts",
	KeywordGlobalKnownHostsFile:             "GlobalKnownHostsFile",
	KeywordHashKnownHosts:                   "HashKnownHosts",
	KeywordHostKeyAlgorithms:                "HostKeyAlgorithms",
	KeywordHostKeyAlias:                     "HostKeyAlias",
	KeywordHostbasedAcceptedAlgorithms:      "HostbasedAcceptedAlgorithms",
	KeywordHostbasedAuthentication:          "HostbasedAuthentication",
	KeywordIPQoS:                            "IPQoS",
	KeywordIdentitiesOnly:                   "IdentitiesOnly",
	KeywordIdentityAgent:                    "IdentityAgent",
	KeywordIdentityFile:                     "IdentityFile",
	KeywordIgnoreUnknown:                    "IgnoreUnknown",
	KeywordKbdInteractiveAuthentication:     "KbdInteractiveAuthentication",
	KeywordKbdInteractiveDevices:            "KbdInteractiveDevices",
	KeywordKexAlgorithms:                    "KexAlgorithms",
	KeywordKnownHostsCommand:                "KnownHostsCommand",
	KeywordLocalCommand:                     "LocalCommand",
	KeywordLocalForward:                     "LocalForward",
	KeywordLogLevel:                         "LogLevel",
	KeywordLogVerbose:                       "LogVerbose",
	KeywordMACs:                             "MACs",
	KeywordNoHostAuthenticationForLocalhost: "NoHostAuthenticationForLocalhost",
	KeywordNumberOfPasswordPrompts:          "NumberOfPasswordPrompts",
	KeywordPKCS11Provider:                   "PKCS11Provider",
	KeywordPasswordAuthentication:           "PasswordAuthentication",
	KeywordPermitLocalCommand:               "PermitLocalCommand",
	KeywordPermitRemoteOpen:                 "PermitRemoteOpen",
	KeywordPreferredAuthentications:         "PreferredAuthentications",
	KeywordProxyUseFdpass:                   "ProxyUseFdpass",
	KeywordPubkeyAcceptedAlgorithms:         "PubkeyAcceptedAlgorithms",
	KeywordPubkeyAuthentication:             "PubkeyAuthentication",
	KeywordRekeyLimit:                       "RekeyLimit",
	KeywordRemoteCommand:                    "RemoteCommand",
	KeywordRemoteForward:                    "RemoteForward",
	KeywordRequestTTY:                       "RequestTTY",
	KeywordRequiredRSASize:                  "RequiredRSASize",
	KeywordRevokedHostKeys:                  "RevokedHostKeys",
	KeywordSecurityKeyProvider:              "SecurityKeyProvider",
	KeywordSendEnv:                          "SendEnv",
	KeywordServerAliveCountMax:              "ServerAliveCountMax",
	KeywordServerAliveInterval:              "ServerAliveInterval",
	KeywordSessionType:                      "SessionType",
	KeywordSetEnv:                           "SetEnv",
	KeywordStdinNull:                        "StdinNull",
	KeywordStreamLocalBindMask:              "StreamLocalBindMask",
	KeywordStreamLocalBindUnlink:            "StreamLocalBindUnlink",
	KeywordStrictHostKeyChecking:            "StrictHostKeyChecking",
	KeywordSyslogFacility:                   "SyslogFacility",
	KeywordTCPKeepAlive:                     "TCPKeepAlive",
	KeywordTag:                              "Tag",
	KeywordTunnel:                           "Tunnel",
	KeywordTunnelDevice:                     "TunnelDevice",
	KeywordUpdateHostKeys:                   "UpdateHostKeys",
	KeywordUserKnownHostsFile:               "UserKnownHostsFile",
	KeywordVerifyHostKeyDNS:                 "VerifyHostKeyDNS",
	KeywordVisualHostKey:                    "VisualHostKey",
	KeywordXAuthLocation:                    "XAuthLocation",
}

// keywordsByName maps lowercased directive names to their keyword.
var keywordsByName = func() map[string]Keyword {
	m := make(map[string]Keyword, len(keywordNames))
	for k, name := range keywordNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// ParseKeyword matches a directive name against the recognized set.
// Matching is case-insensitive per ssh_config(5). The second return value
// is false for unrecognized names.
func ParseKeyword(name string) (Keyword, bool) {
	k, ok := keywordsByName[strings.ToLower(name)]
	return k, ok
}

// String returns the canonical spelling of the keyword, or "Unknown" for
// the open arm.
func (k Keyword) String() string {
	if name, ok := keywordNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Entry is one classified configuration directive. For unrecognized
// directives Keyword is KeywordUnknown and RawKey holds the original key
// text verbatim.
type Entry struct {
	Keyword Keyword
	RawKey  string
	Value   string
}

// classifyLine splits a trimmed, non-empty, non-comment line into a typed
// entry. The key and value are separated by the first run of whitespace or
// a single "=", so "Key Value", "Key=Value" and "Key = Value" all parse.
// Returns false when the line has no separator at all.
func classifyLine(line string) (Entry, bool) {
	i := strings.IndexAny(line, " \t=")
	if i <= 0 {
		return Entry{}, false
	}

	key := line[:i]
	value := strings.TrimLeft(line[i:], " \t")
	if strings.HasPrefix(value, "=") {
		value = strings.TrimLeft(value[1:], " \t")
	}
	value = strings.TrimRight(value, " \t")

	if k, ok := ParseKeyword(key); ok {
		return Entry{Keyword: k, Value: value}, true
	}
	return Entry{Keyword: KeywordUnknown, RawKey: key, Value: value}, true
}
